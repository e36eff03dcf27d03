package client

import (
	stderrors "errors"

	"github.com/kbukum/apiruntime/errors"
	"github.com/kbukum/apiruntime/logger"
	"github.com/kbukum/apiruntime/response"
)

// ErrorMapper turns a decoded 4xx response body into a domain error.
// Returning nil declines, and the original error is kept. body is nil when
// the error body is not JSON.
type ErrorMapper func(body any) error

// ResponseError is implemented by transport errors that carry the failed
// response. *httpclient.Error implements it.
type ResponseError interface {
	error
	HTTPStatus() int
	ResponseBody() []byte
}

// mapError runs a failed exchange through the error mapper. Without a
// mapper the error is returned as is. Without a response it becomes
// NO_RESPONSE_BODY. Only 4xx bodies reach the mapper; other statuses are
// returned unchanged.
func (c *Client) mapError(log *logger.Logger, endpoint string, err error) error {
	if c.errorMapper == nil {
		return err
	}

	var respErr ResponseError
	if !stderrors.As(err, &respErr) || respErr.HTTPStatus() == 0 {
		return errors.NoResponseBody(err)
	}
	if status := respErr.HTTPStatus(); status < 400 || status >= 500 {
		return err
	}

	body, decErr := response.Decode(respErr.ResponseBody())
	if decErr != nil {
		body = nil
	}
	if mapped := c.errorMapper(body); mapped != nil {
		return mapped
	}

	log.Warn("error mapper declined", logger.ErrorFields(endpoint, err))
	return err
}
