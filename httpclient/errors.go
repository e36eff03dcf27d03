package httpclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind tells why an exchange failed.
type Kind string

const (
	// KindTimeout: the context deadline passed before a response arrived.
	KindTimeout Kind = "timeout"
	// KindConnection: the request never got a response (refused, DNS, reset).
	KindConnection Kind = "connection"
	// KindInvalidRequest: the request could not be built, nothing was sent.
	KindInvalidRequest Kind = "invalid_request"
	// KindClient: the server answered 4xx.
	KindClient Kind = "client"
	// KindServer: the server answered 5xx or another non-2xx status.
	KindServer Kind = "server"
)

// Error is a failed exchange. StatusCode and Body are set only when a
// response arrived, which is what error mappers key on.
type Error struct {
	Kind       Kind
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("httpclient: ")
	if e.Method != "" {
		b.WriteString(e.Method + " " + e.URL + ": ")
	}
	b.WriteString(string(e.Kind))
	if e.StatusCode > 0 {
		fmt.Fprintf(&b, " (HTTP %d %s)", e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the response status code, or 0 when no response arrived.
func (e *Error) HTTPStatus() int {
	return e.StatusCode
}

// ResponseBody returns the raw response body, or nil when no response arrived.
func (e *Error) ResponseBody() []byte {
	return e.Body
}

// NewTimeoutError wraps err as a timeout.
func NewTimeoutError(err error) *Error {
	return &Error{Kind: KindTimeout, Err: err}
}

// NewConnectionError wraps err as a connection failure.
func NewConnectionError(err error) *Error {
	return &Error{Kind: KindConnection, Err: err}
}

// NewInvalidRequestError reports a request rejected before sending.
func NewInvalidRequestError(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidRequest, Err: fmt.Errorf(format, args...)}
}

// ClassifyStatusCode returns nil for 2xx and an *Error carrying the status
// and body otherwise.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode >= 400 && statusCode < 500:
		return &Error{Kind: KindClient, StatusCode: statusCode, Body: body}
	default:
		return &Error{Kind: KindServer, StatusCode: statusCode, Body: body}
	}
}

// KindOf returns the Kind of the *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// StatusCode returns the response status of the *Error in err's chain, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// IsTimeout reports whether err is a timeout.
func IsTimeout(err error) bool { return KindOf(err) == KindTimeout }

// IsConnection reports whether err is a connection failure.
func IsConnection(err error) bool { return KindOf(err) == KindConnection }

// IsClientError reports whether err carries a 4xx response.
func IsClientError(err error) bool { return KindOf(err) == KindClient }

// IsServerError reports whether err carries a 5xx or other non-2xx response.
func IsServerError(err error) bool { return KindOf(err) == KindServer }
