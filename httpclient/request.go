package httpclient

import (
	"net/http"
	"time"
)

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// Path is appended to the client's BaseURL. Can be a full URL if BaseURL is empty.
	Path string
	// Headers are request-specific headers (merged with client defaults).
	Headers map[string]string
	// Query is encoded with the adapter's QueryFormat and appended to any
	// query already present in Path.
	Query map[string]any
	// Body is the request body. Accepts io.Reader, []byte, string, or any value
	// that will be JSON-encoded. Ignored when Form is set.
	Body any
	// Form is sent as an application/x-www-form-urlencoded body.
	Form map[string]any
	// Auth overrides the client-level auth for this request.
	Auth *AuthConfig
	// Timeout bounds this request when positive, replacing Config.Timeout.
	Timeout time.Duration
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Proto is the protocol the response arrived over, e.g. "HTTP/2.0".
	Proto string
	// Headers are the response headers.
	Headers http.Header
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}
