package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors, raised synchronously while preparing a request.
const (
	// ErrCodeInvalidParameter indicates a parameter outside the endpoint whitelist.
	ErrCodeInvalidParameter ErrorCode = "INVALID_PARAMETER"
	// ErrCodeMissingRouteParameter indicates a route parameter with no stored value.
	ErrCodeMissingRouteParameter ErrorCode = "MISSING_ROUTE_PARAMETER"
)

// Endpoint construction errors
const (
	// ErrCodeUnknownEndpoint indicates no definition is registered under a name.
	ErrCodeUnknownEndpoint ErrorCode = "UNKNOWN_ENDPOINT"
	// ErrCodeInvalidEndpoint indicates a malformed endpoint definition.
	ErrCodeInvalidEndpoint ErrorCode = "INVALID_ENDPOINT"
)

// Transport and response errors
const (
	// ErrCodeTransport indicates the underlying send failed.
	ErrCodeTransport ErrorCode = "TRANSPORT"
	// ErrCodeNoResponseBody indicates a transport failure that carried no response.
	ErrCodeNoResponseBody ErrorCode = "NO_RESPONSE_BODY"
	// ErrCodeDecodeFailed indicates a response body that is not valid JSON.
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"
	// ErrCodeNoMatchingVariant indicates no union variant accepted a payload.
	ErrCodeNoMatchingVariant ErrorCode = "NO_MATCHING_VARIANT"
)

// Client state errors
const (
	// ErrCodeMissingLastResponse indicates introspection before any completed request.
	ErrCodeMissingLastResponse ErrorCode = "MISSING_LAST_RESPONSE"
	// ErrCodeInvalidConfig indicates an invalid client configuration.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)
