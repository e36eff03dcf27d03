package logger

import (
	"time"
)

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldService   = "service"
	FieldTraceID   = "trace_id"
	FieldSpanID    = "span_id"
	FieldRequestID = "request_id"
	FieldEndpoint  = "endpoint"
	FieldMethod    = "method"
	FieldURI       = "uri"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map[string]any from alternating key-value pairs.
//
//	logger.Debug("done", logger.Fields("endpoint", "getPet", "status", 200))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(endpoint string, err error) map[string]any {
	return map[string]any{
		FieldEndpoint: endpoint,
		FieldError:    err.Error(),
	}
}

// DurationFields creates fields for a timed request.
func DurationFields(method, uri string, d time.Duration) map[string]any {
	return map[string]any{
		FieldMethod:   method,
		FieldURI:      uri,
		FieldDuration: d.Milliseconds(),
	}
}
