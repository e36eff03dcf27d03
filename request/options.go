package request

import (
	"maps"
	"time"
)

// Options is everything the transport needs besides method and URI.
type Options struct {
	// Query parameters; nested maps and slices are encoded by the transport.
	Query map[string]any
	// JSON is sent as an application/json body.
	JSON map[string]any
	// FormParams are sent as an application/x-www-form-urlencoded body.
	FormParams map[string]any
	// Headers are added to the request, replacing transport defaults.
	Headers map[string]string
	// Timeout bounds this request when positive.
	Timeout time.Duration
	// Extra carries transport specific settings the runtime does not inspect.
	Extra map[string]any
}

// Source is what Build reads from, typically an *endpoint.Descriptor.
type Source interface {
	Params() map[string]any
	Body() map[string]any
	FormData() map[string]any
}

// OptionBuilder returns the caller's starting options for a call, or nil to
// start empty.
type OptionBuilder func(src Source) *Options

// Build merges the override options for src with its query, body and form
// data. A slot is filled from src only when the override did not set it and
// the value from src is non-empty. src is only read.
func Build(src Source, override OptionBuilder) Options {
	var opts Options
	if override != nil {
		if o := override(src); o != nil {
			opts = o.clone()
		}
	}

	if opts.Query == nil {
		opts.Query = nonEmpty(src.Params())
	}
	if opts.JSON == nil {
		opts.JSON = nonEmpty(src.Body())
	}
	if opts.FormParams == nil {
		opts.FormParams = nonEmpty(src.FormData())
	}
	return opts
}

func nonEmpty(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return m
}

// clone copies the top level of every map so Build never writes into the
// override's maps.
func (o Options) clone() Options {
	o.Query = maps.Clone(o.Query)
	o.JSON = maps.Clone(o.JSON)
	o.FormParams = maps.Clone(o.FormParams)
	o.Headers = maps.Clone(o.Headers)
	o.Extra = maps.Clone(o.Extra)
	return o
}
