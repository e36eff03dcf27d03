package client

import (
	"github.com/kbukum/apiruntime/endpoint"
	"github.com/kbukum/apiruntime/errors"
	"github.com/kbukum/apiruntime/logger"
	"github.com/kbukum/apiruntime/observability"
	"github.com/kbukum/apiruntime/request"
	"github.com/kbukum/apiruntime/response"
)

// Option customizes the Builder used by New.
type Option func(*Builder)

// WithConnection replaces the default httpclient connection.
func WithConnection(conn Connection) Option {
	return func(b *Builder) { b.SetConnection(conn) }
}

// WithErrorMapper sets the error mapper.
func WithErrorMapper(fn ErrorMapper) Option {
	return func(b *Builder) { b.SetErrorMapper(fn) }
}

// WithOptionBuilder sets the request option override.
func WithOptionBuilder(fn request.OptionBuilder) Option {
	return func(b *Builder) { b.SetOptionBuilder(fn) }
}

// WithRegistry replaces the endpoint registry.
func WithRegistry(r *endpoint.Registry) Option {
	return func(b *Builder) { b.SetRegistry(r) }
}

// Builder assembles a Client. It is not safe for concurrent use.
type Builder struct {
	name              string
	conn              Connection
	registry          *endpoint.Registry
	prependPath       string
	transformHAL      bool
	snakeParams       bool
	snakeBody         bool
	snakeFormData     bool
	reservedKeyPrefix string
	optionBuilder     request.OptionBuilder
	errorMapper       ErrorMapper
	instrumentation   *observability.Instrumentation
	log               *logger.Logger
}

// DefaultName names clients built without SetName.
const DefaultName = "client"

// NewBuilder returns a Builder with the default name and reserved key prefix.
func NewBuilder() *Builder {
	return &Builder{name: DefaultName, reservedKeyPrefix: endpoint.DefaultReservedPrefix}
}

// SetName sets the client name. Endpoint log lines use the component
// "<name>.<endpoint>".
func (b *Builder) SetName(name string) *Builder {
	if name != "" {
		b.name = name
	}
	return b
}

// SetConnection sets the transport. Build fails without one.
func (b *Builder) SetConnection(conn Connection) *Builder {
	b.conn = conn
	return b
}

// SetRegistry sets the registry endpoint names are resolved in.
func (b *Builder) SetRegistry(r *endpoint.Registry) *Builder {
	b.registry = r
	return b
}

// SetPrependPath sets the path put in front of every endpoint URI.
func (b *Builder) SetPrependPath(path string) *Builder {
	b.prependPath = path
	return b
}

// SetTransformHAL toggles HAL unwrapping of responses.
func (b *Builder) SetTransformHAL(enabled bool) *Builder {
	b.transformHAL = enabled
	return b
}

// SetSnakeCase selects which descriptor inputs are snake_cased.
func (b *Builder) SetSnakeCase(params, body, formData bool) *Builder {
	b.snakeParams = params
	b.snakeBody = body
	b.snakeFormData = formData
	return b
}

// SetReservedKeyPrefix sets the prefix stripped from body and form keys.
func (b *Builder) SetReservedKeyPrefix(prefix string) *Builder {
	b.reservedKeyPrefix = prefix
	return b
}

// SetOptionBuilder sets the request option override.
func (b *Builder) SetOptionBuilder(fn request.OptionBuilder) *Builder {
	b.optionBuilder = fn
	return b
}

// SetErrorMapper sets the error mapper.
func (b *Builder) SetErrorMapper(fn ErrorMapper) *Builder {
	b.errorMapper = fn
	return b
}

// SetInstrumentation sets the request instrumentation. Nil disables it.
func (b *Builder) SetInstrumentation(inst *observability.Instrumentation) *Builder {
	b.instrumentation = inst
	return b
}

// SetLogger sets the client logger. Build registers it under the client name.
func (b *Builder) SetLogger(l *logger.Logger) *Builder {
	b.log = l
	return b
}

// Build returns the Client. An empty registry is used when none was set.
func (b *Builder) Build() (*Client, error) {
	if b.conn == nil {
		return nil, errors.InvalidConfig("no connection is set")
	}

	registry := b.registry
	if registry == nil {
		var err error
		if registry, err = endpoint.NewRegistry(); err != nil {
			return nil, err
		}
	}

	if b.log != nil {
		logger.Register(b.name, b.log)
	}

	return &Client{
		name:     b.name,
		conn:     b.conn,
		registry: registry,
		endpoints: endpoint.NewBuilder(registry,
			endpoint.WithSnakeCaseParams(b.snakeParams),
			endpoint.WithSnakeCaseBody(b.snakeBody),
			endpoint.WithSnakeCaseFormData(b.snakeFormData),
			endpoint.WithReservedPrefix(b.reservedKeyPrefix),
		),
		prependPath:     b.prependPath,
		normalizer:      response.Normalizer{TransformHAL: b.transformHAL},
		optionBuilder:   b.optionBuilder,
		errorMapper:     b.errorMapper,
		instrumentation: b.instrumentation,
	}, nil
}
