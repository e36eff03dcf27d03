package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kbukum/apiruntime/endpoint"
	"github.com/kbukum/apiruntime/errors"
	"github.com/kbukum/apiruntime/httpclient"
	"github.com/kbukum/apiruntime/logger"
	"github.com/kbukum/apiruntime/observability"
	"github.com/kbukum/apiruntime/request"
	"github.com/kbukum/apiruntime/response"
)

// Connection sends one request. *httpclient.Adapter implements it.
type Connection interface {
	Send(ctx context.Context, method, uri string, opts request.Options) (*httpclient.Response, error)
}

// Input is the caller-supplied data of one call.
type Input struct {
	Params   map[string]any
	Body     map[string]any
	FormData map[string]any
}

// Client performs endpoint calls over a Connection. It is safe for
// concurrent use; descriptors it hands out are not.
type Client struct {
	name            string
	conn            Connection
	endpoints       *endpoint.Builder
	registry        *endpoint.Registry
	prependPath     string
	normalizer      response.Normalizer
	optionBuilder   request.OptionBuilder
	errorMapper     ErrorMapper
	instrumentation *observability.Instrumentation

	mu           sync.RWMutex
	lastResponse *httpclient.Response
}

// New builds a Client from cfg: an httpclient.Adapter as connection, the
// endpoints of cfg.EndpointsFile, a logger and request instrumentation.
// opts run after the config is applied and may replace any of them.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(&cfg.Logging, cfg.Name)

	adapter, err := httpclient.New(cfg.HTTP, httpclient.WithLogger(log.WithComponent("httpclient")))
	if err != nil {
		return nil, err
	}

	registry, err := endpoint.NewRegistry()
	if err != nil {
		return nil, err
	}
	if cfg.EndpointsFile != "" {
		if err := registry.LoadFile(cfg.EndpointsFile); err != nil {
			return nil, err
		}
	}

	inst, err := observability.NewInstrumentation(cfg.Telemetry.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("client: instrumentation: %w", err)
	}

	b := NewBuilder().
		SetName(cfg.Name).
		SetConnection(adapter).
		SetRegistry(registry).
		SetPrependPath(cfg.PrependPath).
		SetTransformHAL(cfg.TransformHAL).
		SetSnakeCase(cfg.SnakeCase.Params, cfg.SnakeCase.Body, cfg.SnakeCase.FormData).
		SetReservedKeyPrefix(cfg.ReservedKeyPrefix).
		SetLogger(log).
		SetInstrumentation(inst)
	for _, opt := range opts {
		opt(b)
	}
	return b.Build()
}

// Start initializes telemetry exporters for cfg.Telemetry, then builds the
// Client. Call the returned ShutdownFunc on exit.
func Start(ctx context.Context, cfg Config, opts ...Option) (*Client, observability.ShutdownFunc, error) {
	cfg.ApplyDefaults()
	shutdown, err := observability.Init(ctx, cfg.Telemetry)
	if err != nil {
		return nil, nil, err
	}
	c, err := New(cfg, opts...)
	if err != nil {
		_ = shutdown(ctx)
		return nil, nil, err
	}
	return c, shutdown, nil
}

// Registry returns the endpoint registry the client resolves names in.
func (c *Client) Registry() *endpoint.Registry {
	return c.registry
}

// Endpoint returns a fresh descriptor for the endpoint registered as name.
func (c *Client) Endpoint(name string) (*endpoint.Descriptor, error) {
	return c.endpoints.Build(name)
}

// Call builds the named endpoint from in and performs it.
func (c *Client) Call(ctx context.Context, name string, in Input) (any, error) {
	d, err := c.Endpoint(name)
	if err != nil {
		return nil, err
	}
	if err := d.SetParams(in.Params); err != nil {
		return nil, err
	}
	d.SetBody(in.Body)
	d.SetFormData(in.FormData)
	return c.Perform(ctx, d)
}

// Perform sends d and returns the normalized response body. Empty bodies
// normalize to an empty map.
func (c *Client) Perform(ctx context.Context, d *endpoint.Descriptor) (any, error) {
	uri, err := d.URI()
	if err != nil {
		return nil, err
	}
	uri = c.prependPath + uri
	opts := request.Build(d, c.optionBuilder)

	ctx, finish := c.instrumentation.Start(ctx, d.Name(), d.Method(), uri)
	log := logger.Endpoint(c.name, d.Name()).WithContext(ctx)

	start := time.Now()
	resp, err := c.conn.Send(ctx, d.Method(), uri, opts)
	if err == nil && resp == nil {
		err = errors.Transport(fmt.Errorf("connection returned no response"))
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	finish(status, err)

	fields := logger.DurationFields(d.Method(), uri, time.Since(start))
	fields[logger.FieldEndpoint] = d.Name()
	fields[logger.FieldStatus] = status
	if err != nil {
		fields[logger.FieldError] = err.Error()
	}
	log.Debug("endpoint performed", fields)

	if err != nil {
		return nil, c.mapError(log, d.Name(), err)
	}

	c.mu.Lock()
	c.lastResponse = resp
	c.mu.Unlock()

	return c.normalizer.Normalize(resp.Body)
}

// LastResponse returns the response of the last successful request.
func (c *Client) LastResponse() (*httpclient.Response, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.lastResponse == nil {
		return nil, errors.MissingLastResponse()
	}
	return c.lastResponse, nil
}

// LastStatusCode returns the status code of the last successful request.
func (c *Client) LastStatusCode() (int, error) {
	resp, err := c.LastResponse()
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

// CallAs performs Call and decodes the normalized body into T.
func CallAs[T any](ctx context.Context, c *Client, name string, in Input) (T, error) {
	body, err := c.Call(ctx, name, in)
	if err != nil {
		var zero T
		return zero, err
	}
	return response.As[T](body)
}
