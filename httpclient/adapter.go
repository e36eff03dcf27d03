package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/http2"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"github.com/kbukum/apiruntime/logger"
	"github.com/kbukum/apiruntime/request"
	"github.com/kbukum/apiruntime/version"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// Adapter is a configurable HTTP adapter with built-in auth, TLS, cookies
// and rate limiting. It is safe for concurrent use.
type Adapter struct {
	httpClient *http.Client
	config     Config
	limiter    *rate.Limiter
	log        *logger.Logger
}

// Option customizes an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger used for per-request debug output.
func WithLogger(l *logger.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.log = l
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client. Config.TLS,
// Config.ForceHTTP2 and Config.Cookies are not applied to it.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Adapter) {
		if c != nil {
			a.httpClient = c
		}
	}
}

// New creates a new HTTP adapter with the given configuration.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	// Apply TLS configuration
	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	if cfg.ForceHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			return nil, fmt.Errorf("httpclient: configure http2: %w", err)
		}
	}

	client := &http.Client{Transport: transport}
	if cfg.Cookies {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("httpclient: cookie jar: %w", err)
		}
		client.Jar = jar
	}

	a := &Adapter{
		httpClient: client,
		config:     cfg,
		log:        logger.WithComponent("httpclient"),
	}
	if cfg.RateLimit != nil {
		a.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}

	// Apply options
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Send maps runtime request options onto a Request and executes it. A JSON
// body and form params in the same call are rejected.
func (a *Adapter) Send(ctx context.Context, method, uri string, opts request.Options) (*Response, error) {
	if opts.JSON != nil && opts.FormParams != nil {
		return nil, NewInvalidRequestError("json body and form params are mutually exclusive")
	}
	req := Request{
		Method:  method,
		Path:    uri,
		Headers: opts.Headers,
		Query:   opts.Query,
		Form:    opts.FormParams,
		Timeout: opts.Timeout,
	}
	if opts.JSON != nil {
		req.Body = opts.JSON
	}
	return a.Do(ctx, req)
}

// Do executes an HTTP request and returns the complete response. For non-2xx
// responses both the response and a classified *Error are returned.
func (a *Adapter) Do(ctx context.Context, req Request) (*Response, error) {
	timeout := a.config.Timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return nil, NewTimeoutError(fmt.Errorf("rate limit wait: %w", err))
		}
	}

	httpReq, err := a.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := a.execute(ctx, httpReq)
	fields := logger.DurationFields(httpReq.Method, httpReq.URL.Redacted(), time.Since(start))
	if resp != nil {
		fields[logger.FieldStatus] = resp.StatusCode
	}
	if err != nil {
		fields[logger.FieldError] = err.Error()
	}
	a.log.WithContext(ctx).Debug("http request", fields)
	return resp, err
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (a *Adapter) Unwrap() *http.Client {
	return a.httpClient
}

// Close releases idle connections.
func (a *Adapter) Close() {
	a.httpClient.CloseIdleConnections()
}

// GetConfig returns the adapter's configuration.
func (a *Adapter) GetConfig() Config {
	return a.config
}

func (a *Adapter) execute(ctx context.Context, httpReq *http.Request) (*Response, error) {
	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Proto:      resp.Proto,
		Headers:    resp.Header,
		Body:       body,
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		classErr.Method = httpReq.Method
		classErr.URL = httpReq.URL.Redacted()
		return result, classErr
	}

	return result, nil
}

// buildRequest constructs an *http.Request from the adapter config and request.
func (a *Adapter) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	// Resolve URL
	target := req.Path
	if a.config.BaseURL != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		target = strings.TrimRight(a.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}

	// Build body
	var (
		body        io.Reader
		contentType string
		err         error
	)
	if req.Form != nil {
		body = strings.NewReader(EncodeQuery(req.Form, a.config.QueryFormat))
		contentType = contentTypeForm
	} else {
		body, contentType, err = encodeBody(req.Body)
		if err != nil {
			return nil, NewInvalidRequestError("encode body: %w", err)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, NewInvalidRequestError("create request: %w", err)
	}

	// Apply query parameters after any query already in the path
	if encoded := EncodeQuery(req.Query, a.config.QueryFormat); encoded != "" {
		if httpReq.URL.RawQuery != "" {
			httpReq.URL.RawQuery += "&" + encoded
		} else {
			httpReq.URL.RawQuery = encoded
		}
	}

	// Apply default headers
	userAgent := a.config.UserAgent
	if userAgent == "" {
		userAgent = version.UserAgent()
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept", contentTypeJSON)
	for k, v := range a.config.Headers {
		httpReq.Header.Set(k, v)
	}

	// Apply request-specific headers (override defaults)
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if httpReq.Header.Get(a.config.RequestIDHeader) == "" {
		httpReq.Header.Set(a.config.RequestIDHeader, uuid.NewString())
	}

	// Set content-type if body present and not already set
	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	// Apply auth: request-level overrides client-level
	auth := a.config.Auth
	if req.Auth != nil {
		auth = req.Auth
	}
	if err := auth.apply(httpReq); err != nil {
		return nil, NewInvalidRequestError("apply auth: %w", err)
	}

	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), contentTypeJSON, nil
	}
}
