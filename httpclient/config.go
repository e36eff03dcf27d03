package httpclient

import (
	"time"

	"github.com/kbukum/apiruntime/validation"
)

const (
	defaultTimeout         = 30 * time.Second
	defaultRequestIDHeader = "X-Request-ID"
)

// QueryFormat selects how slices are written in queries and form bodies.
type QueryFormat string

const (
	// QueryBrackets writes tags[]=a&tags[]=b.
	QueryBrackets QueryFormat = "brackets"
	// QueryIndices writes tags[0]=a&tags[1]=b.
	QueryIndices QueryFormat = "indices"
	// QueryRepeat writes tags=a&tags=b.
	QueryRepeat QueryFormat = "repeat"
)

// RateLimitConfig bounds the request rate of one Adapter.
type RateLimitConfig struct {
	// RPS is the sustained number of requests per second.
	RPS float64 `yaml:"rps" mapstructure:"rps" validate:"gt=0"`
	// Burst is the number of requests allowed at once. Defaults to 1.
	Burst int `yaml:"burst" mapstructure:"burst" validate:"gte=0"`
}

// Config configures the HTTP adapter.
type Config struct {
	// BaseURL is the base URL prepended to all request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout is the default request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// Auth configures default authentication applied to all requests.
	// Individual requests can override this.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// TLS configures TLS settings for the HTTP transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// ForceHTTP2 configures the transport with golang.org/x/net/http2.
	ForceHTTP2 bool `yaml:"force_http2" mapstructure:"force_http2"`

	// Cookies enables a cookie jar shared by all requests.
	Cookies bool `yaml:"cookies" mapstructure:"cookies"`

	// QueryFormat selects the slice encoding. Defaults to brackets.
	QueryFormat QueryFormat `yaml:"query_format" mapstructure:"query_format" validate:"omitempty,oneof=brackets indices repeat"`

	// RequestIDHeader names the header carrying a generated request ID.
	// Defaults to X-Request-ID. Requests that already set it keep theirs.
	RequestIDHeader string `yaml:"request_id_header" mapstructure:"request_id_header"`

	// UserAgent overrides the default apiruntime User-Agent.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// RateLimit enables client-side rate limiting. Nil disables it.
	RateLimit *RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.QueryFormat == "" {
		c.QueryFormat = QueryBrackets
	}
	if c.RequestIDHeader == "" {
		c.RequestIDHeader = defaultRequestIDHeader
	}
	if c.RateLimit != nil && c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 1
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
