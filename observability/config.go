package observability

import (
	"time"

	"github.com/kbukum/apiruntime/validation"
	"github.com/kbukum/apiruntime/version"
)

// Config configures the OTLP exporters installed by Init.
type Config struct {
	// Enabled installs the exporters. When false Init is a no-op.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// ServiceName is the name of the service.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// ServiceVersion defaults to the module version.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment (dev, staging, prod).
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true"`
	// Insecure allows insecure connections (for development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// SampleRate is the sampling rate (0.0 to 1.0).
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	// MetricInterval is the metric export interval.
	MetricInterval time.Duration `yaml:"metric_interval" mapstructure:"metric_interval" validate:"gte=0"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
// SampleRate is left alone: zero is a valid rate.
func (c *Config) ApplyDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = version.Product
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = version.GetShortVersion()
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.MetricInterval == 0 {
		c.MetricInterval = 15 * time.Second
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
