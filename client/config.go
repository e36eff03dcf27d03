package client

import (
	"github.com/kbukum/apiruntime/config"
	"github.com/kbukum/apiruntime/endpoint"
	"github.com/kbukum/apiruntime/httpclient"
	"github.com/kbukum/apiruntime/logger"
	"github.com/kbukum/apiruntime/observability"
	"github.com/kbukum/apiruntime/validation"
)

// SnakeCaseConfig selects which inputs have their keys snake_cased.
type SnakeCaseConfig struct {
	Params   bool `yaml:"params" mapstructure:"params"`
	Body     bool `yaml:"body" mapstructure:"body"`
	FormData bool `yaml:"form_data" mapstructure:"form_data"`
}

// Config configures a Client built by New.
type Config struct {
	// Name identifies the client in logs, telemetry and env variables.
	Name string `yaml:"name" mapstructure:"name" validate:"required"`
	// PrependPath is put verbatim in front of every endpoint URI.
	PrependPath string `yaml:"prepend_path" mapstructure:"prepend_path"`
	// TransformHAL unwraps _embedded and strips _links from responses.
	TransformHAL bool            `yaml:"transform_hal" mapstructure:"transform_hal"`
	SnakeCase    SnakeCaseConfig `yaml:"snake_case" mapstructure:"snake_case"`
	// ReservedKeyPrefix is stripped from body and form data keys.
	ReservedKeyPrefix string `yaml:"reserved_key_prefix" mapstructure:"reserved_key_prefix"`
	// EndpointsFile is a YAML endpoint table loaded into the registry.
	EndpointsFile string `yaml:"endpoints_file" mapstructure:"endpoints_file"`

	HTTP      httpclient.Config    `yaml:"http" mapstructure:"http"`
	Logging   logger.Config        `yaml:"logging" mapstructure:"logging"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.ReservedKeyPrefix == "" {
		c.ReservedKeyPrefix = endpoint.DefaultReservedPrefix
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = c.Name
	}
	c.HTTP.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// LoadConfig loads the configuration of the client called name from files
// and PREFIX_* environment variables, then applies defaults and validates.
func LoadConfig(name string, opts ...config.LoaderOption) (*Config, error) {
	cfg := &Config{Name: name}
	if err := config.LoadAndValidate(name, cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}
