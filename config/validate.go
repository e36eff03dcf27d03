package config

// Config is implemented by configuration structs that fill their own
// defaults and check themselves.
type Config interface {
	ApplyDefaults()
	Validate() error
}

// LoadAndValidate loads cfg like Load, then applies defaults and validates.
func LoadAndValidate(serviceName string, cfg Config, opts ...LoaderOption) error {
	if err := Load(serviceName, cfg, opts...); err != nil {
		return err
	}
	cfg.ApplyDefaults()
	return cfg.Validate()
}
