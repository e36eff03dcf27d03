// Package config loads apiruntime configuration from a YAML file, an
// optional .env file and the environment.
//
// Precedence, highest first: environment variables, .env values, the YAML
// file, zero values. Environment variables are prefixed with the upper-cased
// service name, and nested keys are joined with underscores:
//
//	PETSTORE_HTTP_BASE_URL=https://api.example.com  ->  http.base_url
//	PETSTORE_TELEMETRY_ENABLED=true                 ->  telemetry.enabled
//
// Keys are discovered from the target struct's mapstructure tags, so
// environment variables bind even when no file sets the key.
//
// # Usage
//
//	var cfg client.Config
//	err := config.LoadAndValidate("petstore", &cfg)
package config
