// Package validation checks endpoint definitions and configuration structs.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Failures are returned as
// *errors.AppError values whose code is chosen by the caller, with the
// offending fields listed under the "fields" detail.
//
// # Struct Tag Validation
//
//	type Definition struct {
//	    Name   string `yaml:"name" validate:"required"`
//	    Method string `yaml:"method" validate:"required,http_method"`
//	}
//	err := validation.ValidateAs(errors.ErrCodeInvalidEndpoint, def)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(strings.Contains(uri, "{id}"), "route_params", "must occur in uri")
//	err := v.Validate(errors.ErrCodeInvalidEndpoint)
package validation
