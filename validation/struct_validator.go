package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/apiruntime/errors"
	"github.com/kbukum/apiruntime/strcase"
)

// HTTPMethods lists the methods accepted by the http_method tag.
var HTTPMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their config key
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"mapstructure", "yaml", "json"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					break
				}
				if name != "" {
					return name
				}
			}
			return strcase.Decamelize(fld.Name)
		})

		_ = validate.RegisterValidation("http_method", func(fl validator.FieldLevel) bool {
			method := fl.Field().String()
			for _, m := range HTTPMethods {
				if method == m {
					return true
				}
			}
			return false
		})
	})
	return validate
}

// Validate validates a struct using struct tags and reports failures as
// INVALID_CONFIG.
func Validate(s any) error {
	return ValidateAs(errors.ErrCodeInvalidConfig, s)
}

// ValidateAs validates a struct using struct tags.
// Uses tags like `validate:"required,oneof=json console"`.
func ValidateAs(code errors.ErrorCode, s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.New(code, "validation failed").WithCause(err)
	}

	v := New()
	for _, e := range validationErrors {
		v.AddError(fieldPath(e), formatValidationError(e))
	}
	return v.Validate(code)
}

// fieldPath drops the root struct name from the namespace, so nested fields
// read as "http.base_url".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return e.Field()
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + e.Param()
	case "http_method":
		return "must be one of: " + strings.Join(HTTPMethods, " ")
	default:
		return "is invalid"
	}
}
