package endpoint

import (
	"strings"

	"github.com/kbukum/apiruntime/errors"
	"github.com/kbukum/apiruntime/validation"
)

// Definition is the static description of one API operation.
type Definition struct {
	Name   string `yaml:"name" validate:"required"`
	Method string `yaml:"method" validate:"required,http_method"`
	// URI is the path template; route parameters appear as {name}.
	URI         string   `yaml:"uri" validate:"required"`
	RouteParams []string `yaml:"route_params"`
	// Params is the query parameter whitelist. Entries ending in "[]" accept
	// repeated values.
	Params []string `yaml:"params"`
	// KeyMap renames caller keys to wire names before validation, for
	// names that cannot be spelled as identifiers ("filter.status").
	KeyMap map[string]string `yaml:"key_map"`
}

// Validate checks the struct tags and that every route parameter is
// declared once and occurs in the URI template.
func (d Definition) Validate() error {
	if err := validation.ValidateAs(errors.ErrCodeInvalidEndpoint, d); err != nil {
		return err
	}

	v := validation.New()
	v.Unique("route_params", d.RouteParams)
	for _, name := range d.RouteParams {
		v.Custom(strings.Contains(d.URI, placeholder(name)), "route_params",
			"\""+name+"\" does not occur in uri "+d.URI)
	}
	return v.Validate(errors.ErrCodeInvalidEndpoint)
}

func placeholder(name string) string {
	return "{" + name + "}"
}
