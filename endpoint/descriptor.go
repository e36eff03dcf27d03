package endpoint

import (
	"net/url"
	"strings"

	"github.com/kbukum/apiruntime/datamap"
	"github.com/kbukum/apiruntime/errors"
	"github.com/kbukum/apiruntime/whitelist"
)

// Descriptor prepares the inputs of a single call to one endpoint.
// It is not safe for concurrent use.
type Descriptor struct {
	def      Definition
	settings settings

	params   map[string]any
	body     map[string]any
	formData map[string]any
}

// New returns a Descriptor for def. The definition is not validated here;
// Registry.Register does that.
func New(def Definition, opts ...Option) *Descriptor {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Descriptor{def: def, settings: s}
}

// Name returns the endpoint name.
func (d *Descriptor) Name() string { return d.def.Name }

// Method returns the HTTP method.
func (d *Descriptor) Method() string { return d.def.Method }

// Definition returns the definition the descriptor was built from.
func (d *Descriptor) Definition() Definition { return d.def }

// SetParams validates and stores the call parameters, replacing any stored
// before. Keys are snake_cased when enabled and renamed through the key map,
// value objects are resolved, then every key must be whitelisted or a route
// parameter. On failure the stored parameters are left untouched. A nil map
// is ignored.
func (d *Descriptor) SetParams(params map[string]any) error {
	if params == nil {
		return nil
	}
	if d.settings.snakeParams {
		params = datamap.ToSnakeCasedKeys(params, false)
	}
	params = whitelist.ConvertKeys(params, d.def.KeyMap)
	params = whitelist.ResolveValues(params)

	if err := whitelist.Validate(params, d.def.Params, d.def.RouteParams); err != nil {
		return err
	}
	d.params = params
	return nil
}

// SetBody normalizes and stores the JSON body. A nil map is ignored.
func (d *Descriptor) SetBody(body map[string]any) {
	if body == nil {
		return
	}
	d.body = datamap.Normalize(body, datamap.NormalizeOptions{
		ReservedPrefix: d.settings.reservedPrefix,
		SnakeCase:      d.settings.snakeBody,
	})
}

// SetFormData normalizes and stores the form fields. A nil map is ignored.
func (d *Descriptor) SetFormData(formData map[string]any) {
	if formData == nil {
		return
	}
	d.formData = datamap.Normalize(formData, datamap.NormalizeOptions{
		ReservedPrefix: d.settings.reservedPrefix,
		SnakeCase:      d.settings.snakeFormData,
	})
}

// URI renders the URI template with the stored route parameter values,
// path-escaped, and without leading slashes so it can be appended to a base
// path. A route parameter without a value is an error.
func (d *Descriptor) URI() (string, error) {
	uri := d.def.URI
	for _, name := range d.def.RouteParams {
		value, ok := d.params[name]
		if !ok || datamap.IsNull(value) {
			return "", errors.MissingRouteParameter(d.def.Name, name)
		}
		uri = strings.ReplaceAll(uri, placeholder(name), url.PathEscape(datamap.FormatScalar(value)))
	}
	return strings.TrimLeft(uri, "/"), nil
}

// Params returns the query view of the stored parameters: whitelisted keys
// only, nulls removed, dotted keys expanded into nested maps. Route
// parameters are not part of it unless they are also whitelisted.
func (d *Descriptor) Params() map[string]any {
	if d.params == nil {
		return map[string]any{}
	}
	query := whitelist.Filter(d.params, d.def.Params)
	query = datamap.RejectNullValues(query, true)
	return whitelist.ExpandDottedKeys(query)
}

// Body returns a copy of the normalized body, or nil if none was set.
func (d *Descriptor) Body() map[string]any {
	return datamap.Clone(d.body)
}

// FormData returns a copy of the normalized form data, or nil if none was set.
func (d *Descriptor) FormData() map[string]any {
	return datamap.Clone(d.formData)
}
