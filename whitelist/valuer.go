package whitelist

// Valuer is implemented by parameter value objects (enums, ids, dates) that
// know their wire representation.
type Valuer interface {
	WireValue() any
}

// ResolveValues replaces every Valuer, at the top level and inside slices,
// with its wire value.
func ResolveValues(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = resolve(v)
	}
	return out
}

func resolve(v any) any {
	switch t := v.(type) {
	case Valuer:
		return t.WireValue()
	case []any:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = resolve(item)
		}
		return items
	}
	return v
}
