package whitelist

import (
	"slices"
	"strings"
)

// ExpandDottedKeys rewrites every top-level key containing "." into a path
// of nested maps: {"filter.status": "open"} becomes
// {"filter": {"status": "open"}}. Siblings sharing a prefix are deep-merged
// into the same map, slices found at the same path are concatenated.
//
// Plain keys are placed first and dotted keys are then merged in sorted
// order, so the result does not depend on map iteration. The input is not
// modified and expanding an already expanded map returns an equal map.
func ExpandDottedKeys(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}
	out := make(map[string]any, len(params))
	var dotted []string
	for k, v := range params {
		if isDotted(k) {
			dotted = append(dotted, k)
			continue
		}
		out[k] = v
	}
	slices.Sort(dotted)

	for _, k := range dotted {
		prefix, rest, _ := strings.Cut(k, ".")
		nested := ExpandDottedKeys(map[string]any{rest: params[k]})
		out[prefix] = merge(out[prefix], nested)
	}
	return out
}

// isDotted reports whether k splits into a non-empty prefix and remainder.
// Keys like ".a" or "a." are kept verbatim.
func isDotted(k string) bool {
	prefix, rest, ok := strings.Cut(k, ".")
	return ok && prefix != "" && rest != ""
}

// merge combines dst and src into a new value. Maps merge key by key,
// slices append, anything else is replaced by src.
func merge(dst, src any) any {
	switch s := src.(type) {
	case map[string]any:
		d, ok := dst.(map[string]any)
		if !ok {
			return s
		}
		out := make(map[string]any, len(d)+len(s))
		for k, v := range d {
			out[k] = v
		}
		for k, v := range s {
			if existing, ok := out[k]; ok {
				out[k] = merge(existing, v)
				continue
			}
			out[k] = v
		}
		return out
	case []any:
		if d, ok := dst.([]any); ok {
			return append(slices.Clone(d), s...)
		}
	}
	return src
}
