package whitelist

import (
	"slices"
	"strings"

	"github.com/kbukum/apiruntime/errors"
)

// ArrayMarker marks a whitelist entry whose parameter may be repeated.
const ArrayMarker = "[]"

// NormalizeEntry returns the name a whitelist entry matches against.
func NormalizeEntry(name string) string {
	return strings.TrimSuffix(name, ArrayMarker)
}

// Normalize strips the array marker from every entry. Duplicates are removed,
// the first occurrence keeps its position.
func Normalize(entries []string) []string {
	out := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		n := NormalizeEntry(e)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Allowed returns every name accepted by Validate: the normalized whitelist
// followed by the route parameters, without duplicates.
func Allowed(whitelist, routeParams []string) []string {
	return Normalize(append(slices.Clone(whitelist), routeParams...))
}

// Filter keeps only the keys present in the normalized whitelist.
func Filter(params map[string]any, whitelist []string) map[string]any {
	if params == nil {
		return nil
	}
	allowed := Normalize(whitelist)
	out := make(map[string]any, len(params))
	for k, v := range params {
		if slices.Contains(allowed, k) {
			out[k] = v
		}
	}
	return out
}

// Validate fails when params holds a key that is neither a whitelisted name
// nor a route parameter. The error names every offending key.
func Validate(params map[string]any, whitelist, routeParams []string) error {
	allowed := Allowed(whitelist, routeParams)

	var invalid []string
	for k := range params {
		if !slices.Contains(allowed, k) {
			invalid = append(invalid, k)
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	slices.Sort(invalid)
	return errors.InvalidParameter(invalid, allowed)
}

// ConvertKeys renames keys found in keyMap. Mapped names ending with the
// array marker are sent without it. Keys absent from keyMap are kept.
func ConvertKeys(params map[string]any, keyMap map[string]string) map[string]any {
	if params == nil || len(keyMap) == 0 {
		return params
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		if mapped, ok := keyMap[k]; ok {
			k = NormalizeEntry(mapped)
		}
		out[k] = v
	}
	return out
}
