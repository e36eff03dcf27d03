package datamap

import (
	"reflect"
	"strings"

	"github.com/kbukum/apiruntime/strcase"
)

// Map is a decoded JSON object.
type Map = map[string]any

// RejectNullValues removes keys whose value is nil. With recursive set, nil
// entries are also removed from every nested map and slice.
func RejectNullValues(data Map, recursive bool) Map {
	if data == nil {
		return nil
	}
	out := make(Map, len(data))
	for k, v := range data {
		if IsNull(v) {
			continue
		}
		if recursive {
			v = rejectNested(v)
		}
		out[k] = v
	}
	return out
}

func rejectNested(v any) any {
	switch t := v.(type) {
	case Map:
		return RejectNullValues(t, true)
	case []any:
		items := make([]any, 0, len(t))
		for _, item := range t {
			if IsNull(item) {
				continue
			}
			items = append(items, rejectNested(item))
		}
		return items
	}
	if m, ok := AsMap(v); ok {
		return RejectNullValues(m, true)
	}
	if items, ok := AsSlice(v); ok {
		return rejectNested(items)
	}
	return v
}

// RejectEmptyContainerValues removes keys whose value is an empty map,
// slice or array.
func RejectEmptyContainerValues(data Map) Map {
	if data == nil {
		return nil
	}
	out := make(Map, len(data))
	for k, v := range data {
		if IsEmptyContainer(v) {
			continue
		}
		out[k] = v
	}
	return out
}

// RemovePrefixFromKeys rewrites every key starting with prefix to the
// remainder after it. A key equal to the prefix is kept as is.
func RemovePrefixFromKeys(data Map, prefix string) Map {
	if data == nil {
		return nil
	}
	out := make(Map, len(data))
	for k, v := range data {
		if prefix != "" && len(k) > len(prefix) && strings.HasPrefix(k, prefix) {
			k = k[len(prefix):]
		}
		out[k] = v
	}
	return out
}

// ToSnakeCasedKeys re-keys data with strcase.Decamelize.
func ToSnakeCasedKeys(data Map, recursive bool) Map {
	return process(data, func(k string) string { return strcase.Decamelize(k) }, recursive)
}

// ToCamelCasedKeys re-keys data with strcase.Camelize.
func ToCamelCasedKeys(data Map, recursive bool) Map {
	return process(data, func(k string) string { return strcase.Camelize(k) }, recursive)
}

// process re-keys a map. When recursive, nested maps are re-keyed too,
// including maps found inside slices; slice indices are never renamed.
func process(data Map, key func(string) string, recursive bool) Map {
	if data == nil {
		return nil
	}
	out := make(Map, len(data))
	for k, v := range data {
		if recursive {
			v = processValue(v, key)
		}
		out[key(k)] = v
	}
	return out
}

func processValue(v any, key func(string) string) any {
	switch t := v.(type) {
	case Map:
		return process(t, key, true)
	case []any:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = processValue(item, key)
		}
		return items
	}
	if m, ok := AsMap(v); ok {
		return process(m, key, true)
	}
	if items, ok := AsSlice(v); ok {
		return processValue(items, key)
	}
	return v
}

// IsAssociative reports whether v is keyed like an object rather than
// indexed like a list.
func IsAssociative(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(Map); ok {
		return true
	}
	return reflect.ValueOf(v).Kind() == reflect.Map
}

// IsNull reports whether v is nil or a nil pointer/interface.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsEmptyContainer reports whether v is a map, slice or array with no elements.
func IsEmptyContainer(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	}
	return false
}

// Clone returns a deep copy of data's maps and slices. Leaf values are shared.
func Clone(data Map) Map {
	return process(data, func(k string) string { return k }, true)
}

// AsMap converts any map with string keys (map[string]string, named map
// types, ...) to a shallow Map copy.
func AsMap(v any) (Map, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(Map, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// AsSlice converts any slice other than []byte to a shallow []any copy.
func AsSlice(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
