package httpclient

import (
	"net/url"
	"sort"
	"strconv"

	"github.com/kbukum/apiruntime/datamap"
)

// EncodeValues flattens data into url.Values. Nested maps become
// parent[child] keys and slices follow format. Nil values are skipped.
// Maps found inside slices are always indexed so their fields stay grouped.
func EncodeValues(data map[string]any, format QueryFormat) url.Values {
	values := url.Values{}
	for _, k := range sortedKeys(data) {
		appendValue(values, k, data[k], format)
	}
	return values
}

// EncodeQuery returns EncodeValues(data, format).Encode().
func EncodeQuery(data map[string]any, format QueryFormat) string {
	return EncodeValues(data, format).Encode()
}

func appendValue(values url.Values, key string, value any, format QueryFormat) {
	if datamap.IsNull(value) {
		return
	}
	if m, ok := datamap.AsMap(value); ok {
		for _, k := range sortedKeys(m) {
			appendValue(values, key+"["+k+"]", m[k], format)
		}
		return
	}
	if items, ok := datamap.AsSlice(value); ok {
		for i, item := range items {
			appendValue(values, sliceKey(key, i, item, format), item, format)
		}
		return
	}
	values.Add(key, datamap.FormatScalar(value))
}

func sliceKey(key string, i int, item any, format QueryFormat) string {
	if datamap.IsAssociative(item) {
		format = QueryIndices
	}
	switch format {
	case QueryIndices:
		return key + "[" + strconv.Itoa(i) + "]"
	case QueryRepeat:
		return key
	default:
		return key + "[]"
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
