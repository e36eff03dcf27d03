package response

import (
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/kbukum/apiruntime/errors"
)

// As decodes a normalized value into T, matching fields by their json tags.
// JSON numbers convert to any numeric field type and RFC 3339 strings to
// time.Time.
func As[T any](v any) (T, error) {
	var out T
	if err := decodeInto(v, &out, false); err != nil {
		var zero T
		return zero, errors.DecodeFailed(err)
	}
	return out, nil
}

// decodeInto decodes v into target. In strict mode keys without a matching
// field are an error.
func decodeInto(v, target any, strict bool) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           target,
		WeaklyTypedInput: !strict,
		ErrorUnused:      strict,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return dec.Decode(v)
}
