package response

import (
	"fmt"

	"github.com/kbukum/apiruntime/errors"
)

// Variant is one member type of a Union.
type Variant struct {
	Name   string
	Decode func(v any) (any, error)
}

// VariantOf returns a Variant decoding into T. Decoding is strict: a key T
// has no field for rejects the variant.
func VariantOf[T any](name string) Variant {
	return Variant{
		Name: name,
		Decode: func(v any) (any, error) {
			var out T
			if err := decodeInto(v, &out, true); err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

// Union decodes a value that may be one of several types.
//
// When Discriminator is set and the value carries a string under that key
// that Mapping resolves to a variant name, that variant decodes the value.
// Otherwise Variants are tried in order and the first one that decodes
// wins.
type Union struct {
	Name          string
	Discriminator string
	// Mapping maps discriminator values to variant names.
	Mapping  map[string]string
	Variants []Variant
}

// Decode decodes v into one of the union's variants.
func (u Union) Decode(v any) (any, error) {
	if variant, ok := u.discriminated(v); ok {
		out, err := variant.Decode(v)
		if err != nil {
			return nil, errors.DecodeFailed(fmt.Errorf("%s variant %s: %w", u.Name, variant.Name, err))
		}
		return out, nil
	}

	for _, variant := range u.Variants {
		if out, err := variant.Decode(v); err == nil {
			return out, nil
		}
	}
	return nil, errors.NoMatchingVariant(u.Name, u.variantNames())
}

func (u Union) discriminated(v any) (Variant, bool) {
	if u.Discriminator == "" {
		return Variant{}, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return Variant{}, false
	}
	value, ok := m[u.Discriminator].(string)
	if !ok {
		return Variant{}, false
	}
	name, ok := u.Mapping[value]
	if !ok {
		return Variant{}, false
	}
	for _, variant := range u.Variants {
		if variant.Name == name {
			return variant, true
		}
	}
	return Variant{}, false
}

func (u Union) variantNames() []string {
	names := make([]string, len(u.Variants))
	for i, v := range u.Variants {
		names[i] = v.Name
	}
	return names
}
