package config

import (
	"reflect"
	"strings"
	"time"
)

// Keys lists the dotted mapstructure keys of cfg's leaf fields. Embedded
// structs tagged ",squash" are flattened; fields tagged "-" are skipped.
func Keys(cfg any) []string {
	t := reflect.TypeOf(cfg)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return collectKeys(t, "", map[reflect.Type]bool{})
}

var leafTypes = map[reflect.Type]bool{
	reflect.TypeOf(time.Duration(0)): true,
	reflect.TypeOf(time.Time{}):      true,
}

func collectKeys(t reflect.Type, prefix string, visiting map[reflect.Type]bool) []string {
	if visiting[t] {
		return nil
	}
	visiting[t] = true
	defer delete(visiting, t)

	var keys []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, squash := tagName(f)
		if name == "-" {
			continue
		}

		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}

		if ft.Kind() == reflect.Struct && !leafTypes[ft] {
			next := prefix + name + "."
			if squash {
				next = prefix
			}
			keys = append(keys, collectKeys(ft, next, visiting)...)
			continue
		}
		keys = append(keys, prefix+name)
	}
	return keys
}

// tagName returns the mapstructure key of f, defaulting to the lower-cased
// field name, and whether the field is squashed into its parent.
func tagName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("mapstructure")
	if !ok {
		return strings.ToLower(f.Name), false
	}
	name, opts, _ := strings.Cut(tag, ",")
	squash := strings.Contains(opts, "squash")
	if name == "" && !squash {
		name = strings.ToLower(f.Name)
	}
	return name, squash
}
