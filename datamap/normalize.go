package datamap

// NormalizeOptions selects the optional steps of Normalize.
type NormalizeOptions struct {
	// ReservedPrefix is stripped from keys. Empty disables the step.
	ReservedPrefix string
	// SnakeCase re-keys the top level with snake_case names.
	SnakeCase bool
}

// Normalize runs the request payload pipeline. The order matters: empty
// containers are only detected after nulls were removed, and prefixes are
// stripped before keys are re-cased.
func Normalize(data Map, opts NormalizeOptions) Map {
	if data == nil {
		return nil
	}
	data = RejectNullValues(data, true)
	data = RejectEmptyContainerValues(data)
	data = RemovePrefixFromKeys(data, opts.ReservedPrefix)
	if opts.SnakeCase {
		data = ToSnakeCasedKeys(data, false)
	}
	return data
}
