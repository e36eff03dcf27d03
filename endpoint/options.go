package endpoint

// DefaultReservedPrefix is the prefix generated code puts in front of field
// names that are not valid identifiers (e.g. "prefixNumber3d" for "3d").
const DefaultReservedPrefix = "prefixNumber"

type settings struct {
	snakeParams    bool
	snakeBody      bool
	snakeFormData  bool
	reservedPrefix string
}

func defaultSettings() settings {
	return settings{reservedPrefix: DefaultReservedPrefix}
}

// Option configures how a Descriptor prepares its inputs.
type Option func(*settings)

// WithSnakeCaseParams snake_cases parameter keys before validation.
func WithSnakeCaseParams(enabled bool) Option {
	return func(s *settings) { s.snakeParams = enabled }
}

// WithSnakeCaseBody snake_cases top-level body keys.
func WithSnakeCaseBody(enabled bool) Option {
	return func(s *settings) { s.snakeBody = enabled }
}

// WithSnakeCaseFormData snake_cases top-level form data keys.
func WithSnakeCaseFormData(enabled bool) Option {
	return func(s *settings) { s.snakeFormData = enabled }
}

// WithReservedPrefix sets the key prefix stripped from body and form data.
// An empty prefix disables stripping.
func WithReservedPrefix(prefix string) Option {
	return func(s *settings) { s.reservedPrefix = prefix }
}
