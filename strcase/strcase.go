package strcase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultDelimiter separates words in a decamelized identifier.
const DefaultDelimiter = "_"

type options struct {
	delimiter string
	pascal    bool
}

// Option configures a conversion.
type Option func(*options)

// WithDelimiter sets the word delimiter. Defaults to "_".
func WithDelimiter(d string) Option {
	return func(o *options) {
		if d != "" {
			o.delimiter = d
		}
	}
}

// Pascal makes Camelize keep the first letter upper-cased.
func Pascal() Option {
	return func(o *options) { o.pascal = true }
}

func apply(opts []Option) options {
	o := options{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Camelize joins delimiter-separated words, upper-casing the first letter of
// each word. The first letter of the result is lower-cased unless Pascal is set.
// Letters other than word initials are left untouched.
func Camelize(s string, opts ...Option) string {
	o := apply(opts)

	var b strings.Builder
	b.Grow(len(s))
	for _, word := range strings.Split(s, o.delimiter) {
		b.WriteString(upperFirst(word))
	}

	if o.pascal {
		return b.String()
	}
	return lowerFirst(b.String())
}

// boundary patterns are compiled once per delimiter.
var (
	lowerUpper = regexp.MustCompile(`([a-z\d])([A-Z])`)
	boundaries = map[string]*regexp.Regexp{
		DefaultDelimiter: acronymBoundary(DefaultDelimiter),
	}
)

// acronymBoundary matches an upper-case run followed by a lower-case letter,
// e.g. the "PSe" in "HTTPServer".
func acronymBoundary(delimiter string) *regexp.Regexp {
	return regexp.MustCompile(`([^` + regexp.QuoteMeta(delimiter) + `])([A-Z][a-z])`)
}

// Decamelize inserts the delimiter at word boundaries of a camelCase or
// PascalCase identifier and lower-cases the result. Acronym runs stay
// together: "HTTPServer" becomes "http_server".
func Decamelize(s string, opts ...Option) string {
	o := apply(opts)

	acronym, ok := boundaries[o.delimiter]
	if !ok {
		acronym = acronymBoundary(o.delimiter)
	}

	repl := "${1}" + strings.ReplaceAll(o.delimiter, "$", "$$") + "${2}"
	s = lowerUpper.ReplaceAllString(s, repl)
	s = acronym.ReplaceAllString(s, repl)
	return strings.ToLower(s)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
