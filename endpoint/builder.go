package endpoint

import "github.com/kbukum/apiruntime/errors"

// Builder creates descriptors for registered endpoints, all sharing the
// same options.
type Builder struct {
	registry *Registry
	opts     []Option
}

// NewBuilder returns a Builder resolving names in registry.
func NewBuilder(registry *Registry, opts ...Option) *Builder {
	return &Builder{registry: registry, opts: opts}
}

// Build returns a fresh Descriptor for the endpoint registered as name.
func (b *Builder) Build(name string) (*Descriptor, error) {
	if b.registry == nil {
		return nil, errors.UnknownEndpoint(name)
	}
	def, ok := b.registry.Lookup(name)
	if !ok {
		return nil, errors.UnknownEndpoint(name)
	}
	return New(def, b.opts...), nil
}
