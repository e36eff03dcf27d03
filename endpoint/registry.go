package endpoint

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/kbukum/apiruntime/errors"
)

// Registry holds endpoint definitions by name.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

// NewRegistry creates a registry holding defs.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register validates def and adds it. Names must be unique.
func (r *Registry) Register(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[def.Name]; exists {
		return errors.InvalidEndpoint(def.Name, "already registered")
	}
	r.defs[def.Name] = def
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// Names returns the sorted names of all registered endpoints.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type table struct {
	Endpoints []Definition `yaml:"endpoints"`
}

// LoadYAML registers every definition of a YAML endpoint table. Loading
// stops at the first invalid definition; earlier ones stay registered.
func (r *Registry) LoadYAML(data []byte) error {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return errors.New(errors.ErrCodeInvalidEndpoint, "invalid endpoint table").WithCause(err)
	}
	for _, def := range t.Endpoints {
		if err := r.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads and registers a YAML endpoint table from path.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read endpoint table: %w", err)
	}
	return r.LoadYAML(data)
}
