package service

import (
	"errors"
	"sort"
)

// Registry is an immutable set of loaded models keyed by name.
// It is built once at startup and shared read-only between requests.
type Registry struct {
	models map[string]Model
	names  []string
}

// NewRegistry creates a Registry holding a copy of models
func NewRegistry(models map[string]Model) *Registry {
	r := &Registry{
		models: make(map[string]Model, len(models)),
		names:  make([]string, 0, len(models)),
	}
	for name, m := range models {
		if m == nil {
			continue
		}
		r.models[name] = m
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	return r
}

// EmptyRegistry returns a registry without models
func EmptyRegistry() *Registry {
	return NewRegistry(nil)
}

// Len returns the number of loaded models
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// Names returns the model names in iteration order
func (r *Registry) Names() []string {
	if r == nil {
		return []string{}
	}
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Get returns the model registered under name
func (r *Registry) Get(name string) (Model, bool) {
	if r == nil {
		return nil, false
	}
	m, ok := r.models[name]
	return m, ok
}

// Close releases every model that holds resources
func (r *Registry) Close() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, name := range r.names {
		if c, ok := r.models[name].(Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
