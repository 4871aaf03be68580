package validator

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownSchema is returned when validating against an unregistered schema name.
var ErrUnknownSchema = errors.New("unknown schema")

type validateFunc func(raw map[string]any) (any, error)

// Registry maps schema names to their validators so callers can pick the
// record type at runtime.
type Registry struct {
	validators map[string]validateFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{validators: make(map[string]validateFunc)}
}

// Register adds a schema to the registry under its name.
func Register[T any](r *Registry, s *Schema[T]) {
	r.validators[s.Name()] = func(raw map[string]any) (any, error) {
		return s.Validate(raw)
	}
}

// Validate runs the schema registered as name against raw. On success the
// returned value is the typed record (not a pointer).
func (r *Registry) Validate(raw map[string]any, name string) (any, error) {
	validate, ok := r.validators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}

	rec, err := validate(raw)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Names returns the registered schema names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.validators))
	for name := range r.validators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
