package validator

import (
	"slices"

	"github.com/gabapcia/ospeople/internal/pkg/types"
)

// Rule inspects a record whose own fields all passed and returns any
// cross-field violations. Violation paths are relative to the record.
type Rule[T any] func(rec *T) []Violation

// Schema describes how a raw mapping becomes a T: the bound fields, in
// order, and the cross-field rules evaluated afterwards.
//
// A Schema is immutable once built and safe for concurrent use.
type Schema[T any] struct {
	name   string
	fields []*Field[T]
	rules  []Rule[T]
	known  types.Set[string]
}

// NewSchema builds a schema from its field binders.
func NewSchema[T any](name string, fields ...*Field[T]) *Schema[T] {
	known := types.NewSet[string]()
	for _, f := range fields {
		known.Add(f.name)
	}

	return &Schema[T]{
		name:   name,
		fields: fields,
		known:  known,
	}
}

// WithRules returns a copy of the schema that also evaluates rules.
func (s *Schema[T]) WithRules(rules ...Rule[T]) *Schema[T] {
	return &Schema[T]{
		name:   s.name,
		fields: s.fields,
		rules:  slices.Concat(s.rules, rules),
		known:  s.known,
	}
}

// Name returns the schema name.
func (s *Schema[T]) Name() string {
	return s.name
}

// Validate decodes raw into a T. On any violation the zero T is returned
// together with a *Report listing all of them.
func (s *Schema[T]) Validate(raw map[string]any) (T, error) {
	report := newReport(s.name)

	rec, _ := s.decode(raw, "", report)
	if err := report.err(); err != nil {
		var zero T
		return zero, err
	}

	return rec, nil
}

// decode validates raw as a T located at path, appending violations to r.
// It reports whether the record, nested records included, is valid.
func (s *Schema[T]) decode(raw any, path string, r *Report) (T, bool) {
	var rec T

	fields, err := toMap(raw)
	if err != nil {
		r.add(path, Structural(err.Error()))
		return rec, false
	}

	before := r.Len()

	keys := make([]string, 0, len(fields))
	for key := range fields {
		if !s.known.Has(key) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	for _, key := range keys {
		r.add(joinPath(path, key), Structural(msgExtraFields))
	}

	fieldsPassed := true
	for _, f := range s.fields {
		if !f.bind(f, &rec, fields[f.name], joinPath(path, f.name), r) {
			fieldsPassed = false
		}
	}

	if fieldsPassed {
		for _, rule := range s.rules {
			for _, v := range rule(&rec) {
				r.add(path, v)
			}
		}
	}

	return rec, r.Len() == before
}
