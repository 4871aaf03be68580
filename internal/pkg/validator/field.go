package validator

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// Check validates one scalar value and returns it, possibly normalized,
// or a Violation describing why it was rejected.
type Check func(value string) (string, error)

const (
	msgRequired    = "field required"
	msgAtLeastOne  = "at least one entry is required"
	msgEmpty       = "must not be empty"
	msgNotString   = "must be a string"
	msgNotList     = "must be a list"
	msgNotMapping  = "must be a mapping"
	msgExtraFields = "extra fields not permitted"
)

var (
	errNotString  = errors.New(msgNotString)
	errNotMapping = errors.New(msgNotMapping)
)

// Field binds one named key of a raw mapping to a field of T.
//
// Binders are created with String, Enum, List, Record and Map and are meant
// to be assembled once into a Schema and shared by every validation.
type Field[T any] struct {
	name     string
	required bool
	nonEmpty bool

	// bind decodes raw into dst and reports whether the field itself
	// passed. Failures inside nested records do not count.
	bind func(f *Field[T], dst *T, raw any, path string, r *Report) bool
}

// Name returns the key the field is read from.
func (f *Field[T]) Name() string {
	return f.name
}

// Required rejects a missing field. Enum fields also reject an empty
// string; string fields run their checks on it instead.
func (f *Field[T]) Required() *Field[T] {
	f.required = true
	return f
}

// NonEmpty rejects a missing field, an empty string or an empty list.
func (f *Field[T]) NonEmpty() *Field[T] {
	f.required = true
	f.nonEmpty = true
	return f
}

// String binds a string field. A missing value defaults to "". Every check
// runs and each failure is reported; an empty value skips the checks unless
// the field is required.
func String[T any](name string, set func(*T, string), checks ...Check) *Field[T] {
	return &Field[T]{
		name: name,
		bind: func(f *Field[T], dst *T, raw any, path string, r *Report) bool {
			if raw == nil && f.required {
				r.add(path, Structural(msgRequired))
				return false
			}

			value, err := toString(raw)
			if err != nil {
				r.add(path, Structural(err.Error()))
				return false
			}

			if value == "" {
				switch {
				case f.nonEmpty:
					r.add(path, Structural(msgEmpty))
					return false
				case !f.required:
					set(dst, value)
					return true
				}
			}

			ok, out := true, value
			for _, check := range checks {
				normalized, err := check(out)
				if err != nil {
					r.addErr(path, err, KindFieldFormat)
					ok = false
					continue
				}
				out = normalized
			}

			if ok {
				set(dst, out)
			}
			return ok
		},
	}
}

// Enum binds a field whose wire form is one of a fixed set of display
// strings. parse maps the display string to the in-memory value; its error
// is reported as a FieldValueError.
func Enum[T, E any](name string, parse func(string) (E, error), set func(*T, E)) *Field[T] {
	return &Field[T]{
		name: name,
		bind: func(f *Field[T], dst *T, raw any, path string, r *Report) bool {
			value, err := toString(raw)
			if err != nil {
				r.add(path, Structural(err.Error()))
				return false
			}

			if value == "" {
				if f.required {
					r.add(path, Structural(msgRequired))
					return false
				}
				return true
			}

			parsed, err := parse(value)
			if err != nil {
				r.addErr(path, err, KindFieldValue)
				return false
			}

			set(dst, parsed)
			return true
		},
	}
}

// List binds a sequence of nested records validated by schema. A missing
// value defaults to an empty list. Each element is reported under
// "name[i]"; only valid elements are kept, and any element failure makes
// the whole record invalid.
func List[T, E any](name string, schema *Schema[E], set func(*T, []E)) *Field[T] {
	return &Field[T]{
		name: name,
		bind: func(f *Field[T], dst *T, raw any, path string, r *Report) bool {
			items, ok := toList(raw)
			if !ok {
				r.add(path, Structural(msgNotList))
				return false
			}

			if f.nonEmpty && len(items) == 0 {
				r.add(path, Structural(msgAtLeastOne))
				return false
			}

			out := make([]E, 0, len(items))
			for i, item := range items {
				if rec, valid := schema.decode(item, fmt.Sprintf("%s[%d]", path, i), r); valid {
					out = append(out, rec)
				}
			}

			set(dst, out)
			return true
		},
	}
}

// Record binds an optional nested record validated by schema. A missing
// value leaves the field nil.
func Record[T, E any](name string, schema *Schema[E], set func(*T, *E)) *Field[T] {
	return &Field[T]{
		name: name,
		bind: func(f *Field[T], dst *T, raw any, path string, r *Report) bool {
			if raw == nil {
				if f.required {
					r.add(path, Structural(msgRequired))
					return false
				}
				return true
			}

			if rec, valid := schema.decode(raw, path, r); valid {
				set(dst, &rec)
			}
			return true
		},
	}
}

// Map binds an opaque mapping that is passed through without validation.
// A missing value defaults to an empty mapping.
func Map[T any](name string, set func(*T, map[string]any)) *Field[T] {
	return &Field[T]{
		name: name,
		bind: func(f *Field[T], dst *T, raw any, path string, r *Report) bool {
			if raw == nil {
				if f.required {
					r.add(path, Structural(msgRequired))
					return false
				}
				set(dst, map[string]any{})
				return true
			}

			m, err := toMap(raw)
			if err != nil {
				r.add(path, Structural(err.Error()))
				return false
			}

			set(dst, m)
			return true
		},
	}
}

// toString coerces a decoded scalar into its string form. Dates decoded as
// time.Time keep only their calendar date.
func toString(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case time.Time:
		return v.Format(time.DateOnly), nil
	case map[string]any, map[any]any, []any:
		return "", errNotString
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", errNotString
	}
	return s, nil
}

func toList(raw any) ([]any, bool) {
	switch v := raw.(type) {
	case nil:
		return nil, true
	case []any:
		return v, true
	case []map[string]any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = item
		}
		return items, true
	}
	return nil, false
}

func toMap(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case map[string]any:
		return v, nil
	case map[any]any:
		m, err := cast.ToStringMapE(v)
		if err != nil {
			return nil, errNotMapping
		}
		return m, nil
	}
	return nil, errNotMapping
}
