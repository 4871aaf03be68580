package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a rule violation.
type Kind int

const (
	// KindFieldFormat marks a scalar value that failed its primitive check.
	KindFieldFormat Kind = iota + 1
	// KindFieldValue marks an enum field holding a value outside its set.
	KindFieldValue
	// KindCrossField marks a rule spanning several fields of one record.
	KindCrossField
	// KindStructural marks a missing, misshapen or unexpected field.
	KindStructural
)

// Sentinels backing each Kind, so callers can use errors.Is on a Report.
var (
	ErrFieldFormat = errors.New("field format error")
	ErrFieldValue  = errors.New("field value error")
	ErrCrossField  = errors.New("cross-field error")
	ErrStructural  = errors.New("structural error")
)

var kindNames = map[Kind]string{
	KindFieldFormat: "FieldFormatError",
	KindFieldValue:  "FieldValueError",
	KindCrossField:  "CrossFieldError",
	KindStructural:  "StructuralError",
}

// String returns the kind name used in reports, such as "StructuralError".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText renders the kind by name in YAML and JSON reports.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k Kind) sentinel() error {
	switch k {
	case KindFieldFormat:
		return ErrFieldFormat
	case KindFieldValue:
		return ErrFieldValue
	case KindCrossField:
		return ErrCrossField
	case KindStructural:
		return ErrStructural
	}
	return nil
}

// Violation is a single failed rule, located by a path such as
// "roles[2].jurisdiction". Primitive checks return violations with an
// empty Path; the binder fills it in.
type Violation struct {
	Path    string `json:"path" yaml:"path"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// Error renders the violation as "path: message".
func (v Violation) Error() string {
	if v.Path == "" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Unwrap exposes the sentinel matching the violation kind.
func (v Violation) Unwrap() error {
	return v.Kind.sentinel()
}

// Format builds a FieldFormatError violation.
func Format(message string) Violation {
	return Violation{Kind: KindFieldFormat, Message: message}
}

// InvalidValue builds a FieldValueError naming the permitted values.
func InvalidValue(value string, permitted []string) Violation {
	return Violation{
		Kind:    KindFieldValue,
		Message: fmt.Sprintf("invalid value %q, permitted: %s", value, strings.Join(permitted, ", ")),
	}
}

// CrossField builds a CrossFieldError attached to the given field of the record.
func CrossField(field, message string) Violation {
	return Violation{Path: field, Kind: KindCrossField, Message: message}
}

// Structural builds a StructuralError.
func Structural(message string) Violation {
	return Violation{Kind: KindStructural, Message: message}
}

// Report aggregates every violation found while validating one record.
type Report struct {
	Schema     string      `json:"schema" yaml:"schema"`
	Violations []Violation `json:"violations" yaml:"violations"`
}

func newReport(schema string) *Report {
	return &Report{Schema: schema}
}

// Error lists every violation after the schema name.
func (r *Report) Error() string {
	if len(r.Violations) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		parts = append(parts, v.Error())
	}

	prefix := ErrValidationFailed.Error()
	if r.Schema != "" {
		prefix = r.Schema + ": " + prefix
	}
	return prefix + ": " + strings.Join(parts, "; ")
}

// Unwrap returns ErrValidationFailed followed by every violation.
func (r *Report) Unwrap() []error {
	errs := make([]error, 0, len(r.Violations)+1)
	errs = append(errs, ErrValidationFailed)
	for _, v := range r.Violations {
		errs = append(errs, v)
	}
	return errs
}

// Len returns the number of violations.
func (r *Report) Len() int {
	return len(r.Violations)
}

// Has reports whether any violation is located at path.
func (r *Report) Has(path string) bool {
	for _, v := range r.Violations {
		if v.Path == path {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for path, in the order they were found.
func (r *Report) Get(path string) []string {
	var messages []string
	for _, v := range r.Violations {
		if v.Path == path {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Paths returns every distinct violated path in first-seen order.
func (r *Report) Paths() []string {
	var (
		paths []string
		seen  = make(map[string]struct{})
	)
	for _, v := range r.Violations {
		if _, ok := seen[v.Path]; ok {
			continue
		}
		seen[v.Path] = struct{}{}
		paths = append(paths, v.Path)
	}
	return paths
}

// ByPath maps each violated path to its messages.
func (r *Report) ByPath() map[string][]string {
	out := make(map[string][]string, len(r.Violations))
	for _, v := range r.Violations {
		out[v.Path] = append(out[v.Path], v.Message)
	}
	return out
}

func (r *Report) add(path string, v Violation) {
	v.Path = joinPath(path, v.Path)
	r.Violations = append(r.Violations, v)
}

// addErr records err at path. Errors that are not violations are recorded
// with the fallback kind.
func (r *Report) addErr(path string, err error, fallback Kind) {
	var v Violation
	if errors.As(err, &v) {
		r.add(path, v)
		return
	}
	r.add(path, Violation{Kind: fallback, Message: err.Error()})
}

// err returns the report as an error, or nil when it is empty.
func (r *Report) err() error {
	if len(r.Violations) == 0 {
		return nil
	}
	return r
}

// ExtractReport returns the Report carried by err, or nil.
func ExtractReport(err error) *Report {
	var report *Report
	if errors.As(err, &report) {
		return report
	}
	return nil
}

// joinPath appends name to a dotted path. Index segments ("[2]") are
// appended without a separator.
func joinPath(path, name string) string {
	switch {
	case name == "":
		return path
	case path == "":
		return name
	case strings.HasPrefix(name, "["):
		return path + name
	}
	return path + "." + name
}
