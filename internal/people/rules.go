package people

import (
	"regexp"
	"strings"

	"github.com/gabapcia/ospeople/internal/pkg/validator"
)

// suffixRegex finds a suffix anywhere after the single comma of a name:
// roman numerals, degrees, generational suffixes and Esq.
var suffixRegex = regexp.MustCompile(`(?i)(iii?)|(i?v)|((ed|ph|m|o)\.?d\.?)|([sj]r\.?)|(esq\.?)`)

const (
	msgTooManyCommas     = "too many commas, check if name is mangled"
	msgInvalidComma      = "invalid comma"
	msgExecutiveNeedsEnd = "end_date is required for executive roles"
)

// checkNameCommas allows at most one comma in a name, and only when a
// suffix follows it.
func checkNameCommas(name string) string {
	pieces := strings.Split(name, ",")
	switch {
	case len(pieces) > 2:
		return msgTooManyCommas
	case len(pieces) == 2 && !suffixRegex.MatchString(pieces[1]):
		return msgInvalidComma
	}
	return ""
}

func personNameRule(p *Person) []validator.Violation {
	if msg := checkNameCommas(p.Name); msg != "" {
		return []validator.Violation{validator.CrossField("name", msg)}
	}
	return nil
}

func executiveEndDateRule(r *Role) []validator.Violation {
	if r.Type.IsExecutive() && r.EndDate == "" {
		return []validator.Violation{validator.CrossField("end_date", msgExecutiveNeedsEnd)}
	}
	return nil
}
