package people

import (
	"regexp"
	"strings"

	"github.com/gabapcia/ospeople/internal/pkg/validator"

	"github.com/google/uuid"
)

const personIDPrefix = "ocd-person/"

var (
	phoneRegex        = regexp.MustCompile(`^(1-)?\d{3}-\d{3}-\d{4}( ext\. \d+)?$`)
	fuzzyDateRegex    = regexp.MustCompile(`^\d{4}(-\d{2}(-\d{2})?)?$`)
	jurisdictionRegex = regexp.MustCompile(`^ocd-jurisdiction/country:us/(state|district|territory):\w\w/((place|county):[a-z_]+/)?government$`)
)

var socialPrefixes = []string{"http://", "https://", "@"}

// NoNewline rejects strings containing a line feed or carriage return.
func NoNewline(v string) (string, error) {
	if strings.ContainsAny(v, "\n\r") {
		return v, validator.Format("must not contain a newline")
	}
	return v, nil
}

// Phone accepts DDD-DDD-DDDD with an optional "1-" prefix and an optional
// " ext. N" suffix.
func Phone(v string) (string, error) {
	if !phoneRegex.MatchString(v) {
		return v, validator.Format("invalid phone number")
	}
	return v, nil
}

// URL accepts "" or an absolute http(s) URL.
func URL(v string) (string, error) {
	if v == "" {
		return v, nil
	}
	if err := validator.Var(v, "http_url"); err != nil {
		return v, validator.Format("must be an absolute http or https URL")
	}
	return v, nil
}

// FuzzyDate accepts "", YYYY, YYYY-MM or YYYY-MM-DD. Only the shape is
// checked, so "1990-13" passes.
func FuzzyDate(v string) (string, error) {
	if v == "" || fuzzyDateRegex.MatchString(v) {
		return v, nil
	}
	return v, validator.Format("invalid date, expected YYYY-MM-DD, YYYY-MM or YYYY")
}

// Jurisdiction accepts OCD jurisdiction identifiers such as
// "ocd-jurisdiction/country:us/state:nc/government" or
// "ocd-jurisdiction/country:us/state:nc/place:raleigh/government".
func Jurisdiction(v string) (string, error) {
	if !jurisdictionRegex.MatchString(v) {
		return v, validator.Format("must match ocd-jurisdiction/country:us/state:XX/government")
	}
	return v, nil
}

// PersonID accepts "ocd-person/" followed by a lowercase, hyphenated UUID.
func PersonID(v string) (string, error) {
	id, ok := strings.CutPrefix(v, personIDPrefix)
	if ok && len(id) == 36 && id == strings.ToLower(id) {
		if _, err := uuid.Parse(id); err == nil {
			return v, nil
		}
	}
	return v, validator.Format("must match ocd-person/UUID")
}

// SocialHandle accepts a bare account name: no newline, no URL scheme and
// no leading "@".
func SocialHandle(v string) (string, error) {
	if _, err := NoNewline(v); err != nil {
		return v, err
	}
	for _, prefix := range socialPrefixes {
		if strings.HasPrefix(v, prefix) {
			return v, validator.Format("invalid social media account name, drop URL or @")
		}
	}
	return v, nil
}

// NewPersonID returns a fresh person identifier.
func NewPersonID() string {
	return personIDPrefix + uuid.NewString()
}
