// Package people validates records describing holders of public office
// before they are admitted into a downstream store.
//
// Every entity is built from an untyped mapping through its schema and
// only exists once validation succeeded; a failed validation returns a
// *validator.Report listing every violation with its path. Validated
// values are meant to be treated as read-only: changing a record means
// validating a new mapping.
package people

// TimeScope bounds the validity of a record. Both dates are empty or fuzzy dates.
type TimeScope struct {
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// Party is a time-scoped party affiliation.
type Party struct {
	Name      string `json:"name" yaml:"name"`
	TimeScope `yaml:",inline"`
}

// Role is a time-scoped office assignment.
type Role struct {
	Type         RoleType `json:"type" yaml:"type"`
	District     string   `json:"district" yaml:"district"`
	Jurisdiction string   `json:"jurisdiction" yaml:"jurisdiction"`

	// EndReason is validated like any other field but is not persisted by
	// the downstream store.
	EndReason string `json:"end_reason,omitempty" yaml:"end_reason,omitempty"`

	TimeScope `yaml:",inline"`
}

// ContactDetail is one communication channel tied to an office.
type ContactDetail struct {
	Note    OfficeType `json:"note" yaml:"note"`
	Address string     `json:"address,omitempty" yaml:"address,omitempty"`
	Voice   string     `json:"voice,omitempty" yaml:"voice,omitempty"`
	Fax     string     `json:"fax,omitempty" yaml:"fax,omitempty"`
}

// PersonIDBlock bundles social media account names.
type PersonIDBlock struct {
	Twitter   string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	YouTube   string `json:"youtube,omitempty" yaml:"youtube,omitempty"`
	Instagram string `json:"instagram,omitempty" yaml:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty" yaml:"facebook,omitempty"`
}

// Link is a URL with an optional note, used for links and sources.
type Link struct {
	URL  string `json:"url" yaml:"url"`
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// OtherName is an alternate, time-scoped name.
type OtherName struct {
	Name      string `json:"name" yaml:"name"`
	TimeScope `yaml:",inline"`
}

// OtherIdentifier is an identifier assigned by an external scheme.
type OtherIdentifier struct {
	Scheme     string `json:"scheme" yaml:"scheme"`
	Identifier string `json:"identifier" yaml:"identifier"`
	TimeScope  `yaml:",inline"`
}

// Person is the aggregate root. It owns every nested record.
type Person struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	GivenName  string `json:"given_name,omitempty" yaml:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty" yaml:"family_name,omitempty"`
	MiddleName string `json:"middle_name,omitempty" yaml:"middle_name,omitempty"`
	Suffix     string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Gender     string `json:"gender,omitempty" yaml:"gender,omitempty"`
	Email      string `json:"email,omitempty" yaml:"email,omitempty"`
	Biography  string `json:"biography,omitempty" yaml:"biography,omitempty"`
	BirthDate  string `json:"birth_date,omitempty" yaml:"birth_date,omitempty"`
	DeathDate  string `json:"death_date,omitempty" yaml:"death_date,omitempty"`
	Image      string `json:"image,omitempty" yaml:"image,omitempty"`

	Party []Party `json:"party" yaml:"party"`
	Roles []Role  `json:"roles" yaml:"roles"`

	ContactDetails   []ContactDetail   `json:"contact_details,omitempty" yaml:"contact_details,omitempty"`
	Links            []Link            `json:"links,omitempty" yaml:"links,omitempty"`
	OtherNames       []OtherName       `json:"other_names,omitempty" yaml:"other_names,omitempty"`
	IDs              *PersonIDBlock    `json:"ids,omitempty" yaml:"ids,omitempty"`
	OtherIdentifiers []OtherIdentifier `json:"other_identifiers,omitempty" yaml:"other_identifiers,omitempty"`
	Sources          []Link            `json:"sources,omitempty" yaml:"sources,omitempty"`
	Extras           map[string]any    `json:"extras,omitempty" yaml:"extras,omitempty"`
}
