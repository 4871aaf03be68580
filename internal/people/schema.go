package people

import (
	"slices"

	"github.com/gabapcia/ospeople/internal/pkg/validator"
)

// Schema names accepted by Service.ValidateRecord.
const (
	SchemaPerson          = "person"
	SchemaParty           = "party"
	SchemaRole            = "role"
	SchemaContactDetail   = "contact_detail"
	SchemaPersonIDBlock   = "ids"
	SchemaLink            = "link"
	SchemaOtherName       = "other_name"
	SchemaOtherIdentifier = "other_identifier"
)

func timeScoped[T any](scope func(*T) *TimeScope) []*validator.Field[T] {
	return []*validator.Field[T]{
		validator.String("start_date", func(t *T, v string) { scope(t).StartDate = v }, FuzzyDate),
		validator.String("end_date", func(t *T, v string) { scope(t).EndDate = v }, FuzzyDate),
	}
}

var partySchema = validator.NewSchema(SchemaParty, slices.Concat(
	[]*validator.Field[Party]{
		validator.String("name", func(p *Party, v string) { p.Name = v }, NoNewline).NonEmpty(),
	},
	timeScoped(func(p *Party) *TimeScope { return &p.TimeScope }),
)...)

var roleSchema = validator.NewSchema(SchemaRole, slices.Concat(
	[]*validator.Field[Role]{
		validator.Enum("type", ParseRoleType, func(r *Role, v RoleType) { r.Type = v }).Required(),
		validator.String("district", func(r *Role, v string) { r.District = v }, NoNewline).Required(),
		validator.String("jurisdiction", func(r *Role, v string) { r.Jurisdiction = v }, Jurisdiction).Required(),
		validator.String("end_reason", func(r *Role, v string) { r.EndReason = v }, NoNewline),
	},
	timeScoped(func(r *Role) *TimeScope { return &r.TimeScope }),
)...).WithRules(executiveEndDateRule)

var contactDetailSchema = validator.NewSchema(SchemaContactDetail,
	validator.Enum("note", ParseOfficeType, func(c *ContactDetail, v OfficeType) { c.Note = v }).Required(),
	validator.String("address", func(c *ContactDetail, v string) { c.Address = v }, NoNewline),
	validator.String("voice", func(c *ContactDetail, v string) { c.Voice = v }, Phone),
	validator.String("fax", func(c *ContactDetail, v string) { c.Fax = v }, Phone),
)

var personIDBlockSchema = validator.NewSchema(SchemaPersonIDBlock,
	validator.String("twitter", func(b *PersonIDBlock, v string) { b.Twitter = v }, SocialHandle),
	validator.String("youtube", func(b *PersonIDBlock, v string) { b.YouTube = v }, SocialHandle),
	validator.String("instagram", func(b *PersonIDBlock, v string) { b.Instagram = v }, SocialHandle),
	validator.String("facebook", func(b *PersonIDBlock, v string) { b.Facebook = v }, SocialHandle),
)

var linkSchema = validator.NewSchema(SchemaLink,
	validator.String("url", func(l *Link, v string) { l.URL = v }, URL).Required(),
	validator.String("note", func(l *Link, v string) { l.Note = v }, NoNewline),
)

var otherNameSchema = validator.NewSchema(SchemaOtherName, slices.Concat(
	[]*validator.Field[OtherName]{
		validator.String("name", func(o *OtherName, v string) { o.Name = v }, NoNewline).Required(),
	},
	timeScoped(func(o *OtherName) *TimeScope { return &o.TimeScope }),
)...)

var otherIdentifierSchema = validator.NewSchema(SchemaOtherIdentifier, slices.Concat(
	[]*validator.Field[OtherIdentifier]{
		validator.String("scheme", func(o *OtherIdentifier, v string) { o.Scheme = v }, NoNewline).Required(),
		validator.String("identifier", func(o *OtherIdentifier, v string) { o.Identifier = v }, NoNewline).Required(),
	},
	timeScoped(func(o *OtherIdentifier) *TimeScope { return &o.TimeScope }),
)...)

var personSchema = validator.NewSchema(SchemaPerson,
	validator.String("id", func(p *Person, v string) { p.ID = v }, PersonID).Required(),
	validator.String("name", func(p *Person, v string) { p.Name = v }, NoNewline).Required(),
	validator.String("given_name", func(p *Person, v string) { p.GivenName = v }, NoNewline),
	validator.String("family_name", func(p *Person, v string) { p.FamilyName = v }, NoNewline),
	validator.String("middle_name", func(p *Person, v string) { p.MiddleName = v }, NoNewline),
	validator.String("suffix", func(p *Person, v string) { p.Suffix = v }, NoNewline),
	validator.String("gender", func(p *Person, v string) { p.Gender = v }, NoNewline),
	validator.String("email", func(p *Person, v string) { p.Email = v }, NoNewline),
	// biography may span several lines.
	validator.String("biography", func(p *Person, v string) { p.Biography = v }),
	validator.String("birth_date", func(p *Person, v string) { p.BirthDate = v }, FuzzyDate),
	validator.String("death_date", func(p *Person, v string) { p.DeathDate = v }, FuzzyDate),
	validator.String("image", func(p *Person, v string) { p.Image = v }, URL),
	validator.List("party", partySchema, func(p *Person, v []Party) { p.Party = v }).NonEmpty(),
	validator.List("roles", roleSchema, func(p *Person, v []Role) { p.Roles = v }).NonEmpty(),
	validator.List("contact_details", contactDetailSchema, func(p *Person, v []ContactDetail) { p.ContactDetails = v }),
	validator.List("links", linkSchema, func(p *Person, v []Link) { p.Links = v }),
	validator.List("other_names", otherNameSchema, func(p *Person, v []OtherName) { p.OtherNames = v }),
	validator.Record("ids", personIDBlockSchema, func(p *Person, v *PersonIDBlock) { p.IDs = v }),
	validator.List("other_identifiers", otherIdentifierSchema, func(p *Person, v []OtherIdentifier) { p.OtherIdentifiers = v }),
	validator.List("sources", linkSchema, func(p *Person, v []Link) { p.Sources = v }),
	validator.Map("extras", func(p *Person, v map[string]any) { p.Extras = v }),
).WithRules(personNameRule)

var registry = newRegistry()

func newRegistry() *validator.Registry {
	r := validator.NewRegistry()
	validator.Register(r, personSchema)
	validator.Register(r, partySchema)
	validator.Register(r, roleSchema)
	validator.Register(r, contactDetailSchema)
	validator.Register(r, personIDBlockSchema)
	validator.Register(r, linkSchema)
	validator.Register(r, otherNameSchema)
	validator.Register(r, otherIdentifierSchema)
	return r
}
