package people

// Service defines the validation contract offered to loaders, importers and
// the command line.
//
// Implementations hold no mutable state and are safe for concurrent use.
type Service interface {
	// ValidateRecord validates raw against the schema registered as schema.
	//
	// On success the returned value is the typed record (Person, Role, ...).
	// On failure it returns a *validator.Report listing every violation, or
	// validator.ErrUnknownSchema when schema is not registered.
	ValidateRecord(raw map[string]any, schema string) (any, error)

	// Schemas lists the accepted schema names, sorted.
	Schemas() []string
}

type service struct{}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates the validation service backed by the built-in schemas.
func New() *service {
	return &service{}
}

// ValidateRecord looks schema up in the built-in registry and validates raw.
func (s *service) ValidateRecord(raw map[string]any, schema string) (any, error) {
	return registry.Validate(raw, schema)
}

// Schemas returns the names of the built-in schemas, sorted.
func (s *service) Schemas() []string {
	return registry.Names()
}

// NewPerson validates raw as a Person.
func NewPerson(raw map[string]any) (Person, error) {
	return personSchema.Validate(raw)
}

// NewParty validates raw as a Party.
func NewParty(raw map[string]any) (Party, error) {
	return partySchema.Validate(raw)
}

// NewRole validates raw as a Role.
func NewRole(raw map[string]any) (Role, error) {
	return roleSchema.Validate(raw)
}

// NewContactDetail validates raw as a ContactDetail.
func NewContactDetail(raw map[string]any) (ContactDetail, error) {
	return contactDetailSchema.Validate(raw)
}

// NewPersonIDBlock validates raw as a PersonIDBlock.
func NewPersonIDBlock(raw map[string]any) (PersonIDBlock, error) {
	return personIDBlockSchema.Validate(raw)
}

// NewLink validates raw as a Link.
func NewLink(raw map[string]any) (Link, error) {
	return linkSchema.Validate(raw)
}

// NewOtherName validates raw as an OtherName.
func NewOtherName(raw map[string]any) (OtherName, error) {
	return otherNameSchema.Validate(raw)
}

// NewOtherIdentifier validates raw as an OtherIdentifier.
func NewOtherIdentifier(raw map[string]any) (OtherIdentifier, error) {
	return otherIdentifierSchema.Validate(raw)
}
