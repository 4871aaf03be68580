package people

import (
	"fmt"
	"slices"

	"github.com/gabapcia/ospeople/internal/pkg/types"
	"github.com/gabapcia/ospeople/internal/pkg/validator"
)

// RoleType is the kind of office a Role holds. Its wire form is the
// display string returned by String.
type RoleType int

const (
	RoleUpper RoleType = iota + 1
	RoleLower
	RoleJoint
	RoleGovernor
	RoleLtGovernor
	RoleMayor
	RoleSecretaryOfState
	RoleChiefElectionOfficer
)

var roleTypeNames = []string{
	RoleUpper:                "upper",
	RoleLower:                "lower",
	RoleJoint:                "legislature",
	RoleGovernor:             "governor",
	RoleLtGovernor:           "lt_governor",
	RoleMayor:                "mayor",
	RoleSecretaryOfState:     "secretary of state",
	RoleChiefElectionOfficer: "chief election officer",
}

// executiveRoles require an end date on their time range.
var executiveRoles = types.NewSet(
	RoleGovernor,
	RoleLtGovernor,
	RoleMayor,
	RoleSecretaryOfState,
	RoleChiefElectionOfficer,
)

// RoleTypes returns every role display string in declaration order.
func RoleTypes() []string {
	return slices.Clone(roleTypeNames[RoleUpper:])
}

// ParseRoleType maps a display string to its RoleType. Matching is exact.
func ParseRoleType(s string) (RoleType, error) {
	for t := RoleUpper; int(t) < len(roleTypeNames); t++ {
		if roleTypeNames[t] == s {
			return t, nil
		}
	}
	return 0, validator.InvalidValue(s, RoleTypes())
}

// String returns the display string, or RoleType(n) for an undefined value.
func (t RoleType) String() string {
	if t < RoleUpper || int(t) >= len(roleTypeNames) {
		return fmt.Sprintf("RoleType(%d)", int(t))
	}
	return roleTypeNames[t]
}

// IsExecutive reports whether the role is an executive office.
func (t RoleType) IsExecutive() bool {
	return executiveRoles.Has(t)
}

// MarshalText encodes the role type as its display string.
func (t RoleType) MarshalText() ([]byte, error) {
	if t < RoleUpper || int(t) >= len(roleTypeNames) {
		return nil, fmt.Errorf("invalid role type %d", int(t))
	}
	return []byte(roleTypeNames[t]), nil
}

// UnmarshalText decodes a display string, failing with a FieldValueError
// for unknown values.
func (t *RoleType) UnmarshalText(text []byte) error {
	parsed, err := ParseRoleType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// OfficeType labels the office a ContactDetail belongs to.
type OfficeType int

const (
	OfficeDistrict OfficeType = iota + 1
	OfficeCapitol
	OfficePrimary
)

var officeTypeNames = []string{
	OfficeDistrict: "District Office",
	OfficeCapitol:  "Capitol Office",
	OfficePrimary:  "Primary Office",
}

// OfficeTypes returns every office display string in declaration order.
func OfficeTypes() []string {
	return slices.Clone(officeTypeNames[OfficeDistrict:])
}

// ParseOfficeType maps a display string to its OfficeType. Matching is exact.
func ParseOfficeType(s string) (OfficeType, error) {
	for t := OfficeDistrict; int(t) < len(officeTypeNames); t++ {
		if officeTypeNames[t] == s {
			return t, nil
		}
	}
	return 0, validator.InvalidValue(s, OfficeTypes())
}

// String returns the display string, or OfficeType(n) for an undefined value.
func (t OfficeType) String() string {
	if t < OfficeDistrict || int(t) >= len(officeTypeNames) {
		return fmt.Sprintf("OfficeType(%d)", int(t))
	}
	return officeTypeNames[t]
}

// MarshalText encodes the office type as its display string.
func (t OfficeType) MarshalText() ([]byte, error) {
	if t < OfficeDistrict || int(t) >= len(officeTypeNames) {
		return nil, fmt.Errorf("invalid office type %d", int(t))
	}
	return []byte(officeTypeNames[t]), nil
}

// UnmarshalText decodes a display string, failing with a FieldValueError
// for unknown values.
func (t *OfficeType) UnmarshalText(text []byte) error {
	parsed, err := ParseOfficeType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
