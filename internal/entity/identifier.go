package entity

import (
	"fmt"
	"strings"
)

// IdentifierType is the kind of national company registration identifier.
type IdentifierType string

const (
	IdentifierTypeSIREN IdentifierType = "siren"
	IdentifierTypeCIF   IdentifierType = "cif"
	IdentifierTypeNIF   IdentifierType = "nif"
	IdentifierTypeKVK   IdentifierType = "kvk"
	IdentifierTypeHR    IdentifierType = "hr"
	IdentifierTypeCHRN  IdentifierType = "chrn"
	IdentifierTypeBERN  IdentifierType = "bern"
	IdentifierTypeVAT   IdentifierType = "vat"
)

func (t IdentifierType) String() string {
	return string(t)
}

func (t IdentifierType) IsValid() bool {
	switch t {
	case IdentifierTypeSIREN, IdentifierTypeCIF, IdentifierTypeNIF, IdentifierTypeKVK,
		IdentifierTypeHR, IdentifierTypeCHRN, IdentifierTypeBERN, IdentifierTypeVAT:
		return true
	}

	return false
}

// ParseIdentifierType matches s case-insensitively against the known identifier types.
func ParseIdentifierType(s string) (IdentifierType, error) {
	t := IdentifierType(strings.ToLower(s))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: unknown identifier type %q", ErrInvalidArgument, s)
	}

	return t, nil
}
