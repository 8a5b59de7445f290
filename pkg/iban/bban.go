package iban

import (
	dErrors "fincode/pkg/domain-errors"
	"fincode/pkg/registry"
)

// BBAN is the national part of an IBAN together with the country layout it
// was parsed against. The raw string is fixed-length; named fields are views
// by declared position.
type BBAN struct {
	raw  string
	spec *registry.CountrySpec
}

// ParseBBAN validates raw against the country's declared layout: length
// first, then every field's character class. When validateChecksum is set the
// country's national checksum algorithm runs as well.
//
// raw must already be in compact uppercase form.
func ParseBBAN(countryCode, raw string, validateChecksum bool) (BBAN, error) {
	return parseBBAN(registry.Default(), countryCode, raw, validateChecksum)
}

func parseBBAN(snap *registry.Snapshot, countryCode, raw string, validateChecksum bool) (BBAN, error) {
	spec, err := snap.Spec(countryCode)
	if err != nil {
		return BBAN{}, err
	}
	b, err := parseBBANAgainst(spec, raw)
	if err != nil {
		return BBAN{}, err
	}
	if validateChecksum {
		if err := verifyNationalChecksum(b); err != nil {
			return BBAN{}, err
		}
	}
	return b, nil
}

// parseBBANAgainst runs the structural stages only (length, field classes).
func parseBBANAgainst(spec *registry.CountrySpec, raw string) (BBAN, error) {
	if len(raw) != spec.BBANLength() {
		return BBAN{}, dErrors.Newf(dErrors.CodeInvalidLength,
			"%s BBAN must be %d characters, got %d", spec.CountryCode, spec.BBANLength(), len(raw))
	}
	for _, f := range spec.Fields {
		start, end, _ := spec.FieldSpan(f.Name)
		for i := start; i < end; i++ {
			if !f.CharClass.Matches(raw[i]) {
				return BBAN{}, dErrors.Newf(dErrors.CodeInvalidStructure,
					"field %s must be %s, got %q", f.Name, f.CharClass, raw[start:end])
			}
		}
	}
	return BBAN{raw: raw, spec: spec}, nil
}

// String returns the raw compact BBAN.
func (b BBAN) String() string { return b.raw }

// Spec returns the country layout the BBAN was parsed against.
func (b BBAN) Spec() *registry.CountrySpec { return b.spec }

// Field extracts a named field, or "" when the layout does not declare it.
func (b BBAN) Field(name registry.FieldName) string {
	if b.spec == nil {
		return ""
	}
	return b.spec.Slice(b.raw, name)
}

func (b BBAN) BankCode() string    { return b.Field(registry.FieldBankCode) }
func (b BBAN) BranchCode() string  { return b.Field(registry.FieldBranchCode) }
func (b BBAN) AccountCode() string { return b.Field(registry.FieldAccountCode) }

// NationalCheck returns the embedded national check value, or "" for
// countries whose layout has none.
func (b BBAN) NationalCheck() string { return b.Field(registry.FieldNationalCheck) }
