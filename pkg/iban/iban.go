// Package iban parses, validates and generates International Bank Account
// Numbers (ISO 13616).
//
// An IBAN is an opaque immutable value wrapping the normalized compact
// string; equality, ordering and hashing follow that string. Validation is a
// fail-fast pipeline (country code, length and structure, the IBAN-wide
// mod-97 checksum, then optionally the country's national BBAN checksum)
// and reports the first failing stage as a coded error.
package iban

import (
	"context"
	"math/rand/v2"
	"strings"

	"fincode/pkg/bic"
	dErrors "fincode/pkg/domain-errors"
	"fincode/pkg/registry"
)

// IBAN is a parsed International Bank Account Number.
// The zero value is not a valid IBAN.
type IBAN struct {
	compact string
	spec    *registry.CountrySpec
	invalid error // deferred validation failure, AllowInvalid mode only
}

type parseOptions struct {
	snap         *registry.Snapshot
	validateBBAN bool
	allowInvalid bool
}

// ParseOption adjusts Parse and Validate behavior.
type ParseOption func(*parseOptions)

// WithBBANValidation additionally runs the country-specific national
// checksum. Countries (or German banks) without a registered algorithm are
// skipped, not failed.
func WithBBANValidation() ParseOption {
	return func(o *parseOptions) { o.validateBBAN = true }
}

// AllowInvalid defers every validation failure into the returned value
// instead of failing construction; query it with IsValid and
// ValidationError.
func AllowInvalid() ParseOption {
	return func(o *parseOptions) { o.allowInvalid = true }
}

// WithRegistry validates against a substitute country registry instead of
// the process-wide snapshot.
func WithRegistry(snap *registry.Snapshot) ParseOption {
	return func(o *parseOptions) { o.snap = snap }
}

func applyOptions(opts []ParseOption) parseOptions {
	o := parseOptions{snap: registry.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Parse constructs an IBAN from untrusted input. Formatting whitespace is
// stripped and the value uppercased before validation.
func Parse(value string, opts ...ParseOption) (IBAN, error) {
	o := applyOptions(opts)
	compact := registry.Normalize(value)
	ib, err := parse(o.snap, compact, o.validateBBAN)
	if err != nil {
		if o.allowInvalid {
			return IBAN{compact: compact, invalid: err}, nil
		}
		return IBAN{}, err
	}
	return ib, nil
}

// parse runs the validation pipeline over a compact candidate.
// Stage order: country code → length and structure → mod-97 → optional
// national checksum. The first failing stage wins.
func parse(snap *registry.Snapshot, compact string, validateBBAN bool) (IBAN, error) {
	if len(compact) < 4 || len(compact) > registry.MaxIBANLength {
		return IBAN{}, dErrors.Newf(dErrors.CodeInvalidLength,
			"IBAN must be between 4 and %d characters, got %d", registry.MaxIBANLength, len(compact))
	}
	countryCode, checkDigits, bban := compact[:2], compact[2:4], compact[4:]

	spec, err := snap.Spec(countryCode)
	if err != nil {
		return IBAN{}, err
	}
	if len(compact) != spec.IBANLength {
		return IBAN{}, dErrors.Newf(dErrors.CodeInvalidLength,
			"%s IBAN must be %d characters, got %d", countryCode, spec.IBANLength, len(compact))
	}
	for i := 0; i < 2; i++ {
		if checkDigits[i] < '0' || checkDigits[i] > '9' {
			return IBAN{}, dErrors.Newf(dErrors.CodeInvalidStructure,
				"check digits must be numeric, got %q", checkDigits)
		}
	}
	b, err := parseBBANAgainst(spec, bban)
	if err != nil {
		return IBAN{}, err
	}
	if !VerifyCheckDigits(countryCode, checkDigits, bban) {
		return IBAN{}, dErrors.Newf(dErrors.CodeInvalidChecksumDigits,
			"mod-97 checksum failed for %s", compact)
	}
	if validateBBAN {
		if err := verifyNationalChecksum(b); err != nil {
			// "Not checkable" is a skip by policy, not a failure.
			if !dErrors.HasCode(err, dErrors.CodeUnsupportedChecksum) {
				return IBAN{}, err
			}
		}
	}
	return IBAN{compact: compact, spec: spec}, nil
}

type generateOptions struct {
	snap       *registry.Snapshot
	branchCode string
}

// GenerateOption adjusts Generate behavior.
type GenerateOption func(*generateOptions)

// WithBranchCode supplies the branch code for countries whose layout
// declares one.
func WithBranchCode(branchCode string) GenerateOption {
	return func(o *generateOptions) { o.branchCode = branchCode }
}

// GenerateWithRegistry generates against a substitute country registry.
func GenerateWithRegistry(snap *registry.Snapshot) GenerateOption {
	return func(o *generateOptions) { o.snap = snap }
}

// Generate assembles a valid IBAN from its domestic parts. Bank, branch and
// account codes shorter than their declared fields are left-zero-padded;
// values too long for their field fail with the field's own error code.
// National check fields (Italian CIN, Belgian check digits, French RIB key)
// are computed, then the IBAN-wide check digits.
func Generate(countryCode, bankCode, accountCode string, opts ...GenerateOption) (IBAN, error) {
	o := generateOptions{snap: registry.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	countryCode = registry.Normalize(countryCode)
	spec, err := o.snap.Spec(countryCode)
	if err != nil {
		return IBAN{}, err
	}

	values := map[registry.FieldName]string{
		registry.FieldBankCode:    registry.Normalize(bankCode),
		registry.FieldBranchCode:  registry.Normalize(o.branchCode),
		registry.FieldAccountCode: registry.Normalize(accountCode),
	}
	overflow := map[registry.FieldName]dErrors.Code{
		registry.FieldBankCode:    dErrors.CodeInvalidBankCode,
		registry.FieldBranchCode:  dErrors.CodeInvalidBranchCode,
		registry.FieldAccountCode: dErrors.CodeInvalidAccountCode,
	}

	var sb strings.Builder
	sb.Grow(spec.BBANLength())
	for _, f := range spec.Fields {
		if f.Name == registry.FieldNationalCheck {
			// Placeholder; computed below once all other fields are fixed.
			sb.WriteString(strings.Repeat("0", f.Length))
			continue
		}
		v := values[f.Name]
		if len(v) > f.Length {
			return IBAN{}, dErrors.Newf(overflow[f.Name],
				"%s %q exceeds the %d-character %s field", f.Name, v, f.Length, countryCode)
		}
		sb.WriteString(strings.Repeat("0", f.Length-len(v)))
		sb.WriteString(v)
	}
	bban := sb.String()

	if spec.HasField(registry.FieldNationalCheck) && spec.Algorithm != registry.AlgorithmNone {
		check, err := computeNationalCheck(BBAN{raw: bban, spec: spec})
		if err != nil {
			return IBAN{}, err
		}
		start, end, _ := spec.FieldSpan(registry.FieldNationalCheck)
		bban = bban[:start] + check + bban[end:]
	}

	// Structural validation after assembly catches class mismatches such as
	// a numeric bank code supplied for a letters-only field.
	if _, err := parseBBANAgainst(spec, bban); err != nil {
		return IBAN{}, err
	}
	checkDigits, err := ComputeCheckDigits(countryCode, bban)
	if err != nil {
		return IBAN{}, err
	}
	return IBAN{compact: countryCode + checkDigits + bban, spec: spec}, nil
}

// Random produces a structurally and checksum-valid IBAN for the country,
// suitable for tests and fixtures. The account number is random; the bank
// code is random unless the country layout forces letters, in which case a
// synthetic letter code is drawn.
func Random(countryCode string, opts ...GenerateOption) (IBAN, error) {
	o := generateOptions{snap: registry.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	countryCode = registry.Normalize(countryCode)
	spec, err := o.snap.Spec(countryCode)
	if err != nil {
		return IBAN{}, err
	}
	var sb strings.Builder
	for _, f := range spec.Fields {
		if f.Name == registry.FieldNationalCheck {
			sb.WriteString(strings.Repeat("0", f.Length))
			continue
		}
		for i := 0; i < f.Length; i++ {
			if f.CharClass == registry.Letters {
				sb.WriteByte(byte('A' + rand.IntN(26)))
			} else {
				sb.WriteByte(byte('0' + rand.IntN(10)))
			}
		}
	}
	bban := sb.String()
	if spec.HasField(registry.FieldNationalCheck) && spec.Algorithm != registry.AlgorithmNone {
		check, err := computeNationalCheck(BBAN{raw: bban, spec: spec})
		if err != nil {
			return IBAN{}, err
		}
		start, end, _ := spec.FieldSpan(registry.FieldNationalCheck)
		bban = bban[:start] + check + bban[end:]
	}
	checkDigits, err := ComputeCheckDigits(countryCode, bban)
	if err != nil {
		return IBAN{}, err
	}
	return IBAN{compact: countryCode + checkDigits + bban, spec: spec}, nil
}

// Validate re-runs the validation pipeline on an already-constructed
// instance. Useful after AllowInvalid construction or a registry reload.
func (i IBAN) Validate(opts ...ParseOption) error {
	o := applyOptions(opts)
	_, err := parse(o.snap, i.compact, o.validateBBAN)
	return err
}

// IsValid reports whether the instance passed validation at construction.
func (i IBAN) IsValid() bool {
	return i.compact != "" && i.invalid == nil
}

// ValidationError returns the deferred construction failure, or nil.
func (i IBAN) ValidationError() error { return i.invalid }

// String returns the compact canonical form.
func (i IBAN) String() string { return i.compact }

// Length of the compact form.
func (i IBAN) Length() int { return len(i.compact) }

// CountryCode returns the leading ISO 3166 country code.
func (i IBAN) CountryCode() string {
	if len(i.compact) < 2 {
		return ""
	}
	return i.compact[:2]
}

// ChecksumDigits returns the two IBAN-wide check digits.
func (i IBAN) ChecksumDigits() string {
	if len(i.compact) < 4 {
		return ""
	}
	return i.compact[2:4]
}

// BBAN returns the national part as a typed view. For instances built with
// AllowInvalid the spec may be absent and field accessors return "".
func (i IBAN) BBAN() BBAN {
	if len(i.compact) < 4 {
		return BBAN{}
	}
	return BBAN{raw: i.compact[4:], spec: i.spec}
}

func (i IBAN) BankCode() string    { return i.BBAN().BankCode() }
func (i IBAN) BranchCode() string  { return i.BBAN().BranchCode() }
func (i IBAN) AccountCode() string { return i.BBAN().AccountCode() }

// Formatted renders the canonical paper form: blocks of four separated by
// single spaces, no trailing space.
func (i IBAN) Formatted() string {
	var sb strings.Builder
	for start := 0; start < len(i.compact); start += 4 {
		if start > 0 {
			sb.WriteByte(' ')
		}
		end := start + 4
		if end > len(i.compact) {
			end = len(i.compact)
		}
		sb.WriteString(i.compact[start:end])
	}
	return sb.String()
}

// BIC resolves the most generic BIC for the IBAN's bank code through the
// directory. Resolution is best-effort: ok is false when no entry matches,
// and resolution never invalidates the IBAN itself.
func (i IBAN) BIC(ctx context.Context, dir bic.Directory) (bic.BIC, bool) {
	bankCode := i.BankCode()
	if bankCode == "" || dir == nil {
		return bic.BIC{}, false
	}
	resolved, err := bic.FromBankCode(ctx, dir, i.CountryCode(), bankCode)
	if err != nil {
		return bic.BIC{}, false
	}
	return resolved, true
}
