// Package bic validates Business Identifier Codes (ISO 9362) and resolves
// them from domestic bank codes through a pluggable directory.
//
// A BIC is an opaque immutable value wrapping the normalized compact string.
// An 8-character BIC addresses the institution's primary office and compares
// equivalent to the same code with an explicit "XXX" branch, but its
// canonical string form keeps the original length.
package bic

import (
	"context"

	dErrors "fincode/pkg/domain-errors"
	pkgstrings "fincode/pkg/platform/strings"
	"fincode/pkg/registry"
)

// BIC is a parsed Business Identifier Code.
// The zero value is not a valid BIC.
type BIC struct {
	compact string
}

type parseOptions struct {
	snap        *registry.Snapshot
	swiftStrict bool
}

// ParseOption adjusts Parse behavior.
type ParseOption func(*parseOptions)

// EnforceSwiftCompliance restricts the business party prefix to letters, as
// the SWIFT network required before ISO 9362:2022 opened it to alphanumerics.
func EnforceSwiftCompliance() ParseOption {
	return func(o *parseOptions) { o.swiftStrict = true }
}

// WithRegistry validates the country code against a substitute registry.
func WithRegistry(snap *registry.Snapshot) ParseOption {
	return func(o *parseOptions) { o.snap = snap }
}

// Parse constructs a BIC from untrusted input. Layout per ISO 9362: business
// party prefix (4), country code (2), location code (2), optional branch
// code (3).
func Parse(value string, opts ...ParseOption) (BIC, error) {
	o := parseOptions{snap: registry.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	compact := registry.Normalize(value)

	if len(compact) != 8 && len(compact) != 11 {
		return BIC{}, dErrors.Newf(dErrors.CodeInvalidLength,
			"BIC must be 8 or 11 characters, got %d", len(compact))
	}
	if !o.snap.Has(compact[4:6]) {
		return BIC{}, dErrors.Newf(dErrors.CodeInvalidCountryCode,
			"unknown country code %q", compact[4:6])
	}
	prefixClass := registry.AlphaNum
	if o.swiftStrict {
		prefixClass = registry.Letters
	}
	if !classMatches(compact[:4], prefixClass) {
		return BIC{}, dErrors.Newf(dErrors.CodeInvalidStructure,
			"business party prefix must be %s, got %q", prefixClass, compact[:4])
	}
	if !classMatches(compact[6:8], registry.AlphaNum) {
		return BIC{}, dErrors.Newf(dErrors.CodeInvalidStructure,
			"location code must be alphanumeric, got %q", compact[6:8])
	}
	if len(compact) == 11 && !classMatches(compact[8:11], registry.AlphaNum) {
		return BIC{}, dErrors.Newf(dErrors.CodeInvalidStructure,
			"branch code must be alphanumeric, got %q", compact[8:11])
	}
	return BIC{compact: compact}, nil
}

func classMatches(s string, class registry.CharClass) bool {
	for i := 0; i < len(s); i++ {
		if !class.Matches(s[i]) {
			return false
		}
	}
	return true
}

// String returns the compact canonical form, preserving the original 8 or 11
// character length.
func (b BIC) String() string { return b.compact }

// Length of the canonical form.
func (b BIC) Length() int { return len(b.compact) }

// IsValid reports whether the value holds a parseable BIC.
func (b BIC) IsValid() bool {
	_, err := Parse(b.compact)
	return b.compact != "" && err == nil
}

// BankCode returns the 4-character business party prefix.
func (b BIC) BankCode() string {
	if len(b.compact) < 4 {
		return ""
	}
	return b.compact[:4]
}

// CountryCode returns the ISO 3166 country code.
func (b BIC) CountryCode() string {
	if len(b.compact) < 6 {
		return ""
	}
	return b.compact[4:6]
}

// LocationCode returns the 2-character location code.
func (b BIC) LocationCode() string {
	if len(b.compact) < 8 {
		return ""
	}
	return b.compact[6:8]
}

// BranchCode returns the branch suffix, or "" for an 8-character BIC.
func (b BIC) BranchCode() string {
	if len(b.compact) < 11 {
		return ""
	}
	return b.compact[8:11]
}

// Expanded returns the 11-character form, an 8-character BIC gaining the
// implicit "XXX" primary-office branch.
func (b BIC) Expanded() string {
	if len(b.compact) == 8 {
		return b.compact + "XXX"
	}
	return b.compact
}

// Equivalent reports whether two BICs address the same office, treating an
// 8-character code and its XXX-branch form as equal.
func (b BIC) Equivalent(other BIC) bool {
	return b.compact != "" && b.Expanded() == other.Expanded()
}

// IsGeneric reports whether the BIC addresses the primary office (no branch
// suffix, or the explicit XXX marker).
func (b BIC) IsGeneric() bool {
	branch := b.BranchCode()
	return branch == "" || branch == "XXX"
}

// BankEntry is one row of the external bank directory: a domestic bank code
// and the BIC (possibly one of several) registered for it.
type BankEntry struct {
	CountryCode string
	BankCode    string
	BIC         string
	BankName    string
}

// Directory is the read-only bank registry port. Implementations must return
// entries in stable registry order; the returned slices are materialized,
// never lazy.
type Directory interface {
	// BankEntries returns every entry for a (country, domestic bank code)
	// pair, in registry order. A missing pair yields an empty slice, not an
	// error.
	BankEntries(ctx context.Context, countryCode, bankCode string) ([]BankEntry, error)
	// EntriesByBIC returns every entry carrying the given BIC, with the
	// 8-character ≡ XXX-branch equivalence applied.
	EntriesByBIC(ctx context.Context, bic string) ([]BankEntry, error)
}

// ResolveOption adjusts FromBankCode behavior.
type ResolveOption func(*resolveOptions)

type resolveOptions struct {
	requireGeneric bool
}

// RequireGeneric makes FromBankCode fail when the bank code maps only to
// branch-specific BICs, instead of falling back to the first registry entry.
func RequireGeneric() ResolveOption {
	return func(o *resolveOptions) { o.requireGeneric = true }
}

// FromBankCode resolves the most generic BIC for a domestic bank code:
// an entry with no branch suffix or the explicit XXX marker wins; otherwise
// the first entry in registry order is returned.
func FromBankCode(ctx context.Context, dir Directory, countryCode, bankCode string, opts ...ResolveOption) (BIC, error) {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}
	candidates, err := CandidatesFromBankCode(ctx, dir, countryCode, bankCode)
	if err != nil {
		return BIC{}, err
	}
	if len(candidates) == 0 {
		return BIC{}, dErrors.Newf(dErrors.CodeInvalidBankCode,
			"no BIC registered for bank code %s/%s", countryCode, bankCode)
	}
	for _, c := range candidates {
		if c.IsGeneric() {
			return c, nil
		}
	}
	if o.requireGeneric {
		return BIC{}, dErrors.Newf(dErrors.CodeInvalidBankCode,
			"bank code %s/%s maps only to branch-specific BICs", countryCode, bankCode)
	}
	return candidates[0], nil
}

// CandidatesFromBankCode returns every BIC registered for the bank code, in
// registry order. The slice is materialized and safe to retain. Directory
// rows carrying a malformed BIC are skipped rather than failing the lookup.
func CandidatesFromBankCode(ctx context.Context, dir Directory, countryCode, bankCode string) ([]BIC, error) {
	entries, err := dir.BankEntries(ctx, registry.Normalize(countryCode), registry.Normalize(bankCode))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "bank directory lookup failed")
	}
	out := make([]BIC, 0, len(entries))
	for _, e := range entries {
		b, err := Parse(e.BIC)
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// DomesticBankCodes returns the distinct domestic bank codes the directory
// associates with this BIC, in registry order.
func (b BIC) DomesticBankCodes(ctx context.Context, dir Directory) ([]string, error) {
	if dir == nil || b.compact == "" {
		return nil, nil
	}
	entries, err := dir.EntriesByBIC(ctx, b.compact)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "bank directory lookup failed")
	}
	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		codes = append(codes, e.BankCode)
	}
	return pkgstrings.DedupeAndTrimUpper(codes), nil
}
