// Package registry holds the per-country BBAN layout specifications that
// drive IBAN parsing, validation and generation.
//
// The registry is an immutable snapshot: it is built once (from the compiled-in
// country table or from caller-supplied specs), and every lookup afterwards is
// a read against shared, never-mutated state. Concurrent readers need no
// locking. Replacing the data is a whole-snapshot atomic swap, never an
// in-place edit.
package registry

import (
	"fmt"
	"strings"
)

// MaxIBANLength is the ISO 13616 upper bound on a full IBAN.
const MaxIBANLength = 34

// CharClass constrains which characters a BBAN field accepts.
type CharClass int

const (
	Digits CharClass = iota // 0-9
	Letters                 // A-Z
	AlphaNum                // 0-9 and A-Z
)

func (c CharClass) String() string {
	switch c {
	case Digits:
		return "digits"
	case Letters:
		return "letters"
	default:
		return "alphanumeric"
	}
}

// Matches reports whether ch (from a normalized, uppercased code) belongs to
// the class.
func (c CharClass) Matches(ch byte) bool {
	digit := ch >= '0' && ch <= '9'
	letter := ch >= 'A' && ch <= 'Z'
	switch c {
	case Digits:
		return digit
	case Letters:
		return letter
	default:
		return digit || letter
	}
}

// FieldName is the logical identity of a BBAN field. Logical identity is
// independent of physical order: a few countries place the branch code before
// the bank code, or a national check digit first.
type FieldName string

const (
	FieldBankCode      FieldName = "bank_code"
	FieldBranchCode    FieldName = "branch_code"
	FieldAccountCode   FieldName = "account_code"
	FieldNationalCheck FieldName = "national_check_digit"
)

// AlgorithmID names a national BBAN checksum algorithm. Countries sharing an
// algorithm share an ID (San Marino reuses Italy's CIN rule), so dispatch is
// by algorithm, not by country.
type AlgorithmID string

const (
	AlgorithmNone AlgorithmID = ""
	AlgorithmDE   AlgorithmID = "de"
	AlgorithmIT   AlgorithmID = "it"
	AlgorithmBE   AlgorithmID = "be"
	AlgorithmFR   AlgorithmID = "fr"
)

// BBANField is one fixed-width slice of a country's BBAN.
type BBANField struct {
	Name      FieldName
	Length    int
	CharClass CharClass
}

// CountrySpec is the full BBAN layout for one country. Immutable once built.
type CountrySpec struct {
	CountryCode string // 2 uppercase letters, unique key
	IBANLength  int    // 4 + BBAN length
	Algorithm   AlgorithmID
	Fields      []BBANField // physical order within the BBAN

	spans map[FieldName][2]int // derived byte offsets into the BBAN
}

// BBANLength is the total declared BBAN width.
func (s *CountrySpec) BBANLength() int {
	return s.IBANLength - 4
}

// HasField reports whether the layout declares the named field.
func (s *CountrySpec) HasField(name FieldName) bool {
	_, ok := s.spans[name]
	return ok
}

// FieldSpan returns the [start, end) offsets of the named field within the
// BBAN, and whether the field exists in this layout.
func (s *CountrySpec) FieldSpan(name FieldName) (start, end int, ok bool) {
	span, ok := s.spans[name]
	if !ok {
		return 0, 0, false
	}
	return span[0], span[1], true
}

// Slice extracts the named field from a BBAN of the declared length.
// Returns "" for fields the layout does not declare.
func (s *CountrySpec) Slice(bban string, name FieldName) string {
	start, end, ok := s.FieldSpan(name)
	if !ok || len(bban) < end {
		return ""
	}
	return bban[start:end]
}

// finalize derives field offsets and checks the spec's own invariants.
func (s *CountrySpec) finalize() error {
	if len(s.CountryCode) != 2 || !isUpperAlpha(s.CountryCode) {
		return fmt.Errorf("country code %q: must be 2 uppercase letters", s.CountryCode)
	}
	if s.IBANLength > MaxIBANLength {
		return fmt.Errorf("country %s: IBAN length %d exceeds ISO 13616 maximum %d",
			s.CountryCode, s.IBANLength, MaxIBANLength)
	}
	s.spans = make(map[FieldName][2]int, len(s.Fields))
	offset := 0
	for _, f := range s.Fields {
		if f.Length <= 0 {
			return fmt.Errorf("country %s: field %s has non-positive length", s.CountryCode, f.Name)
		}
		if _, dup := s.spans[f.Name]; dup {
			return fmt.Errorf("country %s: duplicate field %s", s.CountryCode, f.Name)
		}
		s.spans[f.Name] = [2]int{offset, offset + f.Length}
		offset += f.Length
	}
	if offset != s.BBANLength() {
		return fmt.Errorf("country %s: field lengths sum to %d, declared BBAN length is %d",
			s.CountryCode, offset, s.BBANLength())
	}
	return nil
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return len(s) > 0
}

// Normalize strips all whitespace and uppercases, producing the compact
// canonical form every validator operates on.
func Normalize(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			continue
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
