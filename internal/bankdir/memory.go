// Package bankdir provides the bank directory implementations behind the
// bic.Directory port: a seeded in-memory directory, a PostgreSQL-backed one,
// a Redis read-through cache decorator and a latency-recording decorator.
//
// Directories are immutable once constructed; swapping directory data is a
// whole-value replacement, never an in-place edit, so concurrent readers
// need no locking.
package bankdir

import (
	"context"

	"fincode/pkg/bic"
	"fincode/pkg/registry"
)

// Memory is an in-memory bank directory. Both lookup indexes are built once
// at construction and never mutated.
type Memory struct {
	byBank map[string][]bic.BankEntry // (country, bank code) → entries, insertion order
	byBIC  map[string][]bic.BankEntry // expanded BIC → entries, insertion order
}

// NewMemory builds a directory from entries, preserving their order as the
// registry order every lookup reports.
func NewMemory(entries []bic.BankEntry) *Memory {
	m := &Memory{
		byBank: make(map[string][]bic.BankEntry),
		byBIC:  make(map[string][]bic.BankEntry),
	}
	for _, e := range entries {
		e.CountryCode = registry.Normalize(e.CountryCode)
		e.BankCode = registry.Normalize(e.BankCode)
		e.BIC = registry.Normalize(e.BIC)

		bankKey := e.CountryCode + "/" + e.BankCode
		m.byBank[bankKey] = append(m.byBank[bankKey], e)

		bicKey := expand(e.BIC)
		m.byBIC[bicKey] = append(m.byBIC[bicKey], e)
	}
	return m
}

// BankEntries returns the entries for a (country, domestic bank code) pair
// in registry order. The returned slice is a copy and safe to retain.
func (m *Memory) BankEntries(_ context.Context, countryCode, bankCode string) ([]bic.BankEntry, error) {
	key := registry.Normalize(countryCode) + "/" + registry.Normalize(bankCode)
	entries := m.byBank[key]
	out := make([]bic.BankEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// EntriesByBIC returns the entries carrying the given BIC, treating an
// 8-character code and its XXX-branch form as the same key.
func (m *Memory) EntriesByBIC(_ context.Context, code string) ([]bic.BankEntry, error) {
	entries := m.byBIC[expand(registry.Normalize(code))]
	out := make([]bic.BankEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func expand(code string) string {
	if len(code) == 8 {
		return code + "XXX"
	}
	return code
}
