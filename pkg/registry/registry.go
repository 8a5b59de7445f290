package registry

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	dErrors "fincode/pkg/domain-errors"
)

// Snapshot is an immutable country-code → CountrySpec lookup. A Snapshot is
// safe for unsynchronized concurrent reads; it has no mutation API.
type Snapshot struct {
	specs map[string]*CountrySpec
}

// NewSnapshot builds a Snapshot from specs, validating each spec's internal
// invariants. Specs are keyed by country code; duplicates are rejected.
func NewSnapshot(specs []*CountrySpec) (*Snapshot, error) {
	m := make(map[string]*CountrySpec, len(specs))
	for _, spec := range specs {
		if err := spec.finalize(); err != nil {
			return nil, fmt.Errorf("invalid country spec: %w", err)
		}
		if _, dup := m[spec.CountryCode]; dup {
			return nil, fmt.Errorf("duplicate country spec %s", spec.CountryCode)
		}
		m[spec.CountryCode] = spec
	}
	return &Snapshot{specs: m}, nil
}

// Spec returns the layout for a country code, or invalid_country_code.
func (s *Snapshot) Spec(countryCode string) (*CountrySpec, error) {
	spec, ok := s.specs[countryCode]
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeInvalidCountryCode, "unknown country code %q", countryCode)
	}
	return spec, nil
}

// Has reports whether the country code is registered.
func (s *Snapshot) Has(countryCode string) bool {
	_, ok := s.specs[countryCode]
	return ok
}

// Countries returns all registered country codes, sorted.
func (s *Snapshot) Countries() []string {
	out := make([]string, 0, len(s.specs))
	for cc := range s.specs {
		out = append(out, cc)
	}
	sort.Strings(out)
	return out
}

var (
	defaultOnce     sync.Once
	defaultSnapshot atomic.Pointer[Snapshot]
)

// Default returns the process-wide snapshot built from the compiled-in
// country table. It is initialized lazily on first use and shared by all
// callers thereafter.
func Default() *Snapshot {
	defaultOnce.Do(func() {
		snap, err := NewSnapshot(builtinSpecs())
		if err != nil {
			// The compiled-in table is validated by tests; a failure here
			// is a programming error, not a runtime condition.
			panic(fmt.Sprintf("registry: built-in country table is invalid: %v", err))
		}
		defaultSnapshot.CompareAndSwap(nil, snap)
	})
	return defaultSnapshot.Load()
}

// Reload atomically replaces the process-wide snapshot. Readers holding the
// previous snapshot keep a consistent view; new calls to Default observe the
// replacement. The swap is all-or-nothing; there is no partial update.
func Reload(snap *Snapshot) {
	if snap == nil {
		return
	}
	defaultOnce.Do(func() {}) // later Default() calls must not overwrite the reload
	defaultSnapshot.Store(snap)
}
