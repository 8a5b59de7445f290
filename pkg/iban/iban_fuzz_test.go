//go:build go1.18

package iban

import (
	"testing"
)

// FuzzParse checks that parsing never panics on arbitrary input and that an
// accepted value round-trips through its own canonical form.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("DE89370400440532013000")
	f.Add("de89 3704 0044 0532 0130 00")
	f.Add("IT60X0542811101000000123456")
	f.Add("DX89370400440532013000")
	f.Add("DE893704004405320130001234567890123")
	f.Add("'; DROP TABLE accounts;--")
	f.Add(string([]byte{0x00, 0xff, 0xfe}))

	f.Fuzz(func(t *testing.T, input string) {
		ib, err := Parse(input, WithBBANValidation())
		if err != nil {
			return
		}

		// Accepted values must round-trip through the compact form.
		again, err := Parse(ib.String())
		if err != nil {
			t.Errorf("accepted IBAN %q failed re-parse: %v", ib.String(), err)
		}
		if again.String() != ib.String() {
			t.Errorf("round-trip changed %q to %q", ib.String(), again.String())
		}

		// The compact form is length-bounded and re-validation agrees.
		if ib.Length() < 4 || ib.Length() > 34 {
			t.Errorf("accepted IBAN %q has impossible length %d", ib.String(), ib.Length())
		}
		if err := ib.Validate(); err != nil {
			t.Errorf("accepted IBAN %q fails re-validation: %v", ib.String(), err)
		}
	})
}

// FuzzGenerate checks that generation either fails cleanly or produces a
// value the validator accepts.
func FuzzGenerate(f *testing.F) {
	f.Add("DE", "37040044", "532013000")
	f.Add("BE", "539", "7547034")
	f.Add("IT", "05428", "123456")
	f.Add("ZZ", "", "")
	f.Add("DE", "999999999999", "1")

	f.Fuzz(func(t *testing.T, country, bank, account string) {
		ib, err := Generate(country, bank, account)
		if err != nil {
			return
		}
		if err := ib.Validate(); err != nil {
			t.Errorf("generated IBAN %q fails validation: %v", ib.String(), err)
		}
	})
}
