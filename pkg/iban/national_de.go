package iban

import (
	dErrors "fincode/pkg/domain-errors"
)

// Germany: the check digit procedure is chosen by the *bank*, not the
// country. The Bundesbank publishes 150+ procedures and a bank-code → method
// mapping; this table carries the subset of procedures in use by the mapped
// institutes. An unmapped bank code means the checksum step is skipped
// (unsupported_checksum), a documented partial-coverage policy: never a pass
// and never a failure.
type germanAlgorithm struct{}

// deMethod validates a 10-digit account number under one Bundesbank
// procedure.
type deMethod func(digits []int) bool

// deMethods indexes procedures by their Bundesbank method number.
var deMethods = map[string]deMethod{
	// Weighted mod-10 with cross sums, weights 2,1 from the right; check
	// digit in position 10.
	"00": func(d []int) bool {
		return weightedMod10(d[:9], []int{2, 1}, true) == d[9]
	},
	// Weights 3,7,1 from the right, plain sum, mod 10.
	"01": func(d []int) bool {
		return weightedMod10(d[:9], []int{3, 7, 1}, false) == d[9]
	},
	// Weights 2..9,2 from the right, mod 11; remainder 1 leaves no valid
	// check digit, so such accounts fail.
	"02": func(d []int) bool {
		check, ok := weightedMod11(d[:9], []int{2, 3, 4, 5, 6, 7, 8, 9, 2})
		return ok && check == d[9]
	},
	// Weights 2..7 cycling, mod 11; remainders 0 and 1 both map to check
	// digit 0.
	"06": func(d []int) bool {
		check, _ := weightedMod11(d[:9], []int{2, 3, 4, 5, 6, 7})
		return check == d[9]
	},
	// As 06 with weights 2..10.
	"10": func(d []int) bool {
		check, _ := weightedMod11(d[:9], []int{2, 3, 4, 5, 6, 7, 8, 9, 10})
		return check == d[9]
	},
	// As 00, but over positions 2-7 with the check digit in position 8;
	// positions 9-10 are a subaccount number.
	"13": func(d []int) bool {
		return weightedMod10(d[1:7], []int{2, 1}, true) == d[7]
	},
	// Weights 2..8 over positions 1-7, mod 11, check digit in position 8.
	"28": func(d []int) bool {
		check, _ := weightedMod11(d[:7], []int{2, 3, 4, 5, 6, 7, 8})
		return check == d[7]
	},
	// Weights 2..7 over positions 4-9, mod 11.
	"32": func(d []int) bool {
		check, _ := weightedMod11(d[3:9], []int{2, 3, 4, 5, 6, 7})
		return check == d[9]
	},
	// Weights 2..6 over positions 5-9, mod 11.
	"33": func(d []int) bool {
		check, _ := weightedMod11(d[4:9], []int{2, 3, 4, 5, 6})
		return check == d[9]
	},
}

// deBankMethods maps a Bankleitzahl to its published method number.
// Coverage is partial: codes absent here are non-checkable, not invalid.
var deBankMethods = map[string]string{
	"37040044": "00",
	"29090900": "00",
	"37020500": "00",
	"10020030": "01",
	"20030040": "02",
	"30040050": "06",
	"40050060": "10",
	"50060070": "13",
	"60070080": "28",
	"70080090": "32",
	"80090010": "33",
}

func (germanAlgorithm) verify(b BBAN) error {
	methodID, ok := deBankMethods[b.BankCode()]
	if !ok {
		return dErrors.Newf(dErrors.CodeUnsupportedChecksum,
			"no check digit method registered for bank code %s", b.BankCode())
	}
	method, ok := deMethods[methodID]
	if !ok {
		return dErrors.Newf(dErrors.CodeUnsupportedChecksum,
			"check digit method %s is not implemented", methodID)
	}
	account := b.AccountCode()
	digits := make([]int, len(account))
	for i := 0; i < len(account); i++ {
		digits[i] = int(account[i] - '0')
	}
	if !method(digits) {
		return dErrors.Newf(dErrors.CodeInvalidBBANChecksum,
			"account number fails check digit method %s", methodID)
	}
	return nil
}

// checkValue is never reachable for Germany: the check digit is embedded in
// the account number itself, and the DE layout declares no check field.
func (germanAlgorithm) checkValue(b BBAN) (string, error) {
	return "", dErrors.New(dErrors.CodeUnsupportedChecksum,
		"German check digits are part of the account number")
}

// weightedMod10 applies weights right-to-left over core and returns the
// check digit (10 − sum mod 10) mod 10. With cross set, each product is
// replaced by its decimal cross sum first.
func weightedMod10(core, weights []int, cross bool) int {
	sum := 0
	for i := 0; i < len(core); i++ {
		p := core[len(core)-1-i] * weights[i%len(weights)]
		if cross {
			p = p/10 + p%10
		}
		sum += p
	}
	return (10 - sum%10) % 10
}

// weightedMod11 applies weights right-to-left over core, mod 11. Remainders
// 0 and 1 map to check digit 0; ok is false for remainder 1 so procedures
// that declare such accounts uncheckable can reject them.
func weightedMod11(core, weights []int) (check int, ok bool) {
	sum := 0
	for i := 0; i < len(core); i++ {
		sum += core[len(core)-1-i] * weights[i%len(weights)]
	}
	switch rem := sum % 11; rem {
	case 0:
		return 0, true
	case 1:
		return 0, false
	default:
		return 11 - rem, true
	}
}
