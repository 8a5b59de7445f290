package iban

import (
	"fmt"

	dErrors "fincode/pkg/domain-errors"
)

// ComputeCheckDigits returns the two ISO 7064 MOD 97-10 check digits for a
// country code and BBAN: the rearranged string bban+countryCode+"00" is read
// as a decimal number (letters mapped A=10…Z=35) and the digits are chosen so
// the full IBAN reduces to 1 modulo 97.
func ComputeCheckDigits(countryCode, bban string) (string, error) {
	rem, err := mod97(bban + countryCode + "00")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d", 98-rem), nil
}

// VerifyCheckDigits reports whether the IBAN-wide checksum holds for the
// given parts. Inputs must already be in compact uppercase form.
func VerifyCheckDigits(countryCode, checkDigits, bban string) bool {
	rem, err := mod97(bban + countryCode + checkDigits)
	return err == nil && rem == 1
}

// mod97 reduces the letter-expanded decimal value of s modulo 97. The
// expansion can run to ~60 decimal digits, so the remainder is carried
// incrementally per character instead of materializing a big integer.
func mod97(s string) (int, error) {
	acc := 0
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch >= '0' && ch <= '9':
			acc = (acc*10 + int(ch-'0')) % 97
		case ch >= 'A' && ch <= 'Z':
			// Letters expand to two decimal digits (A=10 … Z=35).
			acc = (acc*100 + int(ch-'A') + 10) % 97
		default:
			return 0, dErrors.Newf(dErrors.CodeInvalidStructure,
				"character %q is not valid in an IBAN", ch)
		}
	}
	return acc, nil
}

// mod97Decimal reduces a digits-only string modulo 97. National algorithms
// (Belgium, France) use this on raw BBAN digits without letter expansion.
func mod97Decimal(s string) (int, error) {
	acc := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return 0, dErrors.Newf(dErrors.CodeInvalidStructure,
				"character %q is not a digit", ch)
		}
		acc = (acc*10 + int(ch-'0')) % 97
	}
	return acc, nil
}
