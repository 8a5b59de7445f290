package registry

// Compiled-in country table, transcribed from the ISO 13616 IBAN registry.
// Field order is the physical order within the BBAN; logical identity is the
// field name, so layouts like Italy's (check letter first) need no special
// casing elsewhere.

func bank(n int, c CharClass) BBANField { return BBANField{FieldBankCode, n, c} }
func branch(n int, c CharClass) BBANField {
	return BBANField{FieldBranchCode, n, c}
}
func account(n int, c CharClass) BBANField {
	return BBANField{FieldAccountCode, n, c}
}
func check(n int, c CharClass) BBANField {
	return BBANField{FieldNationalCheck, n, c}
}

func country(cc string, ibanLen int, alg AlgorithmID, fields ...BBANField) *CountrySpec {
	return &CountrySpec{CountryCode: cc, IBANLength: ibanLen, Algorithm: alg, Fields: fields}
}

func builtinSpecs() []*CountrySpec {
	return []*CountrySpec{
		country("AD", 24, AlgorithmNone, bank(4, Digits), branch(4, Digits), account(12, AlphaNum)),
		country("AE", 23, AlgorithmNone, bank(3, Digits), account(16, Digits)),
		country("AL", 28, AlgorithmNone, bank(3, Digits), branch(4, Digits), check(1, Digits), account(16, AlphaNum)),
		country("AT", 20, AlgorithmNone, bank(5, Digits), account(11, Digits)),
		country("BA", 20, AlgorithmNone, bank(3, Digits), branch(3, Digits), account(8, Digits), check(2, Digits)),
		country("BE", 16, AlgorithmBE, bank(3, Digits), account(7, Digits), check(2, Digits)),
		country("BG", 22, AlgorithmNone, bank(4, Letters), branch(4, Digits), account(10, AlphaNum)),
		country("CH", 21, AlgorithmNone, bank(5, Digits), account(12, AlphaNum)),
		country("CR", 22, AlgorithmNone, bank(4, Digits), account(14, Digits)),
		country("CY", 28, AlgorithmNone, bank(3, Digits), branch(5, Digits), account(16, AlphaNum)),
		country("CZ", 24, AlgorithmNone, bank(4, Digits), account(16, Digits)),
		country("DE", 22, AlgorithmDE, bank(8, Digits), account(10, Digits)),
		country("DK", 18, AlgorithmNone, bank(4, Digits), account(10, Digits)),
		country("EE", 20, AlgorithmNone, bank(2, Digits), account(14, Digits)),
		country("ES", 24, AlgorithmNone, bank(4, Digits), branch(4, Digits), check(2, Digits), account(10, Digits)),
		country("FI", 18, AlgorithmNone, bank(3, Digits), account(11, Digits)),
		country("FR", 27, AlgorithmFR, bank(5, Digits), branch(5, Digits), account(11, AlphaNum), check(2, Digits)),
		country("GB", 22, AlgorithmNone, bank(4, Letters), branch(6, Digits), account(8, Digits)),
		country("GI", 23, AlgorithmNone, bank(4, Letters), account(15, AlphaNum)),
		country("GR", 27, AlgorithmNone, bank(3, Digits), branch(4, Digits), account(16, AlphaNum)),
		country("HR", 21, AlgorithmNone, bank(7, Digits), account(10, Digits)),
		country("HU", 28, AlgorithmNone, bank(3, Digits), branch(4, Digits), account(17, Digits)),
		country("IE", 22, AlgorithmNone, bank(4, Letters), branch(6, Digits), account(8, Digits)),
		country("IS", 26, AlgorithmNone, bank(4, Digits), branch(2, Digits), account(16, Digits)),
		country("IT", 27, AlgorithmIT, check(1, Letters), bank(5, Digits), branch(5, Digits), account(12, AlphaNum)),
		country("LI", 21, AlgorithmNone, bank(5, Digits), account(12, AlphaNum)),
		country("LT", 20, AlgorithmNone, bank(5, Digits), account(11, Digits)),
		country("LU", 20, AlgorithmNone, bank(3, Digits), account(13, AlphaNum)),
		country("LV", 21, AlgorithmNone, bank(4, Letters), account(13, AlphaNum)),
		country("MC", 27, AlgorithmFR, bank(5, Digits), branch(5, Digits), account(11, AlphaNum), check(2, Digits)),
		country("ME", 22, AlgorithmNone, bank(3, Digits), account(13, Digits), check(2, Digits)),
		country("MK", 19, AlgorithmNone, bank(3, Digits), account(10, AlphaNum), check(2, Digits)),
		country("MT", 31, AlgorithmNone, bank(4, Letters), branch(5, Digits), account(18, AlphaNum)),
		country("NL", 18, AlgorithmNone, bank(4, Letters), account(10, Digits)),
		country("NO", 15, AlgorithmNone, bank(4, Digits), account(7, Digits)),
		country("PL", 28, AlgorithmNone, bank(3, Digits), branch(4, Digits), check(1, Digits), account(16, Digits)),
		country("PT", 25, AlgorithmNone, bank(4, Digits), branch(4, Digits), account(11, Digits), check(2, Digits)),
		country("RO", 24, AlgorithmNone, bank(4, Letters), account(16, AlphaNum)),
		country("RS", 22, AlgorithmNone, bank(3, Digits), account(13, Digits), check(2, Digits)),
		country("SA", 24, AlgorithmNone, bank(2, Digits), account(18, AlphaNum)),
		country("SE", 24, AlgorithmNone, bank(3, Digits), account(17, Digits)),
		country("SI", 19, AlgorithmNone, bank(2, Digits), branch(3, Digits), account(8, Digits), check(2, Digits)),
		country("SK", 24, AlgorithmNone, bank(4, Digits), account(16, Digits)),
		country("SM", 27, AlgorithmIT, check(1, Letters), bank(5, Digits), branch(5, Digits), account(12, AlphaNum)),
		country("TR", 26, AlgorithmNone, bank(5, Digits), account(17, AlphaNum)),
		country("VA", 22, AlgorithmNone, bank(3, Digits), account(15, Digits)),
		country("XK", 20, AlgorithmNone, bank(2, Digits), branch(2, Digits), account(10, Digits), check(2, Digits)),
	}
}
