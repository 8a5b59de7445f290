package bankdir

import "fincode/pkg/bic"

// Seed returns the compiled-in bank directory used when no external backend
// is configured. Entry order is the registry order callers observe.
func Seed() []bic.BankEntry {
	return []bic.BankEntry{
		// France: one domestic code, several BICs (head office plus branch
		// variants). The 8-character head-office entry is the generic one.
		{CountryCode: "FR", BankCode: "30004", BIC: "BNPAFRPP", BankName: "BNP Paribas"},
		{CountryCode: "FR", BankCode: "30004", BIC: "BNPAFRPPIFN", BankName: "BNP Paribas Int'l"},
		{CountryCode: "FR", BankCode: "30004", BIC: "BNPAFRPPCRN", BankName: "BNP Paribas Cannes"},
		{CountryCode: "FR", BankCode: "30003", BIC: "SOGEFRPP", BankName: "Société Générale"},

		// Germany, keyed by Bankleitzahl.
		{CountryCode: "DE", BankCode: "37040044", BIC: "COBADEFFXXX", BankName: "Commerzbank Köln"},
		{CountryCode: "DE", BankCode: "10010010", BIC: "PBNKDEFFXXX", BankName: "Postbank Berlin"},
		{CountryCode: "DE", BankCode: "29090900", BIC: "GENODEF1P03", BankName: "PSD Bank Nord"},
		{CountryCode: "DE", BankCode: "43060967", BIC: "GENODEM1GLS", BankName: "GLS Gemeinschaftsbank"},

		// Countries whose domestic bank code is itself a letter code.
		{CountryCode: "NL", BankCode: "ABNA", BIC: "ABNANL2A", BankName: "ABN AMRO"},
		{CountryCode: "NL", BankCode: "INGB", BIC: "INGBNL2A", BankName: "ING"},
		{CountryCode: "GB", BankCode: "NWBK", BIC: "NWBKGB2L", BankName: "NatWest"},

		{CountryCode: "ES", BankCode: "2100", BIC: "CAIXESBBXXX", BankName: "CaixaBank"},
		{CountryCode: "IT", BankCode: "05428", BIC: "BLOPIT22", BankName: "Banco BPM"},
		{CountryCode: "BE", BankCode: "539", BIC: "GKCCBEBB", BankName: "Belfius"},
		{CountryCode: "AT", BankCode: "19043", BIC: "BAWAATWW", BankName: "BAWAG"},

		// A bank code whose only registered BICs are branch-specific; the
		// resolver's generic preference has nothing to pick here.
		{CountryCode: "GB", BankCode: "HBUK", BIC: "HBUKGB41LDS", BankName: "HSBC UK Leeds"},
		{CountryCode: "GB", BankCode: "HBUK", BIC: "HBUKGB41MAN", BankName: "HSBC UK Manchester"},
	}
}
