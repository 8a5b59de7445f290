package iban

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincode/pkg/bic"
	dErrors "fincode/pkg/domain-errors"
	"fincode/pkg/registry"
)

func TestParseAcceptsEveryRegisteredCountry(t *testing.T) {
	for _, raw := range validIBANs {
		ib, err := Parse(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, ib.String())
		assert.True(t, ib.IsValid())
	}
}

func TestParseNormalizesInput(t *testing.T) {
	ib, err := Parse("de89 3704 0044 0532 0130 00")
	require.NoError(t, err)
	assert.Equal(t, "DE89370400440532013000", ib.String())
	assert.Equal(t, "DE", ib.CountryCode())
	assert.Equal(t, "89", ib.ChecksumDigits())
	assert.Equal(t, 22, ib.Length())
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode dErrors.Code
	}{
		{"empty", "", dErrors.CodeInvalidLength},
		{"shorter than any IBAN", "DE8", dErrors.CodeInvalidLength},
		{"longer than any IBAN", "DE893704004405320130001234567890123", dErrors.CodeInvalidLength},
		{"unknown country", "DX89370400440532013000", dErrors.CodeInvalidCountryCode},
		{"wrong length for country", "DE8937040044053201300", dErrors.CodeInvalidLength},
		{"letter check digits", "DEA9370400440532013000", dErrors.CodeInvalidStructure},
		{"letter in numeric field", "DE89370400440532O13000", dErrors.CodeInvalidStructure},
		{"failing mod-97", "DE99370400440532013000", dErrors.CodeInvalidChecksumDigits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestParseStageOrder(t *testing.T) {
	// A value that is simultaneously the wrong length and has a broken
	// checksum must report the earlier stage.
	_, err := Parse("DX8937040044053201300")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidCountryCode))

	_, err = Parse("DE993704004405320130")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidLength))
}

func TestParseWithBBANValidation(t *testing.T) {
	t.Run("passing national checksums", func(t *testing.T) {
		for _, raw := range []string{
			"DE89370400440532013000",
			"IT60X0542811101000000123456",
			"SM86U0322509800000000270100",
			"BE68539007547034",
			"FR1420041010050500013M02606",
			"MC5811222000010123456789030",
		} {
			_, err := Parse(raw, WithBBANValidation())
			assert.NoError(t, err, raw)
		}
	})

	t.Run("mod-97 valid but national checksum broken", func(t *testing.T) {
		_, err := Parse("DE20290909008840017000")
		require.NoError(t, err, "without BBAN validation the IBAN is fine")

		_, err = Parse("DE20290909008840017000", WithBBANValidation())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidBBANChecksum))
	})

	t.Run("countries without an algorithm are skipped", func(t *testing.T) {
		_, err := Parse("GB82WEST12345698765432", WithBBANValidation())
		assert.NoError(t, err)
	})

	t.Run("unmapped german bank codes are skipped", func(t *testing.T) {
		_, err := Parse("DE40100100100000012345", WithBBANValidation())
		assert.NoError(t, err)
	})
}

func TestAllowInvalid(t *testing.T) {
	ib, err := Parse("DX89370400440532013000", AllowInvalid())
	require.NoError(t, err)

	assert.False(t, ib.IsValid())
	assert.True(t, dErrors.HasCode(ib.ValidationError(), dErrors.CodeInvalidCountryCode))
	assert.Equal(t, "DX89370400440532013000", ib.String(), "compact form is kept")

	err = ib.Validate()
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidCountryCode))
}

func TestValidateReRunsThePipeline(t *testing.T) {
	ib, err := Parse("DE20290909008840017000")
	require.NoError(t, err)

	assert.NoError(t, ib.Validate())
	err = ib.Validate(WithBBANValidation())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidBBANChecksum))
}

func TestIBANFieldAccessors(t *testing.T) {
	ib, err := Parse("FR1420041010050500013M02606")
	require.NoError(t, err)
	assert.Equal(t, "20041", ib.BankCode())
	assert.Equal(t, "01005", ib.BranchCode())
	assert.Equal(t, "0500013M026", ib.AccountCode())
	assert.Equal(t, "20041010050500013M02606", ib.BBAN().String())
}

func TestFormatted(t *testing.T) {
	ib, err := Parse("DE89370400440532013000")
	require.NoError(t, err)
	assert.Equal(t, "DE89 3704 0044 0532 0130 00", ib.Formatted())

	// Formatted output parses back to the same value.
	again, err := Parse(ib.Formatted())
	require.NoError(t, err)
	assert.Equal(t, ib.String(), again.String())

	short, err := Parse("NO9386011117947")
	require.NoError(t, err)
	assert.Equal(t, "NO93 8601 1117 947", short.Formatted())
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		country string
		bank    string
		account string
		opts    []GenerateOption
		want    string
	}{
		{
			name:    "germany",
			country: "DE", bank: "37040044", account: "532013000",
			want: "DE89370400440532013000",
		},
		{
			name:    "germany pads short accounts",
			country: "DE", bank: "10010010", account: "12345",
			want: "DE40100100100000012345",
		},
		{
			name:    "belgium computes national check digits",
			country: "BE", bank: "539", account: "7547034",
			want: "BE91539754703476",
		},
		{
			name:    "italy computes the CIN",
			country: "IT", bank: "05428", account: "123456",
			opts: []GenerateOption{WithBranchCode("11101")},
			want: "IT60X0542811101000000123456",
		},
		{
			name:    "france computes the RIB key",
			country: "FR", bank: "20041", account: "0500013M026",
			opts: []GenerateOption{WithBranchCode("01005")},
			want: "FR1420041010050500013M02606",
		},
		{
			name:    "letter bank codes",
			country: "GB", bank: "NWBK", account: "31926819",
			opts: []GenerateOption{WithBranchCode("601613")},
			want: "GB29NWBK60161331926819",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ib, err := Generate(tt.country, tt.bank, tt.account, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ib.String())

			// Everything generated must survive strict re-validation.
			assert.NoError(t, ib.Validate(WithBBANValidation()))
		})
	}
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name     string
		country  string
		bank     string
		account  string
		opts     []GenerateOption
		wantCode dErrors.Code
	}{
		{"unknown country", "XX", "123", "456", nil, dErrors.CodeInvalidCountryCode},
		{"bank code too long", "DE", "370400441", "532013000", nil, dErrors.CodeInvalidBankCode},
		{"account too long", "DE", "37040044", "05320130001", nil, dErrors.CodeInvalidAccountCode},
		{"branch too long", "FR", "20041", "0500013M026", []GenerateOption{WithBranchCode("010051")}, dErrors.CodeInvalidBranchCode},
		{"digits in a letters field", "GB", "1234", "31926819", []GenerateOption{WithBranchCode("601613")}, dErrors.CodeInvalidStructure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.country, tt.bank, tt.account, tt.opts...)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestRandom(t *testing.T) {
	for _, cc := range []string{"DE", "GB", "BE", "IT", "FR", "NL", "NO", "MT"} {
		t.Run(cc, func(t *testing.T) {
			ib, err := Random(cc)
			require.NoError(t, err)
			assert.Equal(t, cc, ib.CountryCode())

			parsed, err := Parse(ib.String())
			require.NoError(t, err)
			assert.Equal(t, ib.String(), parsed.String())
		})
	}

	t.Run("unknown country", func(t *testing.T) {
		_, err := Random("ZZ")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidCountryCode))
	})
}

func TestParseWithCustomRegistry(t *testing.T) {
	snap, err := registry.NewSnapshot([]*registry.CountrySpec{
		{
			CountryCode: "DE",
			IBANLength:  22,
			Fields: []registry.BBANField{
				{Name: registry.FieldBankCode, Length: 8, CharClass: registry.Digits},
				{Name: registry.FieldAccountCode, Length: 10, CharClass: registry.Digits},
			},
		},
	})
	require.NoError(t, err)

	_, err = Parse("DE89370400440532013000", WithRegistry(snap))
	assert.NoError(t, err)

	_, err = Parse("GB82WEST12345698765432", WithRegistry(snap))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidCountryCode))
}

// stubDirectory backs the BIC resolution tests without a real directory
// implementation.
type stubDirectory struct {
	entries map[string][]bic.BankEntry
}

func (d stubDirectory) BankEntries(_ context.Context, cc, bank string) ([]bic.BankEntry, error) {
	return d.entries[cc+"/"+bank], nil
}

func (d stubDirectory) EntriesByBIC(_ context.Context, _ string) ([]bic.BankEntry, error) {
	return nil, nil
}

func TestIBANBICResolution(t *testing.T) {
	dir := stubDirectory{entries: map[string][]bic.BankEntry{
		"DE/37040044": {{CountryCode: "DE", BankCode: "37040044", BIC: "COBADEFFXXX"}},
	}}

	ib, err := Parse("DE89370400440532013000")
	require.NoError(t, err)

	resolved, ok := ib.BIC(context.Background(), dir)
	require.True(t, ok)
	assert.Equal(t, "COBADEFFXXX", resolved.String())

	t.Run("unknown bank code", func(t *testing.T) {
		other, err := Parse("GB82WEST12345698765432")
		require.NoError(t, err)
		_, ok := other.BIC(context.Background(), dir)
		assert.False(t, ok)
	})

	t.Run("nil directory", func(t *testing.T) {
		_, ok := ib.BIC(context.Background(), nil)
		assert.False(t, ok)
	})
}
