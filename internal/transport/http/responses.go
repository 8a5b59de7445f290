package httptransport

import (
	"context"

	"fincode/pkg/bic"
	dErrors "fincode/pkg/domain-errors"
	"fincode/pkg/iban"
)

// ValidationError is the per-value error detail carried inside a 200
// response (allow_invalid mode and batch items).
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func validationErrorFrom(err error) *ValidationError {
	if err == nil {
		return nil
	}
	return &ValidationError{
		Code:    string(dErrors.CodeOf(err)),
		Message: dErrors.MessageOf(err),
	}
}

// IBANResponse describes one parsed or generated IBAN.
type IBANResponse struct {
	IBAN        string           `json:"iban"`
	Valid       bool             `json:"valid"`
	Formatted   string           `json:"formatted,omitempty"`
	CountryCode string           `json:"country_code,omitempty"`
	CheckDigits string           `json:"check_digits,omitempty"`
	BankCode    string           `json:"bank_code,omitempty"`
	BranchCode  string           `json:"branch_code,omitempty"`
	AccountCode string           `json:"account_code,omitempty"`
	BIC         string           `json:"bic,omitempty"`
	Error       *ValidationError `json:"error,omitempty"`
}

// fromIBAN builds the response for a valid IBAN, resolving the BIC
// best-effort when a directory is available.
func fromIBAN(ctx context.Context, ib iban.IBAN, dir bic.Directory) IBANResponse {
	resp := IBANResponse{
		IBAN:        ib.String(),
		Valid:       true,
		Formatted:   ib.Formatted(),
		CountryCode: ib.CountryCode(),
		CheckDigits: ib.ChecksumDigits(),
		BankCode:    ib.BankCode(),
		BranchCode:  ib.BranchCode(),
		AccountCode: ib.AccountCode(),
	}
	if dir != nil {
		if resolved, ok := ib.BIC(ctx, dir); ok {
			resp.BIC = resolved.String()
		}
	}
	return resp
}

// fromInvalidIBAN builds the response for a value that failed validation.
func fromInvalidIBAN(compact string, err error) IBANResponse {
	return IBANResponse{
		IBAN:  compact,
		Valid: false,
		Error: validationErrorFrom(err),
	}
}

// BatchParseResponse carries per-item outcomes in request order.
type BatchParseResponse struct {
	Results []IBANResponse `json:"results"`
}

// BICResponse describes one parsed BIC.
type BICResponse struct {
	BIC          string `json:"bic"`
	Valid        bool   `json:"valid"`
	Expanded     string `json:"expanded,omitempty"`
	BankCode     string `json:"bank_code,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
	LocationCode string `json:"location_code,omitempty"`
	BranchCode   string `json:"branch_code,omitempty"`
	Generic      bool   `json:"generic"`
}

func fromBIC(b bic.BIC) BICResponse {
	return BICResponse{
		BIC:          b.String(),
		Valid:        true,
		Expanded:     b.Expanded(),
		BankCode:     b.BankCode(),
		CountryCode:  b.CountryCode(),
		LocationCode: b.LocationCode(),
		BranchCode:   b.BranchCode(),
		Generic:      b.IsGeneric(),
	}
}

// BICCandidatesResponse answers the bank-code lookup endpoint.
type BICCandidatesResponse struct {
	CountryCode string        `json:"country_code"`
	BankCode    string        `json:"bank_code"`
	BIC         string        `json:"bic"`
	Candidates  []BICResponse `json:"candidates"`
}
