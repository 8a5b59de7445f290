package httptransport

import (
	dErrors "fincode/pkg/domain-errors"
)

// maxBatchSize bounds one batch request; larger batches get a bad_request.
const maxBatchSize = 500

// ParseIBANRequest is the payload for POST /v1/iban/parse.
type ParseIBANRequest struct {
	IBAN string `json:"iban"`
	// ValidateBBAN additionally runs the country's national checksum.
	ValidateBBAN bool `json:"validate_bban,omitempty"`
	// AllowInvalid returns the parse outcome in the body instead of an
	// error status.
	AllowInvalid bool `json:"allow_invalid,omitempty"`
}

func (r ParseIBANRequest) Validate() error {
	if r.IBAN == "" {
		return dErrors.New(dErrors.CodeBadRequest, "iban is required")
	}
	return nil
}

// GenerateIBANRequest is the payload for POST /v1/iban/generate.
type GenerateIBANRequest struct {
	CountryCode string `json:"country_code"`
	BankCode    string `json:"bank_code"`
	BranchCode  string `json:"branch_code,omitempty"`
	AccountCode string `json:"account_code"`
}

func (r GenerateIBANRequest) Validate() error {
	if r.CountryCode == "" {
		return dErrors.New(dErrors.CodeBadRequest, "country_code is required")
	}
	if r.BankCode == "" {
		return dErrors.New(dErrors.CodeBadRequest, "bank_code is required")
	}
	if r.AccountCode == "" {
		return dErrors.New(dErrors.CodeBadRequest, "account_code is required")
	}
	return nil
}

// BatchParseRequest is the payload for POST /v1/iban/batch.
type BatchParseRequest struct {
	IBANs        []string `json:"ibans"`
	ValidateBBAN bool     `json:"validate_bban,omitempty"`
}

func (r BatchParseRequest) Validate() error {
	if len(r.IBANs) == 0 {
		return dErrors.New(dErrors.CodeBadRequest, "ibans must not be empty")
	}
	if len(r.IBANs) > maxBatchSize {
		return dErrors.Newf(dErrors.CodeBadRequest, "batch size exceeds %d", maxBatchSize)
	}
	return nil
}

// ParseBICRequest is the payload for POST /v1/bic/parse.
type ParseBICRequest struct {
	BIC string `json:"bic"`
	// EnforceSwift restricts the prefix to letters (pre-2022 SWIFT rule).
	EnforceSwift bool `json:"enforce_swift,omitempty"`
}

func (r ParseBICRequest) Validate() error {
	if r.BIC == "" {
		return dErrors.New(dErrors.CodeBadRequest, "bic is required")
	}
	return nil
}
