// Package domainerrors provides coded errors for the fincode domain.
//
// Every failure a caller can act on carries a Code. Validation codes form one
// family so callers can catch "any invalid identifier" broadly with
// IsValidation, or match a specific stage with HasCode.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of failure.
type Code string

// Validation codes. Each maps to exactly one stage of the identifier
// validation pipeline; parsing is fail-fast, so an error carries the first
// failing stage only.
const (
	// CodeInvalidCountryCode: the country code does not resolve in the
	// country spec registry.
	CodeInvalidCountryCode Code = "invalid_country_code"
	// CodeInvalidLength: overall length does not match the country spec
	// (or, for BIC, is neither 8 nor 11).
	CodeInvalidLength Code = "invalid_length"
	// CodeInvalidStructure: a field fails its character-class or layout
	// check. The message names the offending field.
	CodeInvalidStructure Code = "invalid_structure"
	// CodeInvalidChecksumDigits: the IBAN-wide mod-97 check failed.
	CodeInvalidChecksumDigits Code = "invalid_checksum_digits"
	// CodeInvalidBBANChecksum: the country-specific national checksum was
	// run and failed.
	CodeInvalidBBANChecksum Code = "invalid_bban_checksum"
	// CodeInvalidBankCode: a generation-time bank code does not fit its
	// declared field.
	CodeInvalidBankCode Code = "invalid_bank_code"
	// CodeInvalidBranchCode: a generation-time branch code does not fit its
	// declared field.
	CodeInvalidBranchCode Code = "invalid_branch_code"
	// CodeInvalidAccountCode: a generation-time account code does not fit
	// its declared field.
	CodeInvalidAccountCode Code = "invalid_account_code"
	// CodeUnsupportedChecksum: no national checksum algorithm is available
	// for the country or bank. This is "not checked", not "checked and
	// failed". Callers that require a verdict must treat it explicitly.
	CodeUnsupportedChecksum Code = "unsupported_checksum"
)

// Transport and infrastructure codes.
const (
	CodeNotFound   Code = "not_found"
	CodeBadRequest Code = "bad_request"
	CodeInternal   Code = "internal_error"
)

// validationCodes is the umbrella family for IsValidation.
var validationCodes = map[Code]bool{
	CodeInvalidCountryCode:    true,
	CodeInvalidLength:         true,
	CodeInvalidStructure:      true,
	CodeInvalidChecksumDigits: true,
	CodeInvalidBBANChecksum:   true,
	CodeInvalidBankCode:       true,
	CodeInvalidBranchCode:     true,
	CodeInvalidAccountCode:    true,
	CodeUnsupportedChecksum:   true,
}

// Error is a coded domain error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf constructs a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf extracts the code from err, or CodeInternal when err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf extracts the human-readable message from err without the code
// prefix, falling back to err.Error() for uncoded errors.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsValidation reports whether err belongs to the identifier-validation
// family (any stage of IBAN/BIC parsing, generation, or checksum checking).
func IsValidation(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return validationCodes[e.Code]
	}
	return false
}

// ToHTTPStatus maps a code to the HTTP status the transport layer returns.
func ToHTTPStatus(code Code) int {
	switch {
	case code == CodeNotFound:
		return http.StatusNotFound
	case code == CodeBadRequest:
		return http.StatusBadRequest
	case validationCodes[code]:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
