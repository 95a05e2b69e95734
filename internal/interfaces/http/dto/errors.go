package dto

import (
	"net/http"
	"strings"
)

// Domain error codes surfaced by the application layer. Handlers map
// these to HTTP statuses through GetHTTPStatus.
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeAlreadyExists       = "ALREADY_EXISTS"
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeInvalidState        = "INVALID_STATE"
	ErrCodeConcurrencyConflict = "CONCURRENCY_CONFLICT"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
)

// ErrorCodeHTTPStatus maps exact error codes to HTTP status codes.
// Codes not listed here fall through to the suffix/prefix rules in
// GetHTTPStatus.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeInvalidInput:        http.StatusBadRequest,
	ErrCodeUnauthorized:        http.StatusUnauthorized,
	ErrCodeForbidden:           http.StatusForbidden,
	ErrCodeInvalidState:        http.StatusUnprocessableEntity,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeInternalError:       http.StatusInternalServerError,
	ErrCodeValidationFailed:    http.StatusBadRequest,

	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"INVALID_PASSWORD":    http.StatusBadRequest,
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,

	"EMAIL_ALREADY_EXISTS":   http.StatusConflict,
	"INVOICE_ALREADY_EXISTS": http.StatusConflict,

	"ELECTRICITY_BILL_PROPERTY_MISMATCH": http.StatusBadRequest,
}

// GetHTTPStatus resolves the HTTP status for a domain error code.
// Exact matches win; otherwise the code's shape decides: *_NOT_FOUND is
// 404, *_ACCESS_DENIED is 403, TOKEN_* is 401, INVALID_* is 400.
// Unknown codes default to 500 so nothing leaks as a silent success.
func GetHTTPStatus(errorCode string) int {
	if status, ok := ErrorCodeHTTPStatus[errorCode]; ok {
		return status
	}
	switch {
	case strings.HasSuffix(errorCode, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasSuffix(errorCode, "_ACCESS_DENIED"):
		return http.StatusForbidden
	case strings.HasSuffix(errorCode, "_ALREADY_EXISTS"):
		return http.StatusConflict
	case strings.HasPrefix(errorCode, "TOKEN_"):
		return http.StatusUnauthorized
	case strings.HasPrefix(errorCode, "INVALID_"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
