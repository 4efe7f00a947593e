package dto

import "net/http"

// statusByCode maps domain error codes to HTTP status codes
var statusByCode = map[string]int{
	"NOT_FOUND":               http.StatusNotFound,
	"ALREADY_EXISTS":          http.StatusConflict,
	"EMAIL_TAKEN":             http.StatusConflict,
	"INVALID_INPUT":           http.StatusBadRequest,
	"INVALID_CARD":            http.StatusBadRequest,
	"INVALID_TOKEN":           http.StatusBadRequest,
	"TOKEN_EXPIRED":           http.StatusBadRequest,
	"INVALID_STATUS":          http.StatusBadRequest,
	"INVALID_SHIPPING_METHOD": http.StatusBadRequest,
	"UNAUTHORIZED":            http.StatusUnauthorized,
	"INVALID_CREDENTIALS":     http.StatusUnauthorized,
	"FORBIDDEN":               http.StatusForbidden,
	"PAYMENT_DECLINED":        http.StatusPaymentRequired,
	"INVALID_STATE":           http.StatusUnprocessableEntity,
	"OUT_OF_STOCK":            http.StatusConflict,
	"ACCOUNT_LOCKED":          http.StatusLocked,
	"RATE_LIMIT_EXCEEDED":     http.StatusTooManyRequests,
	"ORDER_CREATION_FAILED":   http.StatusInternalServerError,
}

// StatusForCode returns the HTTP status for a domain error code,
// defaulting to 500 for unmapped codes
func StatusForCode(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
