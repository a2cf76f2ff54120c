package handlers

import (
	"net/http"

	"pawbooker/services/availability"
)

// statusForEngineError maps typed availability errors onto HTTP statuses.
// Unavailability and expiry are ordinary negative results, not 5xx; anything
// without a code is an infrastructure failure.
func statusForEngineError(err error) int {
	switch availability.ErrorCode(err) {
	case availability.CodeNotFound:
		return http.StatusNotFound
	case availability.CodeSlotUnavailable, availability.CodeInvalidState:
		return http.StatusConflict
	case availability.CodeHoldExpired:
		return http.StatusGone
	case availability.CodeInvalidInterval:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
