package api

import (
	"encoding/json"
	"net/http"
	"strings"

	shared "minired-cli/shared"
)

// HandleApiError builds an ApiError from a non-2xx response. The backend
// wraps error messages as {"error": "..."}; anything else falls back to the
// raw body text.
func HandleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	var payload struct {
		Error string `json:"error"`
	}

	msg := strings.TrimSpace(string(errBody))
	if err := json.Unmarshal(errBody, &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}

	return &shared.ApiError{
		Type:   errorTypeForStatus(r.StatusCode),
		Status: r.StatusCode,
		Msg:    msg,
	}
}

func errorTypeForStatus(status int) shared.ApiErrorType {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return shared.ApiErrorTypeUnauthorized
	case http.StatusNotFound:
		return shared.ApiErrorTypeNotFound
	default:
		return shared.ApiErrorTypeOther
	}
}
