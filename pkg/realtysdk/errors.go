package realtysdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes the SDK reacts to. The server emits more codes than
// these; the rest pass through inside APIError untouched.
const (
	ErrorCodeAuthRequired        = "AUTH_REQUIRED"
	ErrorCodeTokenExpired        = "TOKEN_EXPIRED"
	ErrorCodeSessionExpired      = "SESSION_EXPIRED"
	ErrorCodeRefreshTokenMissing = "REFRESH_TOKEN_MISSING"
	ErrorCodeRefreshTokenExpired = "REFRESH_TOKEN_EXPIRED"
)

// ErrSessionExpired is returned when the session cannot be refreshed.
// The only recovery is a fresh login.
var ErrSessionExpired = errors.New("realtysdk: session expired, login required")

// APIError is a non-2xx response from the service.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Code is the machine-readable error code (e.g. "INVALID_CREDENTIALS")
	Code string

	// Message is the human-readable message from the response envelope
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsCode reports whether err is an APIError carrying the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// parseErrorResponse turns a non-2xx response body into a typed error.
// Returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       env.Code,
			Message:    env.Message,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
