package httpx

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint returns. Code is only set on
// failures and carries a stable machine-readable value.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Codes emitted at the transport layer. Service-level codes live with
// the services that raise them.
const (
	CodeAuthRequired   = "AUTH_REQUIRED"
	CodeSessionExpired = "SESSION_EXPIRED"
	CodeUserNotFound   = "USER_NOT_FOUND"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInternalError  = "INTERNAL_ERROR"
)

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes a success envelope. Data may be nil.
func WriteSuccess(w http.ResponseWriter, status int, message string, data any) {
	WriteJSON(w, status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// WriteError writes a failure envelope with a machine-readable code.
func WriteError(w http.ResponseWriter, status int, message, code string) {
	WriteJSON(w, status, Response{
		Success: false,
		Message: message,
		Code:    code,
	})
}

// WriteInternalError hides the underlying cause from the caller. The
// cause belongs in the request log, never in the response body.
func WriteInternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, "Something went wrong", CodeInternalError)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
