package jwtx

import (
	"errors"
	"net/http"
)

// Stable error codes surfaced to clients. Every verification failure is
// a 401; the code tells the client whether a refresh is worth trying.
const (
	CodeTokenExpired   = "TOKEN_EXPIRED"
	CodeInvalidToken   = "INVALID_TOKEN"
	CodeTokenNotActive = "TOKEN_NOT_ACTIVE"
	CodeTokenError     = "TOKEN_ERROR"
)

// TokenError is the classified result of a failed verification.
type TokenError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *TokenError) Error() string { return e.Message }

// Status returns the HTTP status for this error. All token failures
// map to 401 so middleware can treat them uniformly.
func (e *TokenError) Status() int { return http.StatusUnauthorized }

// IsExpired reports whether err is a verification failure caused purely
// by token expiry. Only this case should trigger a refresh attempt.
func IsExpired(err error) bool {
	var te *TokenError
	return errors.As(err, &te) && te.Code == CodeTokenExpired
}

func expiredError(kind Kind) *TokenError {
	return &TokenError{Kind: kind, Code: CodeTokenExpired, Message: kind.label() + " expired"}
}

func notActiveError(kind Kind) *TokenError {
	return &TokenError{Kind: kind, Code: CodeTokenNotActive, Message: kind.label() + " not active yet"}
}

func invalidError(kind Kind) *TokenError {
	return &TokenError{Kind: kind, Code: CodeInvalidToken, Message: "Invalid " + kind.label()}
}

func verifyError(kind Kind) *TokenError {
	return &TokenError{Kind: kind, Code: CodeTokenError, Message: "Could not verify " + kind.label()}
}
