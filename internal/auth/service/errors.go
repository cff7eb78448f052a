package service

import "errors"

// Sentinel errors surfaced by the auth services. Handlers translate
// these into envelope codes and HTTP statuses.
var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrOTPDelivery        = errors.New("failed to send otp")
)
