package jwtx

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload shared by all token kinds. Subject holds the
// user ID. Email and OTP are only set on reset tokens.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
	OTP   string `json:"otp,omitempty"`
}

// UserID returns the subject claim.
func (c Claims) UserID() string {
	return c.Subject
}

// NewSessionClaims builds the claims for an access or refresh token.
func NewSessionClaims(userID, email string) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID,
		},
		Email: email,
	}
}

// NewResetClaims builds the claims for a password reset token. The OTP
// travels inside the signed token so the server stays stateless.
func NewResetClaims(userID, email, otp string) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID,
		},
		Email: email,
		OTP:   otp,
	}
}
