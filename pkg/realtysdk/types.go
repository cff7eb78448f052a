package realtysdk

import (
	"encoding/json"
	"time"
)

// Envelope is the response shape every endpoint returns. Data is left
// raw so callers can decode it into the payload the endpoint documents.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Code    string          `json:"code,omitempty"`
}

// User is the sanitized account representation returned by the API.
// The password hash never leaves the server.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	City      string    `json:"city,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest starts a cookie session.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest starts the OTP reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest checks an OTP against the reset token it was issued
// with.
type VerifyOTPRequest struct {
	ResetToken string `json:"resetToken"`
	OTP        string `json:"otp"`
}

// ResetPasswordRequest completes the OTP reset flow.
type ResetPasswordRequest struct {
	ResetToken  string `json:"resetToken"`
	NewPassword string `json:"newPassword"`
}

// ProfileUpdateParams are the optional fields of a profile update.
// Nil pointers leave the stored values untouched. Avatar, when
// non-empty, is uploaded as the new profile image.
type ProfileUpdateParams struct {
	Username *string
	Phone    *string
	Gender   *string
	City     *string

	AvatarFilename string
	Avatar         []byte
}

// UserData wraps the user payload endpoints return under data.user.
type UserData struct {
	User User `json:"user"`
}

// ForgotPasswordData carries the reset token the client must round-trip
// through verify-otp and reset-password. Empty when the email was not
// registered.
type ForgotPasswordData struct {
	ResetToken string `json:"resetToken,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the livez and readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
