package realtysdk

import (
	"context"
	"net/http"
)

// Register creates a new account. Registration does not start a
// session; call Login afterwards.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	resp, body, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register", req)
	if err != nil {
		return nil, err
	}

	var data UserData
	if err := decodeData(resp, body, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// Login verifies credentials and starts a cookie session. The returned
// Session shares this client's cookie jar and refresh coordinator.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, body, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var data UserData
	if err := decodeData(resp, body, &data); err != nil {
		return nil, err
	}

	return &Session{client: c, user: data.User}, nil
}

// ForgotPassword starts the OTP reset flow. The returned reset token is
// empty when the email is not registered; the service deliberately does
// not distinguish that case by status.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	resp, body, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/forgot-password", ForgotPasswordRequest{
		Email: email,
	})
	if err != nil {
		return "", err
	}

	var data ForgotPasswordData
	if err := decodeData(resp, body, &data); err != nil {
		return "", err
	}
	return data.ResetToken, nil
}

// VerifyOTP checks the emailed OTP against the reset token.
func (c *Client) VerifyOTP(ctx context.Context, resetToken, otp string) error {
	resp, body, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/verify-otp", VerifyOTPRequest{
		ResetToken: resetToken,
		OTP:        otp,
	})
	if err != nil {
		return err
	}
	return decodeData(resp, body, nil)
}

// ResetPassword completes the reset flow with a new password.
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	resp, body, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/reset-password", ResetPasswordRequest{
		ResetToken:  resetToken,
		NewPassword: newPassword,
	})
	if err != nil {
		return err
	}
	return decodeData(resp, body, nil)
}
