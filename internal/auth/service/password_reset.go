package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/mail"
	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/store"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/cryptox"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/jwtx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"
)

// PasswordResetService implements the stateless OTP reset flow. The OTP
// is never stored server-side; it travels inside the signed reset token
// the client round-trips through verify and reset. The token is a
// capability carrying a challenge value, so both endpoints re-verify
// signature and expiry on every call.
type PasswordResetService struct {
	Store store.Store
	Codec *jwtx.Codec
	Mail  mail.Sender
}

// Forgot issues a reset token for the account behind email and mails
// the embedded OTP. For unknown emails it returns an empty token and no
// error; the handler responds with the same success shape either way so
// the endpoint cannot be used to probe which accounts exist.
func (s *PasswordResetService) Forgot(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	otp, err := cryptox.GenerateOTP()
	if err != nil {
		return "", err
	}

	token, err := s.Codec.Issue(jwtx.KindReset, jwtx.NewResetClaims(user.ID, user.Email, otp))
	if err != nil {
		return "", err
	}

	expiryMinutes := int(s.Codec.TTL(jwtx.KindReset).Minutes())
	msgID, err := s.Mail.Send(ctx, mail.OTPMessage(user.Email, otp, expiryMinutes))
	if err != nil {
		slogx.FromContext(ctx).Error("otp mail delivery failed", "err", err, "user_id", user.ID)
		return "", fmt.Errorf("%w: %v", ErrOTPDelivery, err)
	}

	slogx.FromContext(ctx).Info("otp sent", "user_id", user.ID, "message_id", msgID)
	return token, nil
}

// VerifyOTP checks a submitted OTP against the one embedded in the
// reset token. Token verification failures bubble up as *jwtx.TokenError.
func (s *PasswordResetService) VerifyOTP(ctx context.Context, resetToken, otp string) error {
	claims, err := s.Codec.Verify(jwtx.KindReset, resetToken)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(claims.OTP), []byte(otp)) != 1 {
		return ErrInvalidOTP
	}
	return nil
}

// Reset overwrites the password for the account named in the reset
// token. The token proves the OTP challenge was issued for that email;
// clients call this after VerifyOTP, but Reset re-verifies everything
// since the endpoints are independent.
func (s *PasswordResetService) Reset(ctx context.Context, resetToken, newPassword string) error {
	claims, err := s.Codec.Verify(jwtx.KindReset, resetToken)
	if err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByEmail(ctx, claims.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return tx.Users().UpdatePasswordHash(ctx, user.ID, hash)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password reset", "email", claims.Email)
	return nil
}
