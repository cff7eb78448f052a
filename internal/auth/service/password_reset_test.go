package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/service"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/cryptox"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/jwtx"
)

func newResetService(t *testing.T, sender *recordingSender) (*service.AuthService, *service.PasswordResetService) {
	t.Helper()
	st := newTestStore(t)
	codec := newTestCodec(t)
	auth := &service.AuthService{Store: st, Codec: codec}
	reset := &service.PasswordResetService{Store: st, Codec: codec, Mail: sender}
	return auth, reset
}

func TestForgotKnownEmail(t *testing.T) {
	sender := &recordingSender{}
	auth, reset := newResetService(t, sender)
	ctx := context.Background()
	registerTestUser(t, auth, "alice@example.com")

	token, err := reset.Forgot(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Equal(t, "Reset Password OTP", msg.Subject)

	// The mailed OTP matches the one sealed into the token.
	claims, err := reset.Codec.Verify(jwtx.KindReset, token)
	require.NoError(t, err)
	assert.Len(t, claims.OTP, cryptox.OTPLength)
	assert.Contains(t, msg.HTML, claims.OTP)
}

func TestForgotUnknownEmail(t *testing.T) {
	sender := &recordingSender{}
	_, reset := newResetService(t, sender)

	// Unknown accounts yield no token, no mail and no error.
	token, err := reset.Forgot(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, sender.sent)
}

func TestForgotMailFailure(t *testing.T) {
	sender := &recordingSender{err: assert.AnError}
	auth, reset := newResetService(t, sender)
	registerTestUser(t, auth, "alice@example.com")

	_, err := reset.Forgot(context.Background(), "alice@example.com")
	require.ErrorIs(t, err, service.ErrOTPDelivery)
}

func TestVerifyOTP(t *testing.T) {
	sender := &recordingSender{}
	auth, reset := newResetService(t, sender)
	ctx := context.Background()
	registerTestUser(t, auth, "alice@example.com")

	token, err := reset.Forgot(ctx, "alice@example.com")
	require.NoError(t, err)

	claims, err := reset.Codec.Verify(jwtx.KindReset, token)
	require.NoError(t, err)

	require.NoError(t, reset.VerifyOTP(ctx, token, claims.OTP))

	wrong := "000000"
	if claims.OTP == wrong {
		wrong = "123456"
	}
	require.ErrorIs(t, reset.VerifyOTP(ctx, token, wrong), service.ErrInvalidOTP)
}

func TestVerifyOTPExpiredToken(t *testing.T) {
	sender := &recordingSender{}
	auth, reset := newResetService(t, sender)
	userID := registerTestUser(t, auth, "alice@example.com")

	token := expiredResetToken(t, userID, "alice@example.com", "123456")

	err := reset.VerifyOTP(context.Background(), token, "123456")
	require.True(t, jwtx.IsExpired(err))
}

func TestVerifyOTPRejectsAccessToken(t *testing.T) {
	sender := &recordingSender{}
	auth, reset := newResetService(t, sender)
	ctx := context.Background()
	registerTestUser(t, auth, "alice@example.com")

	_, pair, err := auth.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)

	err = reset.VerifyOTP(ctx, pair.Access, "123456")
	var te *jwtx.TokenError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, jwtx.CodeInvalidToken, te.Code)
}

func TestResetFlow(t *testing.T) {
	sender := &recordingSender{}
	auth, reset := newResetService(t, sender)
	ctx := context.Background()
	registerTestUser(t, auth, "alice@example.com")

	token, err := reset.Forgot(ctx, "alice@example.com")
	require.NoError(t, err)

	claims, err := reset.Codec.Verify(jwtx.KindReset, token)
	require.NoError(t, err)
	require.NoError(t, reset.VerifyOTP(ctx, token, claims.OTP))

	require.NoError(t, reset.Reset(ctx, token, "correct-horse-battery"))

	// The old password stops working and the new one takes over.
	_, _, err = auth.Login(ctx, "alice@example.com", "password123")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = auth.Login(ctx, "alice@example.com", "correct-horse-battery")
	require.NoError(t, err)
}

func TestResetExpiredToken(t *testing.T) {
	sender := &recordingSender{}
	auth, reset := newResetService(t, sender)
	userID := registerTestUser(t, auth, "alice@example.com")

	token := expiredResetToken(t, userID, "alice@example.com", "123456")

	err := reset.Reset(context.Background(), token, "correct-horse-battery")
	require.True(t, jwtx.IsExpired(err))
}

func TestResetAfterAccountDeletion(t *testing.T) {
	sender := &recordingSender{}
	auth, reset := newResetService(t, sender)
	ctx := context.Background()
	userID := registerTestUser(t, auth, "alice@example.com")

	token, err := reset.Forgot(ctx, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, auth.Store.Users().DeleteUser(ctx, userID))

	err = reset.Reset(ctx, token, "correct-horse-battery")
	require.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestOTPMailMentionsExpiry(t *testing.T) {
	sender := &recordingSender{}
	auth, reset := newResetService(t, sender)
	registerTestUser(t, auth, "alice@example.com")

	_, err := reset.Forgot(context.Background(), "alice@example.com")
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.True(t, strings.Contains(sender.sent[0].HTML, "10"), "mail should state the OTP lifetime")
}
