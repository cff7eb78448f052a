package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/service"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/jwtx"
)

func newAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	return &service.AuthService{
		Store: newTestStore(t),
		Codec: newTestCodec(t),
	}
}

func TestRegister(t *testing.T) {
	auth := newAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "alice", "Alice@Example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	// Emails are normalized on the way in.
	assert.Equal(t, "alice@example.com", user.Email)
	// The plaintext never comes back.
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "taken@example.com", "password123")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "bob", "TAKEN@example.com", "hunter2hunter")
	require.ErrorIs(t, err, service.ErrEmailExists)
}

func TestLogin(t *testing.T) {
	auth := newAuthService(t)
	ctx := context.Background()
	registerTestUser(t, auth, "alice@example.com")

	user, pair, err := auth.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	// Each token verifies only under its own kind.
	claims, err := auth.Codec.Verify(jwtx.KindAccess, pair.Access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID())
	assert.Equal(t, user.Email, claims.Email)

	_, err = auth.Codec.Verify(jwtx.KindAccess, pair.Refresh)
	require.Error(t, err)
}

func TestLoginEnumerationResistance(t *testing.T) {
	auth := newAuthService(t)
	ctx := context.Background()
	registerTestUser(t, auth, "alice@example.com")

	// Wrong password on an existing account and an unknown email must
	// be indistinguishable to the caller.
	_, _, wrongPass := auth.Login(ctx, "alice@example.com", "wrong-password")
	_, _, unknown := auth.Login(ctx, "nobody@example.com", "password123")

	require.ErrorIs(t, wrongPass, service.ErrInvalidCredentials)
	require.ErrorIs(t, unknown, service.ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestRefresh(t *testing.T) {
	auth := newAuthService(t)
	ctx := context.Background()
	registerTestUser(t, auth, "alice@example.com")

	user, pair, err := auth.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)

	access, err := auth.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)

	claims, err := auth.Codec.Verify(jwtx.KindAccess, access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID())
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	auth := newAuthService(t)
	ctx := context.Background()
	registerTestUser(t, auth, "alice@example.com")

	_, pair, err := auth.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = auth.Refresh(ctx, pair.Access)
	var te *jwtx.TokenError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, jwtx.CodeInvalidToken, te.Code)
}

func TestRefreshAfterAccountDeletion(t *testing.T) {
	auth := newAuthService(t)
	ctx := context.Background()
	userID := registerTestUser(t, auth, "alice@example.com")

	_, pair, err := auth.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, auth.Store.Users().DeleteUser(ctx, userID))

	_, err = auth.Refresh(ctx, pair.Refresh)
	require.ErrorIs(t, err, service.ErrUserNotFound)
}
