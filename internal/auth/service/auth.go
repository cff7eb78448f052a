package service

import (
	"context"
	"errors"
	"strings"

	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/domain"
	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/store"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/cryptox"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/idx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/jwtx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"
)

// AuthService owns registration, login and the refresh grant.
type AuthService struct {
	Store store.Store
	Codec *jwtx.Codec
}

// Register creates a new identity with a hashed password. No session is
// issued; the caller logs in separately.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	email = normalizeEmail(email)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     strings.TrimSpace(username),
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailExists
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies the password and mints the session token pair. Unknown
// email and wrong password both come back as ErrInvalidCredentials so
// responses never reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, domain.TokenPair, error) {
	email = normalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.TokenPair{}, ErrInvalidCredentials
		}
		return domain.User{}, domain.TokenPair{}, err
	}

	if cryptox.VerifyPassword(password, user.PasswordHash) != nil {
		return domain.User{}, domain.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.mintPair(user)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	slogx.FromContext(ctx).Info("user logged in", "user_id", user.ID)
	return user, pair, nil
}

// Refresh validates a refresh token and mints a replacement access
// token. Token verification failures bubble up as *jwtx.TokenError for
// the handler to classify.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.Codec.Verify(jwtx.KindRefresh, refreshToken)
	if err != nil {
		return "", err
	}

	// Re-resolve the identity: deleted accounts must not keep minting
	// access tokens off an old refresh token.
	user, err := s.Store.Users().GetUserByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	return s.Codec.Issue(jwtx.KindAccess, jwtx.NewSessionClaims(user.ID, user.Email))
}

func (s *AuthService) mintPair(user domain.User) (domain.TokenPair, error) {
	claims := jwtx.NewSessionClaims(user.ID, user.Email)

	access, err := s.Codec.Issue(jwtx.KindAccess, claims)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.Codec.Issue(jwtx.KindRefresh, claims)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{Access: access, Refresh: refresh}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
