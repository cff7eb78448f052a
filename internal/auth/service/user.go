package service

import (
	"context"
	"errors"
	"io"

	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/domain"
	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/storage"
	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/store"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"
)

// avatarFolder is the object-store folder avatar uploads land in.
const avatarFolder = "avatars"

type UserService struct {
	Store   store.Store
	Objects storage.ObjectStore
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// UserExists reports whether a user id still refers to a live account.
// The session middleware uses this as its revocation check.
func (s *UserService) UserExists(ctx context.Context, userID string) (bool, error) {
	_, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// AvatarUpload is an optional avatar file attached to a profile update.
type AvatarUpload struct {
	Filename string
	Content  io.Reader
}

// UpdateProfile applies the provided profile fields and, when an avatar
// is attached, uploads it first and stores the resulting URL.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate, avatar *AvatarUpload) (domain.User, error) {
	if avatar != nil {
		url, err := s.Objects.Upload(ctx, avatarFolder, avatar.Filename, avatar.Content)
		if err != nil {
			return domain.User{}, err
		}
		update.AvatarURL = &url
	}

	if !update.IsEmpty() {
		if err := s.Store.Users().UpdateProfile(ctx, userID, update); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.User{}, ErrUserNotFound
			}
			return domain.User{}, err
		}
	}

	return s.GetUserByID(ctx, userID)
}

// DeleteUser removes an account. Only the account owner may delete it.
func (s *UserService) DeleteUser(ctx context.Context, callerID, targetID string) error {
	if callerID != targetID {
		return ErrNotAuthorized
	}

	if err := s.Store.Users().DeleteUser(ctx, targetID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("user deleted", "user_id", targetID)
	return nil
}
