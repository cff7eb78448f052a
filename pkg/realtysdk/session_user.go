package realtysdk

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
)

// Me returns the current account state.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, body, err := s.doAuth(ctx, http.MethodGet, "/v1/auth/me", "", nil)
	if err != nil {
		return nil, err
	}

	var data UserData
	if err := decodeData(resp, body, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// UpdateProfile applies the provided profile fields and returns the
// updated account.
func (s *Session) UpdateProfile(ctx context.Context, params ProfileUpdateParams) (*User, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	fields := map[string]*string{
		"username": params.Username,
		"phone":    params.Phone,
		"gender":   params.Gender,
		"city":     params.City,
	}
	for name, value := range fields {
		if value == nil {
			continue
		}
		if err := form.WriteField(name, *value); err != nil {
			return nil, fmt.Errorf("failed to build form: %w", err)
		}
	}

	if len(params.Avatar) > 0 {
		filename := params.AvatarFilename
		if filename == "" {
			filename = "avatar"
		}
		part, err := form.CreateFormFile("avatar", filename)
		if err != nil {
			return nil, fmt.Errorf("failed to build form: %w", err)
		}
		if _, err := part.Write(params.Avatar); err != nil {
			return nil, fmt.Errorf("failed to build form: %w", err)
		}
	}

	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}

	resp, body, err := s.doAuth(ctx, http.MethodPatch, "/v1/users/profile", form.FormDataContentType(), buf.Bytes())
	if err != nil {
		return nil, err
	}

	var data UserData
	if err := decodeData(resp, body, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// DeleteAccount permanently deletes the authenticated account and ends
// the session.
func (s *Session) DeleteAccount(ctx context.Context) error {
	resp, body, err := s.doAuth(ctx, http.MethodDelete, "/v1/users/"+s.user.ID, "", nil)
	if err != nil {
		return err
	}
	return decodeData(resp, body, nil)
}

// Logout clears the session cookies server-side. The Session must not
// be used afterwards.
func (s *Session) Logout(ctx context.Context) error {
	resp, body, err := s.client.doJSON(ctx, http.MethodPost, "/v1/auth/logout", nil)
	if err != nil {
		return err
	}
	return decodeData(resp, body, nil)
}
