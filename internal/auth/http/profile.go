package http

import (
	"errors"
	"net/http"

	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/domain"
	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/service"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/httpx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/realtysdk"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"
)

// maxAvatarBytes caps the multipart form, avatar file included.
const maxAvatarBytes = 5 << 20

type ProfileHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Update Profile Endpoint
//	@Description	Update profile fields for the authenticated user. Fields absent from the form
//	@Description	keep their stored values. An attached avatar file is placed in object storage
//	@Description	and its URL saved on the profile.
//	@Tags			Users
//	@Accept			mpfd
//	@Produce		json
//	@Param			username	formData	string	false	"Display name"
//	@Param			phone		formData	string	false	"Phone number"
//	@Param			gender		formData	string	false	"Gender"
//	@Param			city		formData	string	false	"City"
//	@Param			avatar		formData	file	false	"Avatar image"
//	@Success		200			{object}	httpx.Response	"data.user"
//	@Failure		400			{object}	httpx.Response
//	@Failure		401			{object}	httpx.Response
//	@Failure		500			{object}	httpx.Response
//	@Router			/v1/users/profile [patch].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)

	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid form data", codeInvalidRequest)
		return
	}

	var update domain.ProfileUpdate
	field := func(name string) *string {
		if vs, ok := r.MultipartForm.Value[name]; ok && len(vs) > 0 {
			return &vs[0]
		}
		return nil
	}
	update.Username = field("username")
	update.Phone = field("phone")
	update.Gender = field("gender")
	update.City = field("city")

	var avatar *service.AvatarUpload
	if file, header, err := r.FormFile("avatar"); err == nil {
		defer file.Close()
		avatar = &service.AvatarUpload{
			Filename: header.Filename,
			Content:  file,
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid avatar upload", codeInvalidRequest)
		return
	}

	user, err := h.UserService.UpdateProfile(ctx, userID, update, avatar)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteError(w, http.StatusUnauthorized, "User not found", httpx.CodeUserNotFound)
			return
		}
		log.Error("profile update failed", "user_id", userID, "err", err)
		httpx.WriteInternalError(w)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "User updated successfully", realtysdk.UserData{
		User: toUserDTO(user),
	})
}
