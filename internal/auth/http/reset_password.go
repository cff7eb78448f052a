package http

import (
	"errors"
	"net/http"

	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/service"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/httpx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/realtysdk"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"
)

type ResetPasswordHandler struct {
	ResetService *service.PasswordResetService
}

// ServeHTTP godoc
//
//	@Summary		Reset Password Endpoint
//	@Description	Overwrite the password for the account named in the reset token. Clients call
//	@Description	this after verify-otp; the token is fully re-verified here.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		realtysdk.ResetPasswordRequest	true	"Reset token and new password"
//	@Success		200		{object}	httpx.Response
//	@Failure		400		{object}	httpx.Response	"INVALID_REQUEST when the account no longer exists"
//	@Failure		401		{object}	httpx.Response	"expired or malformed reset token"
//	@Failure		500		{object}	httpx.Response
//	@Router			/v1/auth/reset-password [post].
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req realtysdk.ResetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ResetToken == "" || req.NewPassword == "" {
		httpx.WriteError(w, http.StatusBadRequest, "resetToken and newPassword are required", codeInvalidRequest)
		return
	}

	if err := h.ResetService.Reset(ctx, req.ResetToken, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid request", codeInvalidRequest)
		case writeTokenError(w, err):
		default:
			log.Error("password reset failed", "err", err)
			httpx.WriteInternalError(w)
		}
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Password reset successfully", nil)
}
