package http

import (
	"errors"
	"net/http"

	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/service"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/httpx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/realtysdk"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"
)

const codeInvalidOTP = "INVALID_OTP"

type VerifyOTPHandler struct {
	ResetService *service.PasswordResetService
}

// ServeHTTP godoc
//
//	@Summary		Verify OTP Endpoint
//	@Description	Check a submitted OTP against the reset token it was issued with. Token
//	@Description	verification failures return the token error's own code and status.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		realtysdk.VerifyOTPRequest	true	"Reset token and OTP"
//	@Success		200		{object}	httpx.Response
//	@Failure		400		{object}	httpx.Response	"INVALID_OTP"
//	@Failure		401		{object}	httpx.Response	"expired or malformed reset token"
//	@Failure		500		{object}	httpx.Response
//	@Router			/v1/auth/verify-otp [post].
func (h *VerifyOTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req realtysdk.VerifyOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ResetToken == "" || req.OTP == "" {
		httpx.WriteError(w, http.StatusBadRequest, "resetToken and otp are required", codeInvalidRequest)
		return
	}

	if err := h.ResetService.VerifyOTP(ctx, req.ResetToken, req.OTP); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOTP):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid OTP", codeInvalidOTP)
		case writeTokenError(w, err):
		default:
			log.Error("otp verification failed", "err", err)
			httpx.WriteInternalError(w)
		}
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "OTP verified successfully", nil)
}
