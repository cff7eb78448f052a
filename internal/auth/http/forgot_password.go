package http

import (
	"errors"
	"net/http"

	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/service"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/httpx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/realtysdk"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"
)

const codeOTPFailed = "OTP_FAILED"

type ForgotPasswordHandler struct {
	ResetService *service.PasswordResetService
}

// ServeHTTP godoc
//
//	@Summary		Forgot Password Endpoint
//	@Description	Start the OTP reset flow. For registered emails an OTP is mailed and the reset
//	@Description	token is returned in data.resetToken. Unregistered emails get the same 200
//	@Description	status so the endpoint cannot be used to probe which accounts exist.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		realtysdk.ForgotPasswordRequest	true	"Account email"
//	@Success		200		{object}	httpx.Response					"data.resetToken when the email is registered"
//	@Failure		400		{object}	httpx.Response
//	@Failure		500		{object}	httpx.Response	"OTP_FAILED when mail delivery fails"
//	@Router			/v1/auth/forgot-password [post].
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req realtysdk.ForgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" {
		httpx.WriteError(w, http.StatusBadRequest, "email is required", codeInvalidRequest)
		return
	}

	token, err := h.ResetService.Forgot(ctx, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrOTPDelivery) {
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to send OTP", codeOTPFailed)
			return
		}
		log.Error("forgot password failed", "err", err)
		httpx.WriteInternalError(w)
		return
	}

	if token == "" {
		httpx.WriteSuccess(w, http.StatusOK, "Please enter registered email address.", nil)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "OTP sent to your email", realtysdk.ForgotPasswordData{
		ResetToken: token,
	})
}
