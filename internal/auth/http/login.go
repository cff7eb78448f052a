package http

import (
	"errors"
	"net/http"

	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/service"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/httpx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/jwtx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/realtysdk"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"
)

const codeInvalidCredentials = "INVALID_CREDENTIALS"

type LoginHandler struct {
	AuthService *service.AuthService
	Codec       *jwtx.Codec
	Cookies     httpx.CookieConfig
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Verify credentials and start a cookie session. Both token cookies are HTTP-only;
//	@Description	the response body carries the sanitized user.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		realtysdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	httpx.Response			"data.user"
//	@Failure		400		{object}	httpx.Response			"INVALID_CREDENTIALS"
//	@Failure		500		{object}	httpx.Response
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req realtysdk.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "email and password are required", codeInvalidRequest)
		return
	}

	user, pair, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Unknown email and wrong password share one message and
			// one code.
			httpx.WriteError(w, http.StatusBadRequest, "Invalid email or password", codeInvalidCredentials)
			return
		}
		log.Error("login failed", "err", err)
		httpx.WriteInternalError(w)
		return
	}

	httpx.SetSessionCookies(w, h.Cookies, pair.Access, pair.Refresh,
		h.Codec.TTL(jwtx.KindAccess), h.Codec.TTL(jwtx.KindRefresh))

	httpx.WriteSuccess(w, http.StatusOK, "Login successful", realtysdk.UserData{
		User: toUserDTO(user),
	})
}
