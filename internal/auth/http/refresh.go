package http

import (
	"errors"
	"net/http"

	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/service"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/httpx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/jwtx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"
)

const (
	codeRefreshTokenMissing = "REFRESH_TOKEN_MISSING"
	codeRefreshTokenExpired = "REFRESH_TOKEN_EXPIRED"
	codeInvalidRefreshToken = "INVALID_REFRESH_TOKEN"
)

type RefreshHandler struct {
	AuthService *service.AuthService
	Codec       *jwtx.Codec
	Cookies     httpx.CookieConfig
}

// ServeHTTP godoc
//
//	@Summary		Refresh Endpoint
//	@Description	Mint a fresh access token from the refresh cookie. The refresh cookie is
//	@Description	path-scoped to this endpoint so browsers only send it here.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	httpx.Response
//	@Failure		401	{object}	httpx.Response	"REFRESH_TOKEN_MISSING, REFRESH_TOKEN_EXPIRED, INVALID_REFRESH_TOKEN or USER_NOT_FOUND"
//	@Failure		500	{object}	httpx.Response
//	@Router			/v1/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cookie, err := r.Cookie(httpx.RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Refresh token missing", codeRefreshTokenMissing)
		return
	}

	access, err := h.AuthService.Refresh(ctx, cookie.Value)
	if err != nil {
		var te *jwtx.TokenError
		switch {
		case jwtx.IsExpired(err):
			httpx.WriteError(w, http.StatusUnauthorized, "Refresh token expired", codeRefreshTokenExpired)
		case errors.As(err, &te):
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid refresh token", codeInvalidRefreshToken)
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusUnauthorized, "User not found", httpx.CodeUserNotFound)
		default:
			log.Error("token refresh failed", "err", err)
			httpx.WriteInternalError(w)
		}
		return
	}

	httpx.SetAccessCookie(w, h.Cookies, access, h.Codec.TTL(jwtx.KindAccess))
	httpx.WriteSuccess(w, http.StatusOK, "Token refreshed successfully", nil)
}
