package http

import (
	"net/http"

	"github.com/vasupateljsk089-byte/Real-Estate/pkg/httpx"
)

type LogoutHandler struct {
	Cookies httpx.CookieConfig
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	Clear both session cookies. Tokens are stateless so there is nothing to revoke
//	@Description	server-side; the endpoint succeeds even without a session.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	httpx.Response
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.ClearSessionCookies(w, h.Cookies)
	httpx.WriteSuccess(w, http.StatusOK, "Logout successful", nil)
}
