package http

import (
	"errors"
	"net/http"

	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/service"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/httpx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"
)

const codeNotAuthorized = "NOT_AUTHORIZED"

type UserDeleteHandler struct {
	UserService *service.UserService
	Cookies     httpx.CookieConfig
}

// ServeHTTP godoc
//
//	@Summary		Delete Account Endpoint
//	@Description	Delete a user account. Only the account owner may delete it; the session
//	@Description	cookies are cleared on success.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	httpx.Response
//	@Failure		401	{object}	httpx.Response
//	@Failure		403	{object}	httpx.Response	"NOT_AUTHORIZED"
//	@Failure		500	{object}	httpx.Response
//	@Router			/v1/users/{id} [delete].
func (h *UserDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	callerID := httpx.UserIDFromContext(ctx)
	targetID := r.PathValue("id")

	if err := h.UserService.DeleteUser(ctx, callerID, targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthorized):
			httpx.WriteError(w, http.StatusForbidden, "Not authorized to perform this action", codeNotAuthorized)
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusUnauthorized, "User not found", httpx.CodeUserNotFound)
		default:
			log.Error("account deletion failed", "user_id", targetID, "err", err)
			httpx.WriteInternalError(w)
		}
		return
	}

	// The account is gone, so the session cookies are dead weight.
	httpx.ClearSessionCookies(w, h.Cookies)
	httpx.WriteSuccess(w, http.StatusOK, "User deleted successfully", nil)
}
