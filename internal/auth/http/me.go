package http

import (
	"net/http"

	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/service"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/httpx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/realtysdk"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"
)

type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Current User Endpoint
//	@Description	Return the authenticated user's profile. Requires the session cookie; the
//	@Description	middleware transparently re-mints an expired access token when the refresh
//	@Description	cookie accompanies the request.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	httpx.Response	"data.user"
//	@Failure		401	{object}	httpx.Response
//	@Failure		500	{object}	httpx.Response
//	@Router			/v1/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		// The middleware already confirmed the account exists, so any
		// failure here is a server problem.
		log.Error("failed to load user", "user_id", userID, "err", err)
		httpx.WriteInternalError(w)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "User fetched successfully", realtysdk.UserData{
		User: toUserDTO(user),
	})
}
