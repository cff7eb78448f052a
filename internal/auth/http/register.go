package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/service"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/httpx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/realtysdk"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"
)

const codeEmailExists = "EMAIL_EXISTS"

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new user account. Registration does not start a session; clients log in afterwards.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		realtysdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	httpx.Response				"data.user"
//	@Failure		400		{object}	httpx.Response				"EMAIL_EXISTS or INVALID_REQUEST"
//	@Failure		500		{object}	httpx.Response
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req realtysdk.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "username, email and password are required", codeInvalidRequest)
		return
	}

	user, err := h.AuthService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			httpx.WriteError(w, http.StatusBadRequest, "Email already exists", codeEmailExists)
			return
		}
		log.Error("registration failed", "err", err)
		httpx.WriteInternalError(w)
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, "Registration successful", realtysdk.UserData{
		User: toUserDTO(user),
	})
}
