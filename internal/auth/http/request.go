package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/domain"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/httpx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/jwtx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/realtysdk"
)

// maxBodyBytes caps JSON request bodies. Uploads go through multipart
// parsing with its own limit.
const maxBodyBytes = 1 << 20

const codeInvalidRequest = "INVALID_REQUEST"

// decodeJSON reads a JSON request body into v. On failure it writes the
// 400 response itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body", codeInvalidRequest)
		return false
	}
	return true
}

// writeTokenError maps codec failures onto the response envelope,
// keeping the codec's own code and status. Anything else is treated as
// an internal error.
func writeTokenError(w http.ResponseWriter, err error) bool {
	var te *jwtx.TokenError
	if errors.As(err, &te) {
		httpx.WriteError(w, te.Status(), te.Message, te.Code)
		return true
	}
	return false
}

// toUserDTO strips server-only fields before a user leaves the API.
func toUserDTO(u domain.User) realtysdk.User {
	return realtysdk.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Gender:    u.Gender,
		City:      u.City,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
