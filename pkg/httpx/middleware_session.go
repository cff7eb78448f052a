package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/vasupateljsk089-byte/Real-Estate/pkg/jwtx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"
)

// UserResolver reports whether the subject of a verified token still
// refers to a live account. Tokens are stateless, so this lookup is the
// only revocation mechanism.
type UserResolver interface {
	UserExists(ctx context.Context, userID string) (bool, error)
}

// SessionMiddleware gates protected endpoints on the access token
// cookie. When the access token has expired and a refresh cookie is
// also present, it transparently mints a replacement access token and
// sets it on the response instead of failing.
func SessionMiddleware(codec *jwtx.Codec, users UserResolver, cookies CookieConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cookie, err := r.Cookie(AccessTokenCookie)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "Authentication required", CodeAuthRequired)
				return
			}

			claims, err := codec.Verify(jwtx.KindAccess, cookie.Value)
			if err != nil {
				if !jwtx.IsExpired(err) {
					var te *jwtx.TokenError
					if errors.As(err, &te) {
						WriteError(w, te.Status(), te.Message, te.Code)
					} else {
						log.Error("access token verification failed", "err", err)
						WriteInternalError(w)
					}
					return
				}

				// Expired access token. Fall back to the refresh token
				// when the browser sent one along.
				refreshed, ok := refreshFallback(w, r, codec, users, cookies)
				if !ok {
					return
				}
				claims = refreshed
			}

			exists, err := users.UserExists(ctx, claims.UserID())
			if err != nil {
				log.Error("identity lookup failed", "err", err, "user_id", claims.UserID())
				WriteInternalError(w)
				return
			}
			if !exists {
				WriteError(w, http.StatusUnauthorized, "User not found", CodeUserNotFound)
				return
			}

			ctx = contextWithIdentity(ctx, claims.UserID(), claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// refreshFallback attempts the transparent re-mint. On success it sets
// the replacement access cookie and returns the refresh token's claims.
// On failure it writes the error response and returns ok=false.
func refreshFallback(w http.ResponseWriter, r *http.Request, codec *jwtx.Codec, users UserResolver, cookies CookieConfig) (jwtx.Claims, bool) {
	log := slogx.FromContext(r.Context())

	cookie, err := r.Cookie(RefreshTokenCookie)
	if err != nil {
		// No refresh cookie. Expiry stays visible to clients so they
		// can decide to call the refresh endpoint themselves.
		WriteError(w, http.StatusUnauthorized, "Session expired", jwtx.CodeTokenExpired)
		return jwtx.Claims{}, false
	}

	claims, err := codec.Verify(jwtx.KindRefresh, cookie.Value)
	if err != nil {
		// The refresh token is no good either, so a client-side
		// refresh cannot succeed. Time to log in again.
		WriteError(w, http.StatusUnauthorized, "Session expired", CodeSessionExpired)
		return jwtx.Claims{}, false
	}

	access, err := codec.Issue(jwtx.KindAccess, jwtx.NewSessionClaims(claims.UserID(), claims.Email))
	if err != nil {
		log.Error("access token re-mint failed", "err", err)
		WriteInternalError(w)
		return jwtx.Claims{}, false
	}

	SetAccessCookie(w, cookies, access, codec.TTL(jwtx.KindAccess))
	return claims, true
}
