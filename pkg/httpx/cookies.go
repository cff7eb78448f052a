package httpx

import (
	"net/http"
	"time"
)

// Cookie names used for the browser session.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// DefaultRefreshPath scopes the refresh cookie to the one endpoint that
// needs it, so it rides along on as few requests as possible.
const DefaultRefreshPath = "/v1/auth/refresh"

// CookieConfig controls the attributes of the session cookies.
type CookieConfig struct {
	// Secure marks cookies as HTTPS-only. Leave false only in dev.
	Secure bool

	// RefreshPath is the path the refresh cookie is scoped to.
	// Defaults to DefaultRefreshPath when empty.
	RefreshPath string
}

func (c CookieConfig) refreshPath() string {
	if c.RefreshPath == "" {
		return DefaultRefreshPath
	}
	return c.RefreshPath
}

// SetAccessCookie sets the short-lived access token cookie.
func SetAccessCookie(w http.ResponseWriter, cfg CookieConfig, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// SetRefreshCookie sets the long-lived refresh token cookie, scoped to
// the refresh endpoint.
func SetRefreshCookie(w http.ResponseWriter, cfg CookieConfig, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    token,
		Path:     cfg.refreshPath(),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// SetSessionCookies sets both token cookies in one call, as login does.
func SetSessionCookies(w http.ResponseWriter, cfg CookieConfig, access, refresh string, accessTTL, refreshTTL time.Duration) {
	SetAccessCookie(w, cfg, access, accessTTL)
	SetRefreshCookie(w, cfg, refresh, refreshTTL)
}

// ClearSessionCookies expires both token cookies. Paths must match the
// ones the cookies were set with or browsers keep the old values.
func ClearSessionCookies(w http.ResponseWriter, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteStrictMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    "",
		Path:     cfg.refreshPath(),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}
