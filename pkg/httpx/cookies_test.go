package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/httpx"
)

func cookieByName(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestSetSessionCookies(t *testing.T) {
	rec := httptest.NewRecorder()
	cfg := httpx.CookieConfig{Secure: true}

	httpx.SetSessionCookies(rec, cfg, "acc", "ref", 15*time.Minute, 7*24*time.Hour)

	access := cookieByName(t, rec, httpx.AccessTokenCookie)
	require.Equal(t, "acc", access.Value)
	require.Equal(t, "/", access.Path)
	require.Equal(t, int((15 * time.Minute).Seconds()), access.MaxAge)
	require.True(t, access.HttpOnly)
	require.True(t, access.Secure)
	require.Equal(t, http.SameSiteStrictMode, access.SameSite)

	refresh := cookieByName(t, rec, httpx.RefreshTokenCookie)
	require.Equal(t, "ref", refresh.Value)
	require.Equal(t, httpx.DefaultRefreshPath, refresh.Path)
	require.Equal(t, int((7 * 24 * time.Hour).Seconds()), refresh.MaxAge)
	require.True(t, refresh.HttpOnly)
}

func TestClearSessionCookies(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.ClearSessionCookies(rec, httpx.CookieConfig{})

	access := cookieByName(t, rec, httpx.AccessTokenCookie)
	require.Empty(t, access.Value)
	require.Equal(t, -1, access.MaxAge)

	refresh := cookieByName(t, rec, httpx.RefreshTokenCookie)
	require.Empty(t, refresh.Value)
	require.Equal(t, -1, refresh.MaxAge)
	require.Equal(t, httpx.DefaultRefreshPath, refresh.Path)
}
