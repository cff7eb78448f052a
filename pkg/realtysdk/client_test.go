package realtysdk_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/realtysdk"
)

// fakeAuthServer mimics the service's cookie session behavior: /me only
// succeeds while the access cookie holds the current token value, and
// /refresh rotates that value.
type fakeAuthServer struct {
	mu           sync.Mutex
	accessValue  string
	refreshOK    bool
	refreshCalls atomic.Int32

	server *httptest.Server
}

func newFakeAuthServer(t *testing.T) *fakeAuthServer {
	t.Helper()
	f := &fakeAuthServer{refreshOK: true}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.accessValue = "access-1"
		f.mu.Unlock()

		http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: "access-1", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "refreshToken", Value: "refresh-1", Path: "/v1/auth/refresh"})
		writeEnvelope(w, http.StatusOK, realtysdk.Envelope{
			Success: true,
			Message: "Login successful",
			Data:    json.RawMessage(`{"user":{"id":"user-1","username":"alice","email":"alice@example.com"}}`),
		})
	})
	mux.HandleFunc("POST /v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		f.refreshCalls.Add(1)
		time.Sleep(50 * time.Millisecond)

		if _, err := r.Cookie("refreshToken"); err != nil || !f.refreshOK {
			writeEnvelope(w, http.StatusUnauthorized, realtysdk.Envelope{
				Message: "Refresh token expired",
				Code:    realtysdk.ErrorCodeRefreshTokenExpired,
			})
			return
		}

		f.mu.Lock()
		f.accessValue = "access-2"
		f.mu.Unlock()

		http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: "access-2", Path: "/"})
		writeEnvelope(w, http.StatusOK, realtysdk.Envelope{Success: true, Message: "Token refreshed successfully"})
	})
	mux.HandleFunc("GET /v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		current := f.accessValue
		f.mu.Unlock()

		cookie, err := r.Cookie("accessToken")
		if err != nil || cookie.Value != current {
			writeEnvelope(w, http.StatusUnauthorized, realtysdk.Envelope{
				Message: "Session expired",
				Code:    realtysdk.ErrorCodeTokenExpired,
			})
			return
		}
		writeEnvelope(w, http.StatusOK, realtysdk.Envelope{
			Success: true,
			Message: "User fetched successfully",
			Data:    json.RawMessage(`{"user":{"id":"user-1","username":"alice","email":"alice@example.com"}}`),
		})
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

// expireAccess invalidates the current access token, as time passing
// would.
func (f *fakeAuthServer) expireAccess() {
	f.mu.Lock()
	f.accessValue = "access-expired"
	f.mu.Unlock()
}

func writeEnvelope(w http.ResponseWriter, status int, env realtysdk.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func TestLoginAndMe(t *testing.T) {
	fake := newFakeAuthServer(t)
	client := realtysdk.NewClient(fake.server.URL)

	session, err := client.Login(t.Context(), "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.User().ID)

	user, err := session.Me(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, int32(0), fake.refreshCalls.Load(), "a valid token must not trigger refresh")
}

func TestTransportRefreshesExpiredTokenOnce(t *testing.T) {
	fake := newFakeAuthServer(t)
	client := realtysdk.NewClient(fake.server.URL)

	session, err := client.Login(t.Context(), "alice@example.com", "password123")
	require.NoError(t, err)

	fake.expireAccess()

	user, err := session.Me(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, int32(1), fake.refreshCalls.Load())
}

func TestConcurrentRequestsShareOneRefresh(t *testing.T) {
	fake := newFakeAuthServer(t)
	client := realtysdk.NewClient(fake.server.URL)

	session, err := client.Login(t.Context(), "alice@example.com", "password123")
	require.NoError(t, err)

	fake.expireAccess()

	// Three requests hit the expired token at the same time. The
	// coordinator must collapse their refreshes into one call.
	const workers = 3
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = session.Me(t.Context())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), fake.refreshCalls.Load())
}

func TestFailedRefreshYieldsSessionExpired(t *testing.T) {
	fake := newFakeAuthServer(t)
	client := realtysdk.NewClient(fake.server.URL)

	session, err := client.Login(t.Context(), "alice@example.com", "password123")
	require.NoError(t, err)

	fake.expireAccess()
	fake.refreshOK = false

	_, err = session.Me(t.Context())
	assert.ErrorIs(t, err, realtysdk.ErrSessionExpired)
}

func TestNonExpiryErrorsBypassRefresh(t *testing.T) {
	fake := newFakeAuthServer(t)
	client := realtysdk.NewClient(fake.server.URL)

	_, err := client.Login(t.Context(), "alice@example.com", "password123")
	require.NoError(t, err)

	// A failure without the TOKEN_EXPIRED code must surface as an
	// APIError and leave the refresh path alone.
	_, err = client.ForgotPassword(t.Context(), "alice@example.com")
	var apiErr *realtysdk.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, int32(0), fake.refreshCalls.Load())
}
