package realtysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Session represents an authenticated cookie session. The tokens live
// in the client's cookie jar; the Session only adds the authenticated
// call surface and the refresh-and-retry transport.
type Session struct {
	client *Client
	user   User
}

// User returns the account snapshot captured at login. Me fetches the
// current server-side state.
func (s *Session) User() User {
	return s.user
}

// doAuth performs an authenticated request. When the server answers
// 401 with the TOKEN_EXPIRED code the access token ran out; the
// session refreshes through the shared coordinator and retries the
// request exactly once. Every other failure is returned as-is, so a
// revoked session or a permission problem never triggers refresh
// traffic.
func (s *Session) doAuth(ctx context.Context, method, path, contentType string, body []byte) (*http.Response, []byte, error) {
	resp, respBody, err := s.attempt(ctx, method, path, contentType, body)
	if err != nil {
		return nil, nil, err
	}

	if !tokenExpired(resp, respBody) {
		return resp, respBody, nil
	}

	if err := s.client.Refresh.EnsureFresh(ctx); err != nil {
		return nil, nil, err
	}
	return s.attempt(ctx, method, path, contentType, body)
}

// attempt sends the request once. body is kept as bytes so the retry
// can replay it.
func (s *Session) attempt(ctx context.Context, method, path, contentType string, body []byte) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp, respBody, nil
}

// tokenExpired reports whether the response is the server's signal
// that the access token ran out but a refresh may still rescue the
// session.
func tokenExpired(resp *http.Response, body []byte) bool {
	if resp.StatusCode != http.StatusUnauthorized {
		return false
	}
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return false
	}
	return env.Code == ErrorCodeTokenExpired
}
