package realtysdk

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client is a client for the real estate authentication service.
// It provides access to unauthenticated operations and can create
// authenticated Sessions.
//
// The zero value is not usable; construct with NewClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Refresh coordinates access token refreshes for every Session
	// created from this client. Replace it before first use to inject
	// custom refresh behavior.
	Refresh *RefreshCoordinator
}

// NewClient creates a new service client. The underlying http.Client
// carries a cookie jar, since the service delivers tokens as HTTP-only
// cookies.
func NewClient(baseURL string) *Client {
	jar, err := cookiejar.New(nil)
	if err != nil {
		// cookiejar.New never fails with nil options
		panic(err)
	}

	c := &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}
	c.Refresh = NewRefreshCoordinator(c.refreshTokens)
	return c
}

// refreshTokens performs the actual refresh call. The refresh cookie in
// the jar authenticates it; on success the server replaces the access
// cookie in the same jar.
func (c *Client) refreshTokens(ctx context.Context) error {
	resp, body, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/refresh", nil)
	if err != nil {
		return err
	}
	if err := parseErrorResponse(resp, body); err != nil {
		return ErrSessionExpired
	}
	return nil
}
