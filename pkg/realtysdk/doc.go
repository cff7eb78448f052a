/*
Package realtysdk provides a client SDK for the real estate authentication service.

# Overview

The service authenticates browsers and programs with HTTP-only cookies carrying
signed tokens, so the SDK keeps its tokens in a cookie jar rather than in
Authorization headers. The package is organized around two main types:

  - Client: unauthenticated operations and the entry points that create sessions
  - Session: authenticated operations with transparent token refresh

Create a Client to register accounts, run the password reset flow or log in:

	client := realtysdk.NewClient("https://api.example.com")

	_, err := client.Register(ctx, realtysdk.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})

	session, err := client.Login(ctx, "alice@example.com", "secret")

Use the Session for authenticated operations:

	user, err := session.Me(ctx)

# Token refresh

Access tokens are short-lived. When an authenticated request fails with the
TOKEN_EXPIRED code, the session asks its RefreshCoordinator for a fresh access
token and retries the request exactly once. The coordinator collapses
concurrent refresh attempts into a single HTTP call; every caller waiting on
that call shares its outcome, success or failure. A refresh that fails yields
ErrSessionExpired, at which point the user must log in again.

The coordinator is a plain field on Client, so programs with special needs can
swap in their own instance or tune the refresh timeout.
*/
package realtysdk
