package jwtx

// Kind selects which secret and lifetime a token is issued and verified
// against. Tokens of one kind never verify under another kind's secret.
type Kind string

const (
	// KindAccess is the short-lived session token carried in the
	// accessToken cookie and checked on every authenticated request.
	KindAccess Kind = "access"

	// KindRefresh is the long-lived token used only to mint a fresh
	// access token. It is scoped to the refresh endpoint by cookie path.
	KindRefresh Kind = "refresh"

	// KindReset is the short-lived password reset token carrying the
	// one-time code sent by email.
	KindReset Kind = "reset"
)

func (k Kind) String() string { return string(k) }

// label is the human-readable form used in error messages.
func (k Kind) label() string {
	return string(k) + " token"
}
