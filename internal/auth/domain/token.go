package domain

// TokenPair is the cookie-delivered session credential set minted at
// login.
type TokenPair struct {
	Access  string
	Refresh string
}
