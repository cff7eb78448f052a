package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default lifetimes per kind. Access tokens stay short so a stolen
// cookie ages out quickly; the refresh token carries the real session
// length; reset tokens live just long enough to type in an OTP.
const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
	DefaultResetTTL   = 10 * time.Minute

	// DefaultLeeway absorbs small clock skew between issuer and
	// verifier without weakening expiry checks meaningfully.
	DefaultLeeway = 30 * time.Second
)

// Config carries the per-kind signing secrets and lifetimes. All three
// secrets are required; TTLs and Leeway fall back to the defaults when
// zero.
type Config struct {
	Issuer string

	AccessSecret  string
	RefreshSecret string
	ResetSecret   string

	AccessTTL  time.Duration
	RefreshTTL time.Duration
	ResetTTL   time.Duration

	Leeway time.Duration
}

// Codec signs and verifies tokens with a distinct HMAC-SHA256 secret
// per kind. A Codec is safe for concurrent use.
type Codec struct {
	issuer  string
	secrets map[Kind][]byte
	ttls    map[Kind]time.Duration
	leeway  time.Duration
}

// NewCodec validates the config and builds a Codec. A missing secret is
// a startup error, never a runtime fallback.
func NewCodec(cfg Config) (*Codec, error) {
	secrets := map[Kind]string{
		KindAccess:  cfg.AccessSecret,
		KindRefresh: cfg.RefreshSecret,
		KindReset:   cfg.ResetSecret,
	}
	c := &Codec{
		issuer:  cfg.Issuer,
		secrets: make(map[Kind][]byte, len(secrets)),
		ttls: map[Kind]time.Duration{
			KindAccess:  cfg.AccessTTL,
			KindRefresh: cfg.RefreshTTL,
			KindReset:   cfg.ResetTTL,
		},
		leeway: cfg.Leeway,
	}
	for _, kind := range []Kind{KindAccess, KindRefresh, KindReset} {
		if secrets[kind] == "" {
			return nil, fmt.Errorf("jwtx: missing %s secret", kind)
		}
		c.secrets[kind] = []byte(secrets[kind])
	}
	if c.ttls[KindAccess] <= 0 {
		c.ttls[KindAccess] = DefaultAccessTTL
	}
	if c.ttls[KindRefresh] <= 0 {
		c.ttls[KindRefresh] = DefaultRefreshTTL
	}
	if c.ttls[KindReset] <= 0 {
		c.ttls[KindReset] = DefaultResetTTL
	}
	if c.leeway <= 0 {
		c.leeway = DefaultLeeway
	}
	return c, nil
}

// TTL returns the configured lifetime for a kind.
func (c *Codec) TTL(kind Kind) time.Duration {
	return c.ttls[kind]
}

// Issue stamps the registered claims and signs the token with the
// kind's secret.
func (c *Codec) Issue(kind Kind, claims Claims) (string, error) {
	secret, ok := c.secrets[kind]
	if !ok {
		return "", fmt.Errorf("jwtx: unknown token kind %q", kind)
	}

	now := time.Now().UTC()
	claims.Issuer = c.issuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.NotBefore = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.ttls[kind]))
	claims.ID = newJTI()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign %s token: %w", kind, err)
	}
	return signed, nil
}

// Verify parses and validates a token against the kind's secret and
// returns its claims. Failures come back as a *TokenError carrying a
// stable code.
func (c *Codec) Verify(kind Kind, token string) (Claims, error) {
	secret, ok := c.secrets[kind]
	if !ok {
		return Claims{}, fmt.Errorf("jwtx: unknown token kind %q", kind)
	}

	var claims Claims
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(c.leeway),
		jwt.WithExpirationRequired(),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		return Claims{}, classify(kind, err)
	}
	if !parsed.Valid {
		return Claims{}, invalidError(kind)
	}
	return claims, nil
}

// classify maps parser errors to stable codes. Expiry is kept distinct
// from everything else so only genuinely stale tokens trigger refresh.
func classify(kind Kind, err error) *TokenError {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return expiredError(kind)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return notActiveError(kind)
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrTokenInvalidClaims):
		return invalidError(kind)
	default:
		return verifyError(kind)
	}
}

// newJTI returns a random token ID so otherwise identical tokens never
// collide.
func newJTI() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken.
		panic(fmt.Sprintf("jwtx: rand: %v", err))
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
