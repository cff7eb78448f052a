// Package mail sends transactional email. The only message the auth
// service sends today is the password reset OTP.
package mail

import (
	"context"
	"errors"
)

// ErrSendFailed wraps any transport-level delivery failure. Callers
// must not surface the underlying cause to end users.
var ErrSendFailed = errors.New("mail: send failed")

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a message and returns a provider message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
