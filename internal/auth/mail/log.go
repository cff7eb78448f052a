package mail

import (
	"context"

	"github.com/vasupateljsk089-byte/Real-Estate/pkg/idx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"
)

// LogSender writes messages to the log instead of delivering them.
// Used in dev and tests where no SMTP relay is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, msg Message) (string, error) {
	messageID := idx.New().String()
	slogx.FromContext(ctx).Info("mail (not delivered)",
		"to", msg.To,
		"subject", msg.Subject,
		"text", msg.Text,
		"message_id", messageID,
	)
	return messageID, nil
}
