package email

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Sender provides a testable abstraction over SES delivery. The core roster
// and league logic never sends mail; only staff invitations go through here.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// LogSender is the fallback when no SES sender is configured: delivery is
// logged and dropped. Development and test environments run with this.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, recipient, subject, body string) error {
	log.Ctx(ctx).Info().
		Str("recipient", recipient).
		Str("subject", subject).
		Msg("Email delivery skipped (no sender configured)")
	return nil
}
