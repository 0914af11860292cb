package notifier

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// resendNotifier implements Notifier on top of the Resend API.
type resendNotifier struct {
	client *resend.Client
	from   string
	logger zerolog.Logger
}

// NewResend creates a Resend-backed notifier sending from the given address.
func NewResend(apiKey, from string, logger zerolog.Logger) Notifier {
	return &resendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		logger: logger.With().Str("component", "resend-notifier").Logger(),
	}
}

// Send delivers a single email via Resend.
func (n *resendNotifier) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		n.logger.Error().
			Err(err).
			Strs("to", msg.To).
			Str("subject", msg.Subject).
			Msg("failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	n.logger.Info().
		Str("email_id", sent.Id).
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Msg("email sent")

	return nil
}

// noopNotifier discards all messages. Used when no API key is configured.
type noopNotifier struct {
	logger zerolog.Logger
}

// NewNoop creates a notifier that logs and drops every message.
func NewNoop(logger zerolog.Logger) Notifier {
	return &noopNotifier{
		logger: logger.With().Str("component", "noop-notifier").Logger(),
	}
}

func (n *noopNotifier) Send(ctx context.Context, msg Message) error {
	n.logger.Info().
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Msg("email delivery disabled, message dropped")
	return nil
}
