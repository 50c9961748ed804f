package mailer

import (
	"context"
	"log/slog"
	"time"
)

// SimulatedMailer stands in for a real email channel: it logs the fully
// rendered message and waits a configurable delay to mimic network latency.
type SimulatedMailer struct {
	delay  time.Duration
	logger *slog.Logger
}

func NewSimulatedMailer(delay time.Duration, logger *slog.Logger) *SimulatedMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SimulatedMailer{
		delay:  delay,
		logger: logger,
	}
}

func (m *SimulatedMailer) Notify(ctx context.Context, to, subject, body string) error {
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	m.logger.InfoContext(ctx, "email sent",
		"to", to,
		"subject", subject,
		"body", body,
	)
	return nil
}
