package mock

import (
	"context"
	"log/slog"
	"time"

	"github.com/hellospace/storefront/internal/domain"
)

// Sender logs inquiries and always succeeds. It simulates a 10ms delay to
// mimic real delivery latency.
type Sender struct {
	channel string
	logger  *slog.Logger
}

// NewSender creates a mock sender for the given channel.
func NewSender(channel string, logger *slog.Logger) *Sender {
	return &Sender{channel: channel, logger: logger}
}

// Name returns the name of this sender.
func (s *Sender) Name() string {
	return "mock-" + s.channel
}

// Send logs the inquiry and simulates delivery latency.
func (s *Sender) Send(ctx context.Context, inquiry *domain.Inquiry) error {
	time.Sleep(10 * time.Millisecond)

	s.logger.InfoContext(ctx, "mock sender: inquiry delivered",
		slog.String("inquiry_id", inquiry.ID),
		slog.String("type", inquiry.Type),
		slog.String("email", inquiry.Email),
		slog.String("channel", s.channel),
	)

	return nil
}
