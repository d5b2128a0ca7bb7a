package sender

import (
	"context"

	"github.com/hellospace/storefront/internal/domain"
)

// Sender delivers an inquiry to the studio team through a specific channel,
// e.g. email or a helpdesk integration.
type Sender interface {
	Name() string
	Send(ctx context.Context, inquiry *domain.Inquiry) error
}
