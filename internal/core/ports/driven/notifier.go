package driven

import (
	"context"

	"github.com/custodia-labs/mailctl/internal/core/domain"
)

// Notifier receives account lifecycle events. Notification failures are
// never allowed to abort the operation that triggered them.
type Notifier interface {
	// AccountDeleted fires after an account was deleted.
	AccountDeleted(ctx context.Context, account domain.EmailAccount)

	// DefaultChanged fires after the default scenario was reassigned.
	// The account is nil when the default was cleared.
	DefaultChanged(ctx context.Context, account *domain.EmailAccount)
}
