package driven

import (
	"context"

	"github.com/custodia-labs/mailctl/internal/core/domain"
)

// RateLimitStore persists per-account throttling records. Records are
// keyed by the (account, connector) pair and are deleted in lockstep with
// their account.
type RateLimitStore interface {
	// Save stores or updates a record.
	Save(ctx context.Context, record domain.RateLimitRecord) error

	// Get retrieves the record for an account.
	// Returns domain.ErrNotFound when no record exists.
	Get(ctx context.Context, account domain.AccountRef) (domain.RateLimitRecord, error)

	// Delete removes the record for an account. Deleting an absent record
	// is a no-op.
	Delete(ctx context.Context, account domain.AccountRef) error

	// List returns all stored records.
	List(ctx context.Context) ([]domain.RateLimitRecord, error)
}
