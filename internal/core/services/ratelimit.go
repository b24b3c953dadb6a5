package services

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/mailctl/internal/core/domain"
	"github.com/custodia-labs/mailctl/internal/core/ports/driven"
	"github.com/custodia-labs/mailctl/internal/logger"
)

// RateLimitTracker throttles per-account API traffic using the stored
// rate-limit records. Limiters are built lazily from the store and cached;
// accounts without a record are not throttled.
type RateLimitTracker struct {
	store driven.RateLimitStore

	mu       sync.Mutex
	limiters map[domain.AccountRef]*rate.Limiter
}

// NewRateLimitTracker creates a tracker backed by the given store.
func NewRateLimitTracker(store driven.RateLimitStore) *RateLimitTracker {
	return &RateLimitTracker{
		store:    store,
		limiters: make(map[domain.AccountRef]*rate.Limiter),
	}
}

// Wait blocks until a request on behalf of the account is allowed.
// Returns immediately when the account has no rate-limit record.
func (t *RateLimitTracker) Wait(ctx context.Context, account domain.AccountRef) error {
	limiter, err := t.limiter(ctx, account)
	if err != nil {
		return err
	}
	if limiter == nil {
		return nil
	}
	return limiter.Wait(ctx)
}

// Configure stores a throttling record for an account and resets any
// cached limiter so the new rate takes effect on the next request.
func (t *RateLimitTracker) Configure(ctx context.Context, record domain.RateLimitRecord) error {
	if record.Account.IsZero() || record.RequestsPerSecond <= 0 {
		return domain.ErrInvalidInput
	}
	if t.store == nil {
		return domain.ErrNotImplemented
	}
	if err := t.store.Save(ctx, record); err != nil {
		return err
	}
	t.mu.Lock()
	delete(t.limiters, record.Account)
	t.mu.Unlock()
	return nil
}

// Forget removes the account's record and cached limiter. Called in
// lockstep with account deletion; forgetting an untracked account is a
// no-op.
func (t *RateLimitTracker) Forget(ctx context.Context, account domain.AccountRef) error {
	t.mu.Lock()
	delete(t.limiters, account)
	t.mu.Unlock()
	if t.store == nil {
		return nil
	}
	return t.store.Delete(ctx, account)
}

func (t *RateLimitTracker) limiter(ctx context.Context, account domain.AccountRef) (*rate.Limiter, error) {
	t.mu.Lock()
	if limiter, ok := t.limiters[account]; ok {
		t.mu.Unlock()
		return limiter, nil
	}
	t.mu.Unlock()

	if t.store == nil {
		return nil, nil
	}
	record, err := t.store.Get(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	burst := record.Burst
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(record.RequestsPerSecond), burst)
	logger.Debug("rate limiter for %s/%s: %.2f req/s burst %d",
		account.Connector, account.AccountID, record.RequestsPerSecond, burst)

	t.mu.Lock()
	t.limiters[account] = limiter
	t.mu.Unlock()
	return limiter, nil
}
