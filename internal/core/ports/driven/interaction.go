package driven

import (
	"context"

	"github.com/custodia-labs/mailctl/internal/core/domain"
)

// AccountChooser presents candidate accounts and returns the one picked.
// A nil account with a nil error means the user declined to choose.
// Implementations range from an interactive terminal form to test doubles.
type AccountChooser interface {
	Choose(ctx context.Context, candidates []domain.EmailAccount) (*domain.EmailAccount, error)
}

// ConfirmPrompt asks the user to confirm a destructive operation.
type ConfirmPrompt interface {
	Confirm(ctx context.Context, message string) (bool, error)
}
