package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/custodia-labs/mailctl/internal/core/domain"
	"github.com/custodia-labs/mailctl/internal/logger"
)

// terminalChooser presents a selection form for picking an account.
type terminalChooser struct{}

// Choose asks the user to pick one of the candidates. Returns nil when
// the user declines (escape / ctrl-c), which callers treat as "keep none".
func (t *terminalChooser) Choose(ctx context.Context, candidates []domain.EmailAccount) (*domain.EmailAccount, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[int], 0, len(candidates)+1)
	for i := range candidates {
		label := fmt.Sprintf("%s <%s> [%s]", candidates[i].DisplayName, candidates[i].EmailAddress, candidates[i].Connector)
		options = append(options, huh.NewOption(label, i))
	}
	options = append(options, huh.NewOption("None (clear the default)", -1))

	var picked int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Select the new default account").
			Options(options...).
			Value(&picked),
	))

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}
	if picked < 0 {
		return nil, nil
	}
	return &candidates[picked], nil
}

// terminalConfirm asks a yes/no question before destructive operations.
type terminalConfirm struct{}

func (t *terminalConfirm) Confirm(ctx context.Context, message string) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	))

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

// logNotifier reports lifecycle events through the application logger.
type logNotifier struct{}

func (n *logNotifier) AccountDeleted(_ context.Context, account domain.EmailAccount) {
	logger.Info("Deleted account %s (%s) from connector %s", account.ID, account.EmailAddress, account.Connector)
}

func (n *logNotifier) DefaultChanged(_ context.Context, account *domain.EmailAccount) {
	if account == nil {
		logger.Info("Default account cleared")
		return
	}
	logger.Info("Default account is now %s (%s)", account.ID, account.EmailAddress)
}
