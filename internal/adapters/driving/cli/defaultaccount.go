package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mailctl/internal/core/domain"
)

var defaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Manage the default account",
	Long: `Show, set, clear, or repair scenario account assignments. Without
--scenario the commands operate on the "default" scenario.`,
	RunE: runDefaultShow,
}

var defaultShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current default account",
	RunE:  runDefaultShow,
}

var defaultSetCmd = &cobra.Command{
	Use:   "set [connector] [account-id]",
	Short: "Set the default account",
	Long: `Binds an account to the default scenario, replacing any prior
binding. Requires the admin role.`,
	Args: cobra.ExactArgs(2),
	RunE: runDefaultSet,
}

var defaultClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the default account",
	RunE:  runDefaultClear,
}

var defaultRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair a dangling default assignment",
	Long: `Checks the default assignment against the live account listing and
repairs it: a sole remaining account is promoted, otherwise a selection
is offered unless --no-prompt is given, in which case a dangling default
is cleared.`,
	RunE: runDefaultRepair,
}

var (
	defaultScenario string
	repairNoPrompt  bool
)

func init() {
	defaultCmd.PersistentFlags().StringVar(&defaultScenario, "scenario", string(domain.ScenarioDefault), "Scenario to operate on")
	defaultRepairCmd.Flags().BoolVar(&repairNoPrompt, "no-prompt", false, "Clear a dangling default instead of prompting")

	defaultCmd.AddCommand(defaultShowCmd)
	defaultCmd.AddCommand(defaultSetCmd)
	defaultCmd.AddCommand(defaultClearCmd)
	defaultCmd.AddCommand(defaultRepairCmd)
	rootCmd.AddCommand(defaultCmd)
}

func runDefaultShow(cmd *cobra.Command, _ []string) error {
	if defaultManager == nil {
		return errors.New("default account manager not configured")
	}

	ctx := context.Background()
	scenario := domain.Scenario(defaultScenario)

	account, err := defaultManager.ScenarioAccount(ctx, scenario)
	if err != nil {
		return fmt.Errorf("failed to resolve scenario %q: %w", scenario, err)
	}

	if account == nil {
		cmd.Printf("No account assigned for scenario %q.\n", scenario)
		return nil
	}

	cmd.Printf("Scenario %q: %s <%s> [%s]\n", scenario, account.DisplayName, account.EmailAddress, account.Connector)
	return nil
}

func runDefaultSet(cmd *cobra.Command, args []string) error {
	if defaultManager == nil || accountDirectory == nil {
		return errors.New("default account manager not configured")
	}

	ctx := context.Background()
	connector := domain.ConnectorID(strings.ToLower(args[0]))
	accountID := args[1]
	scenario := domain.Scenario(defaultScenario)

	accounts, err := accountDirectory.ListAllAccounts(ctx, false)
	if err != nil && len(accounts) == 0 {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	var account *domain.EmailAccount
	for i := range accounts {
		if accounts[i].ID == accountID && accounts[i].Connector == connector {
			account = &accounts[i]
			break
		}
	}
	if account == nil {
		return fmt.Errorf("no account %s on connector %s", accountID, connector)
	}

	if scenario == domain.ScenarioDefault {
		err = defaultManager.MakeDefault(ctx, principal, *account)
	} else {
		err = defaultManager.Assign(ctx, principal, scenario, *account)
	}
	if err != nil {
		if errors.Is(err, domain.ErrPermissionDenied) {
			return fmt.Errorf("assigning accounts requires the admin role: %w", err)
		}
		return fmt.Errorf("failed to assign account: %w", err)
	}

	cmd.Printf("Scenario %q now assigned to %s <%s>\n", scenario, account.DisplayName, account.EmailAddress)
	return nil
}

func runDefaultClear(cmd *cobra.Command, _ []string) error {
	if defaultManager == nil {
		return errors.New("default account manager not configured")
	}

	scenario := domain.Scenario(defaultScenario)
	if err := defaultManager.ClearScenario(context.Background(), principal, scenario); err != nil {
		if errors.Is(err, domain.ErrPermissionDenied) {
			return fmt.Errorf("clearing assignments requires the admin role: %w", err)
		}
		return fmt.Errorf("failed to clear scenario %q: %w", scenario, err)
	}

	cmd.Printf("Cleared scenario %q.\n", scenario)
	return nil
}

func runDefaultRepair(cmd *cobra.Command, _ []string) error {
	if defaultManager == nil {
		return errors.New("default account manager not configured")
	}

	ctx := context.Background()

	current, err := defaultManager.DefaultAccount(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve default: %w", err)
	}
	if current != nil {
		cmd.Printf("Default account %s <%s> is valid; nothing to repair.\n", current.DisplayName, current.EmailAddress)
		return nil
	}

	if err := defaultManager.RepairDefault(ctx, domain.AccountRef{}, repairNoPrompt); err != nil {
		return fmt.Errorf("failed to repair default: %w", err)
	}

	repaired, err := defaultManager.DefaultAccount(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve default: %w", err)
	}
	if repaired == nil {
		cmd.Println("No default account assigned.")
		return nil
	}
	cmd.Printf("Default account is now %s <%s>\n", repaired.DisplayName, repaired.EmailAddress)
	return nil
}
