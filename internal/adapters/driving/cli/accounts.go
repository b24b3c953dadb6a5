package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mailctl/internal/connectors/imap"
	"github.com/custodia-labs/mailctl/internal/core/domain"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage email accounts",
	Long:  `List, add, delete, and test email accounts across all connectors.`,
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts from every connector",
	RunE:  runAccountsList,
}

var accountsAddCmd = &cobra.Command{
	Use:   "add [connector] [display-name] [address]",
	Short: "Register a new account with a connector",
	Args:  cobra.ExactArgs(3),
	RunE:  runAccountsAdd,
}

var accountsDeleteCmd = &cobra.Command{
	Use:   "delete [connector] [account-id]...",
	Short: "Delete accounts from a connector",
	Long: `Deletes one or more accounts from the given connector. The default
account assignment is repaired afterwards if one of the deleted accounts
was the default. Requires the admin role.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAccountsDelete,
}

var accountsTestCmd = &cobra.Command{
	Use:   "test [account-id]",
	Short: "Test an IMAP account's connectivity",
	Long: `Connects to the account's IMAP server over TLS and attempts a login.
The server is derived from the address domain unless --server is given.
The password is read from the terminal without echo.`,
	Args: cobra.ExactArgs(1),
	RunE: runAccountsTest,
}

// Flags for the accounts subcommands.
var (
	accountsListLogos bool
	accountsDeleteYes bool
	accountsTestHost  string
)

func init() {
	accountsListCmd.Flags().BoolVar(&accountsListLogos, "logos", false, "Include connector logo sizes in the listing")
	accountsDeleteCmd.Flags().BoolVarP(&accountsDeleteYes, "yes", "y", false, "Skip the confirmation prompt")
	accountsTestCmd.Flags().StringVar(&accountsTestHost, "server", "", "IMAP server address (host:port)")

	accountsCmd.AddCommand(accountsListCmd)
	accountsCmd.AddCommand(accountsAddCmd)
	accountsCmd.AddCommand(accountsDeleteCmd)
	accountsCmd.AddCommand(accountsTestCmd)
	rootCmd.AddCommand(accountsCmd)
}

func runAccountsList(cmd *cobra.Command, _ []string) error {
	if accountDirectory == nil {
		return errors.New("account directory not configured")
	}

	ctx := context.Background()

	accounts, err := accountDirectory.ListAllAccounts(ctx, accountsListLogos)
	if err != nil && len(accounts) == 0 {
		return fmt.Errorf("failed to list accounts: %w", err)
	}
	if err != nil {
		cmd.PrintErrf("Warning: some connectors failed: %v\n", err)
	}

	if len(accounts) == 0 {
		cmd.Println("No accounts registered.")
		return nil
	}

	var defaultRef domain.AccountRef
	if defaultManager != nil {
		if def, derr := defaultManager.DefaultAccount(ctx); derr == nil && def != nil {
			defaultRef = def.Ref()
		}
	}

	for i := range accounts {
		marker := " "
		if accounts[i].Ref() == defaultRef && !defaultRef.IsZero() {
			marker = "*"
		}
		cmd.Printf("%s %s  %s <%s> [%s]\n", marker, accounts[i].ID, accounts[i].DisplayName, accounts[i].EmailAddress, accounts[i].Connector)
		if accountsListLogos && len(accounts[i].Logo) > 0 {
			cmd.Printf("    logo: %d bytes\n", len(accounts[i].Logo))
		}
	}

	cmd.Printf("\nTotal: %d accounts\n", len(accounts))
	return nil
}

// accountCreator is satisfied by connectors that can register accounts
// locally (IMAP and SMTP; Mailcow mailboxes are created server-side).
type accountCreator interface {
	AddAccount(ctx context.Context, displayName, address string) (*domain.EmailAccount, error)
}

func runAccountsAdd(cmd *cobra.Command, args []string) error {
	if connectorCatalog == nil {
		return errors.New("connector catalog not configured")
	}

	connector := domain.ConnectorID(strings.ToLower(args[0]))
	displayName, address := args[1], args[2]

	c, ok := connectorCatalog.Get(connector)
	if !ok {
		return fmt.Errorf("unknown connector: %s", connector)
	}

	creator, ok := c.(accountCreator)
	if !ok {
		return fmt.Errorf("connector %s does not support adding accounts here", connector)
	}

	account, err := creator.AddAccount(context.Background(), displayName, address)
	if err != nil {
		return fmt.Errorf("failed to add account: %w", err)
	}

	cmd.Printf("Added account %s (%s) to connector %s\n", account.ID, account.EmailAddress, account.Connector)
	return nil
}

func runAccountsDelete(cmd *cobra.Command, args []string) error {
	if accountDirectory == nil {
		return errors.New("account directory not configured")
	}

	connector := domain.ConnectorID(strings.ToLower(args[0]))
	if !accountDirectory.IsValidConnector(connector) {
		return fmt.Errorf("unknown connector: %s", connector)
	}

	accounts := make([]domain.EmailAccount, 0, len(args)-1)
	for _, id := range args[1:] {
		accounts = append(accounts, domain.EmailAccount{ID: id, Connector: connector})
	}

	err := accountDirectory.DeleteAccounts(context.Background(), principal, accounts, !accountsDeleteYes)
	if err != nil {
		if errors.Is(err, domain.ErrPermissionDenied) {
			return fmt.Errorf("deleting accounts requires the admin role: %w", err)
		}
		return fmt.Errorf("failed to delete accounts: %w", err)
	}

	cmd.Printf("Deleted %d accounts from connector %s\n", len(accounts), connector)
	return nil
}

func runAccountsTest(cmd *cobra.Command, args []string) error {
	if accountDirectory == nil {
		return errors.New("account directory not configured")
	}

	ctx := context.Background()
	accountID := args[0]

	registered, err := accountDirectory.IsAccountRegistered(ctx, accountID, domain.ConnectorIMAP)
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}
	if !registered {
		return fmt.Errorf("no IMAP account with ID %s", accountID)
	}

	accounts, err := accountDirectory.ListAllAccounts(ctx, false)
	if err != nil && len(accounts) == 0 {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	var account *domain.EmailAccount
	for i := range accounts {
		if accounts[i].ID == accountID && accounts[i].Connector == domain.ConnectorIMAP {
			account = &accounts[i]
			break
		}
	}
	if account == nil {
		return fmt.Errorf("no IMAP account with ID %s", accountID)
	}

	if connectorCatalog == nil {
		return errors.New("connector catalog not configured")
	}
	c, ok := connectorCatalog.Get(domain.ConnectorIMAP)
	if !ok {
		return errors.New("IMAP connector not installed")
	}
	prober, ok := c.(*imap.Connector)
	if !ok {
		return errors.New("IMAP connector not installed")
	}

	cmd.Printf("Password for %s: ", account.EmailAddress)
	password := readPassword()
	cmd.Println()

	if err := prober.Probe(ctx, *account, password, accountsTestHost); err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}

	cmd.Printf("Connection test for %s succeeded\n", account.EmailAddress)
	return nil
}
