// Package cli provides the command-line interface for mailctl.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mailctl/internal/adapters/driven/config/file"
	"github.com/custodia-labs/mailctl/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/mailctl/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/mailctl/internal/connectors/imap"
	"github.com/custodia-labs/mailctl/internal/connectors/mailcow"
	"github.com/custodia-labs/mailctl/internal/connectors/smtp"
	"github.com/custodia-labs/mailctl/internal/core/domain"
	"github.com/custodia-labs/mailctl/internal/core/ports/driven"
	"github.com/custodia-labs/mailctl/internal/core/ports/driving"
	"github.com/custodia-labs/mailctl/internal/core/services"
	"github.com/custodia-labs/mailctl/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired by initServices; tests swap these for mocks.
var (
	accountDirectory driving.AccountDirectory
	defaultManager   driving.DefaultAccountManager
	connectorCatalog driven.ConnectorCatalog
	configStore      driven.ConfigStore
	principal        domain.Principal
)

// dbStore is kept so Execute can close it on exit.
var dbStore *sqlite.Store

var (
	verboseFlag bool
	roleFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "mailctl",
	Short: "Manage email accounts across connectors",
	Long: `mailctl manages email accounts registered with pluggable connectors
(IMAP, SMTP, Mailcow) and keeps the default-account assignment consistent
when accounts come and go.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if verboseFlag {
			logger.SetVerbose(true)
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&roleFlag, "role", "", "Operator role (admin or viewer); overrides the configured role")
}

// initServices wires the storage, connectors, and core services.
// No-op when a directory is already wired (tests inject mocks).
func initServices() error {
	if accountDirectory != nil {
		return nil
	}

	cfg, err := file.NewConfigStore(os.Getenv("MAILCTL_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	configStore = cfg

	store, err := sqlite.NewStore(cfg.GetString(file.KeyDataDir))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	dbStore = store

	rateLimits := services.NewRateLimitTracker(store.RateLimits())

	catalog := memory.NewCatalog(
		imap.New(store.Accounts(domain.ConnectorIMAP)),
		smtp.New(store.Accounts(domain.ConnectorSMTP)),
	)
	if baseURL := cfg.GetString(file.KeyMailcowBaseURL); baseURL != "" {
		client := mailcow.NewClient(mailcow.Config{
			BaseURL: baseURL,
			APIKey:  cfg.GetString(file.KeyMailcowAPIKey),
		})
		catalog.Install(mailcow.New(client, rateLimits))
	}
	connectorCatalog = catalog

	notifier := &logNotifier{}
	accounts := services.NewAccountService(catalog, rateLimits, &terminalConfirm{}, notifier)
	defaults := services.NewDefaultAccountService(store.Scenarios(), &terminalChooser{}, notifier)
	accounts.SetDefaultCoordinator(defaults)
	defaults.SetDirectory(accounts)

	accountDirectory = accounts
	defaultManager = defaults

	principal = resolvePrincipal(cfg)
	return nil
}

func resolvePrincipal(cfg driven.ConfigStore) domain.Principal {
	role := roleFlag
	if role == "" {
		role = cfg.GetString(file.KeyRole)
	}
	name := os.Getenv("USER")
	if name == "" {
		name = "operator"
	}
	return domain.Principal{Name: name, Admin: role == "admin"}
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if dbStore != nil {
		_ = dbStore.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
