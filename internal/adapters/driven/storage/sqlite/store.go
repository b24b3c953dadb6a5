// Package sqlite provides SQLite-backed implementations of the driven
// store ports, sharing one database file with embedded migrations.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/mailctl/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/mailctl/internal/core/domain"
	"github.com/custodia-labs/mailctl/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the
// store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.mailctl/data/accounts.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".mailctl", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "accounts.db")

	// WAL mode for concurrent sessions sharing the file.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Accounts returns an AccountStore scoped to one connector, backed by
// this store.
func (s *Store) Accounts(connector domain.ConnectorID) driven.AccountStore {
	return &accountStore{store: s, connector: connector}
}

// Scenarios returns a ScenarioStore backed by this store.
func (s *Store) Scenarios() driven.ScenarioStore {
	return &scenarioStore{store: s}
}

// RateLimits returns a RateLimitStore backed by this store.
func (s *Store) RateLimits() driven.RateLimitStore {
	return &rateLimitStore{store: s}
}

func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		contents, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(contents)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}

// accountStore implements driven.AccountStore for one connector.
type accountStore struct {
	store     *Store
	connector domain.ConnectorID
}

var _ driven.AccountStore = (*accountStore)(nil)

func (s *accountStore) Save(ctx context.Context, account domain.EmailAccount) error {
	if account.ID == "" {
		return domain.ErrInvalidInput
	}
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO accounts (id, connector, display_name, email_address)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id, connector) DO UPDATE SET
			display_name = excluded.display_name,
			email_address = excluded.email_address
	`, account.ID, string(s.connector), account.DisplayName, account.EmailAddress)
	if err != nil {
		return fmt.Errorf("saving account: %w", err)
	}
	return nil
}

func (s *accountStore) Get(ctx context.Context, id string) (*domain.EmailAccount, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, display_name, email_address
		FROM accounts WHERE id = ? AND connector = ?
	`, id, string(s.connector))

	account := domain.EmailAccount{Connector: s.connector}
	if err := row.Scan(&account.ID, &account.DisplayName, &account.EmailAddress); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting account: %w", err)
	}
	return &account, nil
}

func (s *accountStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx,
		"DELETE FROM accounts WHERE id = ? AND connector = ?", id, string(s.connector))
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	return nil
}

func (s *accountStore) List(ctx context.Context) ([]domain.EmailAccount, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, display_name, email_address
		FROM accounts WHERE connector = ?
		ORDER BY display_name
	`, string(s.connector))
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.EmailAccount
	for rows.Next() {
		account := domain.EmailAccount{Connector: s.connector}
		if err := rows.Scan(&account.ID, &account.DisplayName, &account.EmailAddress); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// scenarioStore implements driven.ScenarioStore.
type scenarioStore struct {
	store *Store
}

var _ driven.ScenarioStore = (*scenarioStore)(nil)

func (s *scenarioStore) Get(ctx context.Context, scenario domain.Scenario) (domain.AccountRef, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT account_id, connector FROM scenario_assignments WHERE scenario = ?", string(scenario))

	var ref domain.AccountRef
	var connector string
	if err := row.Scan(&ref.AccountID, &connector); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AccountRef{}, domain.ErrNotFound
		}
		return domain.AccountRef{}, fmt.Errorf("getting assignment: %w", err)
	}
	ref.Connector = domain.ConnectorID(connector)
	return ref, nil
}

func (s *scenarioStore) Set(ctx context.Context, scenario domain.Scenario, account domain.AccountRef) error {
	if scenario == "" || account.IsZero() {
		return domain.ErrInvalidInput
	}
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO scenario_assignments (scenario, account_id, connector, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(scenario) DO UPDATE SET
			account_id = excluded.account_id,
			connector = excluded.connector,
			updated_at = CURRENT_TIMESTAMP
	`, string(scenario), account.AccountID, string(account.Connector))
	if err != nil {
		return fmt.Errorf("setting assignment: %w", err)
	}
	return nil
}

func (s *scenarioStore) Clear(ctx context.Context, scenario domain.Scenario) error {
	_, err := s.store.db.ExecContext(ctx,
		"DELETE FROM scenario_assignments WHERE scenario = ?", string(scenario))
	if err != nil {
		return fmt.Errorf("clearing assignment: %w", err)
	}
	return nil
}

func (s *scenarioStore) List(ctx context.Context) ([]domain.ScenarioAssignment, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT scenario, account_id, connector FROM scenario_assignments ORDER BY scenario")
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []domain.ScenarioAssignment
	for rows.Next() {
		var assignment domain.ScenarioAssignment
		var scenario, connector string
		if err := rows.Scan(&scenario, &assignment.Account.AccountID, &connector); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		assignment.Scenario = domain.Scenario(scenario)
		assignment.Account.Connector = domain.ConnectorID(connector)
		assignments = append(assignments, assignment)
	}
	return assignments, rows.Err()
}

// rateLimitStore implements driven.RateLimitStore.
type rateLimitStore struct {
	store *Store
}

var _ driven.RateLimitStore = (*rateLimitStore)(nil)

func (s *rateLimitStore) Save(ctx context.Context, record domain.RateLimitRecord) error {
	if record.Account.IsZero() {
		return domain.ErrInvalidInput
	}
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO rate_limits (account_id, connector, requests_ps, burst)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(account_id, connector) DO UPDATE SET
			requests_ps = excluded.requests_ps,
			burst = excluded.burst
	`, record.Account.AccountID, string(record.Account.Connector), record.RequestsPerSecond, record.Burst)
	if err != nil {
		return fmt.Errorf("saving rate limit: %w", err)
	}
	return nil
}

func (s *rateLimitStore) Get(ctx context.Context, account domain.AccountRef) (domain.RateLimitRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT requests_ps, burst FROM rate_limits
		WHERE account_id = ? AND connector = ?
	`, account.AccountID, string(account.Connector))

	record := domain.RateLimitRecord{Account: account}
	if err := row.Scan(&record.RequestsPerSecond, &record.Burst); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RateLimitRecord{}, domain.ErrNotFound
		}
		return domain.RateLimitRecord{}, fmt.Errorf("getting rate limit: %w", err)
	}
	return record, nil
}

func (s *rateLimitStore) Delete(ctx context.Context, account domain.AccountRef) error {
	_, err := s.store.db.ExecContext(ctx,
		"DELETE FROM rate_limits WHERE account_id = ? AND connector = ?",
		account.AccountID, string(account.Connector))
	if err != nil {
		return fmt.Errorf("deleting rate limit: %w", err)
	}
	return nil
}

func (s *rateLimitStore) List(ctx context.Context) ([]domain.RateLimitRecord, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT account_id, connector, requests_ps, burst FROM rate_limits")
	if err != nil {
		return nil, fmt.Errorf("listing rate limits: %w", err)
	}
	defer rows.Close()

	var records []domain.RateLimitRecord
	for rows.Next() {
		var record domain.RateLimitRecord
		var connector string
		if err := rows.Scan(&record.Account.AccountID, &connector, &record.RequestsPerSecond, &record.Burst); err != nil {
			return nil, fmt.Errorf("scanning rate limit: %w", err)
		}
		record.Account.Connector = domain.ConnectorID(connector)
		records = append(records, record)
	}
	return records, rows.Err()
}
