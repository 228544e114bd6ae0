package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	sqliteadapter "github.com/ericfisherdev/credvault/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/credvault/internal/application"
	"github.com/ericfisherdev/credvault/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "credvault",
	Short: "A local encrypted credential vault.",
	Long: `credvault stores service credentials encrypted at rest in a local
SQLite file. A symmetric key is derived from your master passphrase with
PBKDF2 and every secret is sealed with AES-256-GCM, so the vault file is
useless without the passphrase.`,
	SilenceUsage: true,
}

// session bundles an unlocked vault with the database it was opened on.
type session struct {
	vault *application.VaultService
	db    *sqliteadapter.DB
}

func (s *session) close() {
	s.vault.Close()
	if err := s.db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: close database: %v\n", err)
	}
}

// openSession loads config, opens the vault database, runs migrations and
// unlocks the vault with a passphrase prompted from the terminal.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		db.Close()
		return nil, err
	}

	vault := application.NewVaultService(
		sqliteadapter.NewEntryRepo(db),
		sqliteadapter.NewMetadataRepo(db),
		cfg.KDFIterations,
	)

	passphrase, err := promptSecret("Master passphrase: ")
	if err != nil {
		db.Close()
		return nil, err
	}

	if err := vault.Open(ctx, passphrase); err != nil {
		db.Close()
		return nil, err
	}

	return &session{vault: vault, db: db}, nil
}

// promptSecret reads a line from the terminal without echo.
func promptSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read secret input: %w", err)
	}
	return string(raw), nil
}
