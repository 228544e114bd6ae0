package main

import (
	"fmt"

	"github.com/spf13/cobra"

	sqliteadapter "github.com/ericfisherdev/credvault/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/credvault/internal/config"
)

// info needs no passphrase: it reads only the metadata row and the
// service index, never any secret material.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show vault metadata and entry count.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := sqliteadapter.NewDB(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
			return err
		}

		metaRepo := sqliteadapter.NewMetadataRepo(db)
		if _, err := metaRepo.GetOrCreateSalt(cmd.Context()); err != nil {
			return err
		}
		meta, err := metaRepo.Get(cmd.Context())
		if err != nil {
			return err
		}

		services, err := sqliteadapter.NewEntryRepo(db).ListServices(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Vault:   %s\n", cfg.DBPath)
		fmt.Printf("Created: %s\n", meta.CreatedAt.Format("2006-01-02 15:04:05 MST"))
		fmt.Printf("Entries: %d\n", len(services))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
