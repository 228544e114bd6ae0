package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/credvault/internal/domain/port/driven"
	"github.com/ericfisherdev/credvault/internal/vaultcrypto"
)

var getCopy bool

var getCmd = &cobra.Command{
	Use:     "get <service>",
	Short:   "Retrieve a credential entry.",
	Example: "  credvault get github\n  credvault get github --copy",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer sess.close()

		cred, err := sess.vault.Retrieve(cmd.Context(), args[0])
		if errors.Is(err, driven.ErrEntryNotFound) {
			fmt.Println("No entry found.")
			return nil
		}
		if errors.Is(err, vaultcrypto.ErrIntegrity) {
			return fmt.Errorf("wrong passphrase or corrupted data: %w", err)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Service:  %s\n", cred.Service)
		fmt.Printf("Username: %s\n", cred.Username)
		if getCopy {
			if err := clipboard.WriteAll(cred.Password); err != nil {
				return fmt.Errorf("copy password to clipboard: %w", err)
			}
			fmt.Println("Password copied to clipboard.")
		} else {
			fmt.Printf("Password: %s\n", cred.Password)
		}
		fmt.Printf("Created:  %s\n", cred.CreatedAt.Format("2006-01-02 15:04:05 MST"))
		return nil
	},
}

func init() {
	getCmd.Flags().BoolVar(&getCopy, "copy", false, "copy the password to the clipboard instead of printing it")
	rootCmd.AddCommand(getCmd)
}
