package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/credvault/internal/password"
)

var (
	addGenerate bool
	addLength   int
)

var addCmd = &cobra.Command{
	Use:     "add <service> <username>",
	Short:   "Add or update a credential entry.",
	Long:    "Store a credential for a service. An existing entry for the same service is overwritten.",
	Example: "  credvault add github alice\n  credvault add github alice --generate --length 24",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, username := args[0], args[1]
		if service == "" {
			return errors.New("service must not be empty")
		}
		if username == "" {
			return errors.New("username must not be empty")
		}

		sess, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer sess.close()

		var secret string
		if addGenerate {
			secret, err = password.Generate(addLength, password.AllClasses())
			if err != nil {
				return err
			}
			fmt.Printf("Generated password: %s\n", secret)
		} else {
			secret, err = promptSecret("Password: ")
			if err != nil {
				return err
			}
		}

		if err := sess.vault.AddOrUpdate(cmd.Context(), service, username, secret); err != nil {
			return err
		}
		fmt.Printf("Saved entry for %s.\n", service)
		return nil
	},
}

func init() {
	addCmd.Flags().BoolVar(&addGenerate, "generate", false, "generate a strong password instead of prompting for one")
	addCmd.Flags().IntVar(&addLength, "length", password.DefaultLength, "length of the generated password")
	rootCmd.AddCommand(addCmd)
}
