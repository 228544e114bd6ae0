package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <service>",
	Short: "Delete a credential entry.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer sess.close()

		removed, err := sess.vault.Delete(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if removed {
			fmt.Println("Deleted.")
		} else {
			fmt.Println("No such entry.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
