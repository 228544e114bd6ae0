package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored service names.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer sess.close()

		services, err := sess.vault.ListServices(cmd.Context())
		if err != nil {
			return err
		}
		if len(services) == 0 {
			fmt.Println("No entries.")
			return nil
		}

		fmt.Println("Stored services:")
		for _, svc := range services {
			fmt.Printf("- %s\n", svc)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
