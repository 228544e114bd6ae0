package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/credvault/internal/password"
)

var (
	genLength    int
	genNoUpper   bool
	genNoLower   bool
	genNoDigits  bool
	genNoSymbols bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Short:   "Generate a strong random password.",
	Example: "  credvault generate\n  credvault generate --length 32 --no-symbols",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pw, err := password.Generate(genLength, classesFromFlags(genNoUpper, genNoLower, genNoDigits, genNoSymbols))
		if err != nil {
			return err
		}
		fmt.Println(pw)
		return nil
	},
}

// classesFromFlags maps the exclusion flags onto the generator's class
// selection. All classes are enabled unless excluded.
func classesFromFlags(noUpper, noLower, noDigits, noSymbols bool) password.Classes {
	return password.Classes{
		Upper:   !noUpper,
		Lower:   !noLower,
		Digits:  !noDigits,
		Symbols: !noSymbols,
	}
}

func init() {
	generateCmd.Flags().IntVar(&genLength, "length", password.DefaultLength, "password length")
	generateCmd.Flags().BoolVar(&genNoUpper, "no-upper", false, "exclude uppercase letters")
	generateCmd.Flags().BoolVar(&genNoLower, "no-lower", false, "exclude lowercase letters")
	generateCmd.Flags().BoolVar(&genNoDigits, "no-digits", false, "exclude digits")
	generateCmd.Flags().BoolVar(&genNoSymbols, "no-symbols", false, "exclude symbols")
	rootCmd.AddCommand(generateCmd)
}
