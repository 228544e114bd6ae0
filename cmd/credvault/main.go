package main

import (
	"log/slog"
	"os"
)

func main() {
	// Default logger writes to stderr so command output on stdout stays
	// clean for piping.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
