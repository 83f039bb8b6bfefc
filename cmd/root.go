// Package cmd implements the CLI commands for deckparse using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deckparse",
	Short: "deckparse — infer navigation structure from arbitrary HTML decks",
	Long: `deckparse analyzes HTML documents (slide decks, nav-driven pages),
infers their table of contents and content sections, and reconciles the
two into a browsable navigation model.

Usage:
  deckparse analyze <file>... [flags]
  deckparse serve [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
