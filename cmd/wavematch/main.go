// Package main is the entry point for the wavematch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cacack/wavematch/cmd/wavematch/commands"
)

// Build-time variables injected by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "wavematch",
	Short: "Wave Comparison Core command-line tool",
	Long:  "Reconciles two genealogical trees by BFS propagation from a shared anchor pair, producing a mapping report suitable for a human-reviewed merge.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file path (overrides env var defaults)")
	rootCmd.AddCommand(commands.NewCompareCommand(&configPath))
	rootCmd.AddCommand(commands.NewReportCommand(&configPath))
	rootCmd.AddCommand(commands.NewPickCommand())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wavematch %s (commit: %s, built: %s)\n", version, commit, date)
		},
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
