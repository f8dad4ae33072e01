package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "dockvet",
		Short: "Dockerfile best-practice and security analyzer",
		Long: `Dockvet statically analyzes a Dockerfile against rule catalogues and
reports violations with a severity-derived exit code, suitable for CI gating.

Two profiles are built in: analyze runs the best-practices catalogue,
scan runs the stricter security catalogue.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		analyzeCmd(),
		scanCmd(),
		rulesCmd(),
	)

	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file path (default .dockvet.yaml if present)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
