package main

import (
	"github.com/spf13/cobra"

	"github.com/dockvet/dockvet/internal/profile"
)

func analyzeCmd() *cobra.Command {
	return newProfileCommand(
		"analyze",
		"Check a Dockerfile against best practices",
		`Analyze a Dockerfile with the best-practices catalogue.

Severities are reported as ERROR, WARN, and INFO. The exit code is 1 when
any ERROR-level finding exists, 0 otherwise.`,
		profile.BestPractices,
	)
}
