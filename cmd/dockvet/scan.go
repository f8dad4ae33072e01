package main

import (
	"github.com/spf13/cobra"

	"github.com/dockvet/dockvet/internal/profile"
)

func scanCmd() *cobra.Command {
	return newProfileCommand(
		"scan",
		"Scan a Dockerfile for security issues",
		`Scan a Dockerfile with the security catalogue.

Findings carry the critical/high/medium/low taxonomy. The exit code is 2
when any critical finding exists, 1 when any high finding exists, and 0
otherwise. Vulnerability-database lookups are out of scope; use an image
scanner such as Trivy for CVEs.`,
		profile.Security,
	)
}
