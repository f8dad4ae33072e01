package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dockvet/dockvet/internal/config"
	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/engine"
	"github.com/dockvet/dockvet/internal/profile"
	"github.com/dockvet/dockvet/internal/report"
)

// newProfileCommand builds a subcommand that runs one profile's pipeline:
// load config, parse the file, evaluate the catalogue, render the report,
// then exit per the profile's severity table. A failed file read is the only
// path with no report; everything else degrades to findings.
func newProfileCommand(use, short, long string, load func() *profile.Profile) *cobra.Command {
	var (
		output  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   use + " [path]",
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "Dockerfile"
			if len(args) > 0 {
				path = args[0]
			}

			cfgPath, _ := cmd.Flags().GetString("config")
			noColor, _ := cmd.Flags().GetBool("no-color")

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			f, err := dockerfile.Load(path)
			if err != nil {
				return err
			}

			prof := load()
			eng := engine.New(prof.Catalogue, engine.WithWorkers(workers))
			rep := eng.Run(f, cfg)

			r, err := report.New(report.Format(output), os.Stdout,
				report.WithColor(!noColor),
				report.WithLabeler(prof.Label),
			)
			if err != nil {
				return err
			}
			if err := r.Render(rep); err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			// The report is fully rendered before the exit code is computed.
			if code := prof.ExitCode(rep); code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "terminal", "Output format: terminal|json|sarif|github|markdown")
	cmd.Flags().IntVar(&workers, "workers", 1, "Rule evaluation workers (>1 enables parallel evaluation)")

	return cmd
}
