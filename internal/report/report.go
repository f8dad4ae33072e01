// Package report renders analysis reports. The terminal format is for
// humans; json, sarif, and github are machine-readable alternates for CI
// log parsing. No format embeds timestamps, so repeat runs over an
// unchanged file produce byte-identical output.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dockvet/dockvet/internal/finding"
)

// Reporter renders one report to its configured writer.
type Reporter interface {
	Render(rep *finding.Report) error
}

// Format selects the output format.
type Format string

const (
	FormatTerminal Format = "terminal"
	FormatJSON     Format = "json"
	FormatSARIF    Format = "sarif"
	FormatGitHub   Format = "github"
	FormatMarkdown Format = "markdown"
)

// Labeler renders a severity tag; profiles supply their own labelling.
type Labeler func(finding.Severity) string

// Config holds reporter configuration.
type Config struct {
	Writer io.Writer
	Color  bool
	Label  Labeler
}

// Option configures a reporter.
type Option func(*Config)

// WithColor enables or disables colored terminal output.
func WithColor(enabled bool) Option {
	return func(c *Config) {
		c.Color = enabled
	}
}

// WithLabeler sets the severity labelling, typically a profile's.
func WithLabeler(l Labeler) Option {
	return func(c *Config) {
		c.Label = l
	}
}

// New creates a reporter for the given format.
func New(format Format, w io.Writer, opts ...Option) (Reporter, error) {
	cfg := &Config{
		Writer: w,
		Color:  true,
		Label: func(s finding.Severity) string {
			return strings.ToUpper(s.String())
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	switch format {
	case FormatTerminal, "":
		return &TerminalReporter{cfg: cfg}, nil
	case FormatJSON:
		return &JSONReporter{cfg: cfg}, nil
	case FormatSARIF:
		return &SARIFReporter{cfg: cfg}, nil
	case FormatGitHub:
		return &GitHubReporter{cfg: cfg}, nil
	case FormatMarkdown:
		return &MarkdownReporter{cfg: cfg}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// sectionTitles maps categories to report section headers.
var sectionTitles = map[finding.Category]string{
	finding.CategorySecurity:      "Security Checks",
	finding.CategoryBestPractice:  "Best Practices",
	finding.CategoryOptimization:  "Optimization Checks",
	finding.CategoryDocumentation: "Documentation Checks",
}
