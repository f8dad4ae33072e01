package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dockvet/dockvet/internal/finding"
)

// TerminalReporter renders a section-grouped human-readable report.
type TerminalReporter struct {
	cfg *Config
}

var severityColors = map[finding.Severity]*color.Color{
	finding.SeverityCritical: color.New(color.FgRed, color.Bold),
	finding.SeverityHigh:     color.New(color.FgRed),
	finding.SeverityMedium:   color.New(color.FgYellow),
	finding.SeverityLow:      color.New(color.FgBlue),
	finding.SeverityInfo:     color.New(color.FgCyan),
}

func (r *TerminalReporter) tag(s finding.Severity) string {
	label := r.cfg.Label(s)
	if !r.cfg.Color {
		return label
	}
	if c, ok := severityColors[s]; ok {
		return c.Sprint(label)
	}
	return label
}

// Render writes the report grouped into category sections, one line per
// finding, followed by a per-severity summary.
func (r *TerminalReporter) Render(rep *finding.Report) error {
	w := r.cfg.Writer

	for _, cat := range finding.Categories {
		findings := rep.ByCategory(cat)
		if len(findings) == 0 {
			continue
		}

		fmt.Fprintf(w, "%s\n", sectionTitles[cat])
		for _, f := range findings {
			if f.Line > 0 {
				fmt.Fprintf(w, "  [%s] %s line %d: %s\n", r.tag(f.Severity), f.RuleID, f.Line, f.Message)
			} else {
				fmt.Fprintf(w, "  [%s] %s: %s\n", r.tag(f.Severity), f.RuleID, f.Message)
			}
			if f.Detail != "" {
				fmt.Fprintf(w, "         %s\n", f.Detail)
			}
		}
		fmt.Fprintln(w)
	}

	if rep.Total() == 0 {
		fmt.Fprintf(w, "No issues found in %s\n", rep.Filename)
		return nil
	}

	var parts []string
	for _, s := range finding.Severities {
		if c := rep.Count(s); c > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", c, r.tag(s)))
		}
	}
	fmt.Fprintf(w, "Found %s in %s\n", strings.Join(parts, ", "), rep.Filename)

	return nil
}
