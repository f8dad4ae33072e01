package report

import (
	"fmt"

	"github.com/dockvet/dockvet/internal/finding"
)

// MarkdownReporter renders the report as Markdown for PR comments and job
// summaries.
type MarkdownReporter struct {
	cfg *Config
}

// Render writes the report as Markdown.
func (r *MarkdownReporter) Render(rep *finding.Report) error {
	w := r.cfg.Writer

	if rep.Total() == 0 {
		fmt.Fprintf(w, "## No issues found\n\n`%s` passed all checks.\n", rep.Filename)
		return nil
	}

	fmt.Fprintf(w, "## Analysis results: `%s`\n\n", rep.Filename)

	fmt.Fprintf(w, "| Severity | Count |\n")
	fmt.Fprintf(w, "|----------|-------|\n")
	for _, s := range finding.Severities {
		if c := rep.Count(s); c > 0 {
			fmt.Fprintf(w, "| %s | %d |\n", r.cfg.Label(s), c)
		}
	}
	fmt.Fprintln(w)

	for _, cat := range finding.Categories {
		findings := rep.ByCategory(cat)
		if len(findings) == 0 {
			continue
		}
		fmt.Fprintf(w, "### %s\n\n", sectionTitles[cat])
		for _, f := range findings {
			if f.Line > 0 {
				fmt.Fprintf(w, "- **%s** (%s, line %d): %s\n", f.RuleID, r.cfg.Label(f.Severity), f.Line, f.Message)
			} else {
				fmt.Fprintf(w, "- **%s** (%s): %s\n", f.RuleID, r.cfg.Label(f.Severity), f.Message)
			}
		}
		fmt.Fprintln(w)
	}

	return nil
}
