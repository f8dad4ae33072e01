package report

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/dockvet/dockvet/internal/finding"
)

func sampleReport() *finding.Report {
	return finding.NewReport("Dockerfile", []finding.Finding{
		{
			RuleID:   "SEC001",
			Category: finding.CategorySecurity,
			Severity: finding.SeverityCritical,
			Message:  "ENV sets a secret-looking variable DB_PASSWORD",
			Line:     3,
			Detail:   "pass secrets at runtime instead",
		},
		{
			RuleID:   "SEC003",
			Category: finding.CategorySecurity,
			Severity: finding.SeverityHigh,
			Message:  "base image uses the latest tag",
			Line:     1,
		},
		{
			RuleID:   "BP012",
			Category: finding.CategoryDocumentation,
			Severity: finding.SeverityInfo,
			Message:  "file has no comments",
		},
	})
}

func TestJSONRoundTrip(t *testing.T) {
	rep := sampleReport()

	var buf bytes.Buffer
	r, err := New(FormatJSON, &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.Render(rep); err != nil {
		t.Fatalf("Render: %v", err)
	}

	got, err := DecodeJSON(&buf)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	if got.Filename != rep.Filename {
		t.Errorf("filename %q, want %q", got.Filename, rep.Filename)
	}
	if !reflect.DeepEqual(got.Findings, rep.Findings) {
		t.Errorf("findings did not round-trip:\ngot:  %v\nwant: %v", got.Findings, rep.Findings)
	}
	for _, s := range finding.Severities {
		if got.Count(s) != rep.Count(s) {
			t.Errorf("count(%v) = %d, want %d", s, got.Count(s), rep.Count(s))
		}
	}
	if got.Total() != rep.Total() {
		t.Errorf("total = %d, want %d", got.Total(), rep.Total())
	}
}

func TestJSONSummaryOmitsZeroSeverities(t *testing.T) {
	var buf bytes.Buffer
	r, _ := New(FormatJSON, &buf)
	if err := r.Render(sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := out.Summary["medium"]; ok {
		t.Error("summary includes a severity with zero findings")
	}
	if out.Summary["critical"] != 1 || out.Summary["high"] != 1 || out.Summary["info"] != 1 {
		t.Errorf("unexpected summary: %v", out.Summary)
	}
}

func TestTerminalGroupsByCategory(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(FormatTerminal, &buf, WithColor(false))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.Render(sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Security Checks", "Documentation Checks", "SEC001", "line 3", "CRITICAL"} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Optimization Checks") {
		t.Error("terminal output has a section for an empty category")
	}

	secIdx := strings.Index(out, "Security Checks")
	docIdx := strings.Index(out, "Documentation Checks")
	if secIdx > docIdx {
		t.Error("category sections not in fixed order")
	}
}

func TestTerminalCleanReport(t *testing.T) {
	var buf bytes.Buffer
	r, _ := New(FormatTerminal, &buf, WithColor(false))
	if err := r.Render(finding.NewReport("Dockerfile", nil)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "No issues found") {
		t.Errorf("clean report output: %q", buf.String())
	}
}

func TestTerminalUsesLabeler(t *testing.T) {
	label := func(s finding.Severity) string {
		if s == finding.SeverityHigh {
			return "ERROR"
		}
		return strings.ToUpper(s.String())
	}

	var buf bytes.Buffer
	r, _ := New(FormatTerminal, &buf, WithColor(false), WithLabeler(label))
	rep := finding.NewReport("Dockerfile", []finding.Finding{
		{RuleID: "BP001", Category: finding.CategoryBestPractice, Severity: finding.SeverityHigh, Message: "unpinned base image", Line: 1},
	})
	if err := r.Render(rep); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "[ERROR]") {
		t.Errorf("labeler not applied:\n%s", buf.String())
	}
}

func TestRepeatRendersAreIdentical(t *testing.T) {
	rep := sampleReport()
	for _, format := range []Format{FormatTerminal, FormatJSON, FormatSARIF, FormatGitHub, FormatMarkdown} {
		var first, second bytes.Buffer
		r1, err := New(format, &first, WithColor(false))
		if err != nil {
			t.Fatalf("New(%s): %v", format, err)
		}
		r2, _ := New(format, &second, WithColor(false))
		if err := r1.Render(rep); err != nil {
			t.Fatalf("Render(%s): %v", format, err)
		}
		if err := r2.Render(rep); err != nil {
			t.Fatalf("Render(%s): %v", format, err)
		}
		if !bytes.Equal(first.Bytes(), second.Bytes()) {
			t.Errorf("%s output differs between identical runs", format)
		}
	}
}

func TestSARIFLevels(t *testing.T) {
	var buf bytes.Buffer
	r, _ := New(FormatSARIF, &buf)
	if err := r.Render(sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc["version"] != "2.1.0" {
		t.Errorf("sarif version = %v, want 2.1.0", doc["version"])
	}
	out := buf.String()
	if !strings.Contains(out, `"error"`) || !strings.Contains(out, `"note"`) {
		t.Errorf("expected error and note levels in sarif output:\n%s", out)
	}
}

func TestGitHubCommands(t *testing.T) {
	var buf bytes.Buffer
	r, _ := New(FormatGitHub, &buf)
	if err := r.Render(sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "::error file=Dockerfile,line=3,title=SEC001::") {
		t.Errorf("missing error workflow command:\n%s", out)
	}
	if !strings.Contains(out, "::notice") {
		t.Errorf("missing notice workflow command:\n%s", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New("xml", &bytes.Buffer{}); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
