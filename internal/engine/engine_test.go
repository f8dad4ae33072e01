package engine

import (
	"reflect"
	"testing"

	"github.com/dockvet/dockvet/internal/config"
	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/profile"
	"github.com/dockvet/dockvet/internal/rules"
)

// stubRule emits canned findings or panics, for engine behavior tests.
type stubRule struct {
	rules.BaseRule
	findings []finding.Finding
	panics   bool
}

func (r *stubRule) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	if r.panics {
		panic("boom")
	}
	return r.findings
}

func newStub(id string, panics bool, fs ...finding.Finding) *stubRule {
	return &stubRule{
		BaseRule: rules.BaseRule{
			RuleID:       id,
			RuleName:     "stub-" + id,
			RuleCategory: finding.CategorySecurity,
			RuleSeverity: finding.SeverityHigh,
		},
		findings: fs,
		panics:   panics,
	}
}

const sampleSource = `FROM ubuntu:latest
ENV DB_PASSWORD=hunter2
USER root
EXPOSE 80
`

func TestRunIsDeterministic(t *testing.T) {
	f := dockerfile.Parse("Dockerfile", []byte(sampleSource))
	eng := New(profile.Security().Catalogue)

	first := eng.Run(f, config.Default())
	second := eng.Run(f, config.Default())

	if !reflect.DeepEqual(first.Findings, second.Findings) {
		t.Error("two runs over the same input produced different findings")
	}
}

func TestRunOrdersByCatalogueDeclaration(t *testing.T) {
	fB := finding.Finding{RuleID: "B1", Category: finding.CategorySecurity, Severity: finding.SeverityLow, Message: "b"}
	fA := finding.Finding{RuleID: "A1", Category: finding.CategorySecurity, Severity: finding.SeverityLow, Message: "a"}

	// Declaration order B then A must survive into the report.
	cat := rules.NewCatalogue(newStub("B1", false, fB), newStub("A1", false, fA))
	rep := New(cat).Run(dockerfile.Parse("", []byte("FROM alpine\n")), nil)

	if len(rep.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(rep.Findings))
	}
	if rep.Findings[0].RuleID != "B1" || rep.Findings[1].RuleID != "A1" {
		t.Errorf("findings not in catalogue order: %v", rep.Findings)
	}
}

func TestRunContainsPanickingRule(t *testing.T) {
	ok := finding.Finding{RuleID: "R2", Category: finding.CategorySecurity, Severity: finding.SeverityHigh, Message: "still here"}
	cat := rules.NewCatalogue(newStub("R1", true), newStub("R2", false, ok))

	rep := New(cat).Run(dockerfile.Parse("", []byte("FROM alpine\n")), nil)

	if len(rep.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %d: %v", len(rep.Findings), rep.Findings)
	}
	internal := rep.Findings[0]
	if internal.RuleID != "R1" || internal.Severity != finding.SeverityInfo {
		t.Errorf("expected an info-level internal-error finding for R1, got %+v", internal)
	}
	if rep.Findings[1] != ok {
		t.Errorf("healthy rule's finding lost: %+v", rep.Findings[1])
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	f := dockerfile.Parse("Dockerfile", []byte(sampleSource))
	cat := profile.Security().Catalogue

	seq := New(cat).Run(f, config.Default())
	par := New(cat, WithWorkers(4)).Run(f, config.Default())

	if !reflect.DeepEqual(seq.Findings, par.Findings) {
		t.Errorf("parallel run diverged from sequential:\nseq: %v\npar: %v", seq.Findings, par.Findings)
	}
}

func TestRunSurfacesParseNotes(t *testing.T) {
	f := dockerfile.Parse("", []byte("FROM alpine\nBOGUS directive\n"))
	rep := New(rules.NewCatalogue()).Run(f, nil)

	if len(rep.Findings) != 1 {
		t.Fatalf("expected 1 parse-note finding, got %d", len(rep.Findings))
	}
	got := rep.Findings[0]
	if got.RuleID != parseRuleID || got.Severity != finding.SeverityLow || got.Line != 2 {
		t.Errorf("unexpected parse-note finding: %+v", got)
	}
}

func TestSampleSourceFindsExpectedRules(t *testing.T) {
	f := dockerfile.Parse("Dockerfile", []byte(sampleSource))
	rep := New(profile.Security().Catalogue).Run(f, config.Default())

	want := map[string]bool{
		"SEC001": true, // hardcoded DB_PASSWORD
		"SEC002": true, // explicit root
		"SEC003": true, // latest tag
		"SEC006": true, // privileged port 80
	}
	for _, fd := range rep.Findings {
		delete(want, fd.RuleID)
	}
	if len(want) != 0 {
		t.Errorf("expected findings missing for rules: %v", want)
	}
}
