package docs

import (
	"strings"
	"testing"

	"github.com/dockvet/dockvet/internal/config"
	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

func TestUndocumented(t *testing.T) {
	r := NewUndocumented("BP012", finding.SeverityInfo)

	run := func(src string) int {
		f := dockerfile.Parse("", []byte(src))
		return len(r.Check(f, rules.NewContext(f, config.Default())))
	}

	big := "FROM alpine:3.18\n" + strings.Repeat("RUN echo step\n", 10)
	if got := run(big); got != 1 {
		t.Errorf("expected a finding for a large uncommented file, got %d", got)
	}
	if got := run("# minimal image\n" + big); got != 0 {
		t.Errorf("expected no findings once a comment exists, got %d", got)
	}
	if got := run("FROM alpine:3.18\nRUN echo hi\n"); got != 0 {
		t.Errorf("expected no findings for a small file, got %d", got)
	}
}
