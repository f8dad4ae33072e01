package bestpractice

import (
	"strings"
	"testing"

	"github.com/dockvet/dockvet/internal/config"
	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

func check(t *testing.T, r rules.Rule, src string) []finding.Finding {
	t.Helper()
	f := dockerfile.Parse("", []byte(src))
	return r.Check(f, rules.NewContext(f, config.Default()))
}

func TestAptNoRecommends(t *testing.T) {
	r := NewAptNoRecommends("BP004", finding.SeverityMedium)

	if got := check(t, r, "FROM debian\nRUN apt-get install -y git\n"); len(got) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(got))
	}
	if got := check(t, r, "FROM debian\nRUN apt-get install -y --no-install-recommends git\n"); len(got) != 0 {
		t.Errorf("expected no findings, got %v", got)
	}
	if got := check(t, r, "FROM debian\nRUN apt-get update\n"); len(got) != 0 {
		t.Errorf("expected no findings for non-install commands, got %v", got)
	}
}

func TestAptCacheCleanup(t *testing.T) {
	r := NewAptCacheCleanup("BP005", finding.SeverityMedium)

	if got := check(t, r, "FROM debian\nRUN apt-get install -y git\n"); len(got) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(got))
	}
	clean := "FROM debian\nRUN apt-get install -y git && rm -rf /var/lib/apt/lists/*\n"
	if got := check(t, r, clean); len(got) != 0 {
		t.Errorf("expected no findings, got %v", got)
	}
}

func TestUnnecessaryPackages(t *testing.T) {
	r := NewUnnecessaryPackages("BP006", finding.SeverityMedium)

	got := check(t, r, "FROM debian\nRUN apt-get install -y vim nano git\n")
	if len(got) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(got))
	}
	// The message embeds the matched package names.
	if !strings.Contains(got[0].Message, "vim") || !strings.Contains(got[0].Message, "nano") {
		t.Errorf("message should list matched packages: %q", got[0].Message)
	}
	if strings.Contains(got[0].Message, "git") {
		t.Errorf("message should not list unmatched packages: %q", got[0].Message)
	}

	if got := check(t, r, "FROM debian\nRUN apt-get install -y git\n"); len(got) != 0 {
		t.Errorf("expected no findings, got %v", got)
	}
}

func TestUnnecessaryPackagesConfigurable(t *testing.T) {
	r := NewUnnecessaryPackages("BP006", finding.SeverityMedium)

	f := dockerfile.Parse("", []byte("FROM debian\nRUN apt-get install -y leftpadd\n"))
	cfg := config.Default()
	cfg.UnnecessaryPackages = []string{"leftpadd"}
	got := r.Check(f, rules.NewContext(f, cfg))
	if len(got) != 1 {
		t.Fatalf("expected configured package to match, got %v", got)
	}
}

func TestAddVsCopy(t *testing.T) {
	r := NewAddVsCopy("BP007", finding.SeverityMedium)

	if got := check(t, r, "FROM alpine\nADD app.py /app/\n"); len(got) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(got))
	}
	// Archive extraction is a legitimate ADD use.
	if got := check(t, r, "FROM alpine\nADD rootfs.tar.gz /\n"); len(got) != 0 {
		t.Errorf("expected no findings for archive, got %v", got)
	}
	if got := check(t, r, "FROM alpine\nADD https://example.com/x /tmp/\n"); len(got) != 0 {
		t.Errorf("expected no findings for URL, got %v", got)
	}
}

func TestMultipleCmd(t *testing.T) {
	r := NewMultipleCmd("BP003", finding.SeverityHigh)

	got := check(t, r, "FROM alpine\nCMD [\"a\"]\nCMD [\"b\"]\n")
	if len(got) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(got))
	}
	if got[0].Line != 2 {
		t.Errorf("the overridden CMD should be flagged, got line %d", got[0].Line)
	}

	if got := check(t, r, "FROM alpine\nCMD [\"a\"]\n"); len(got) != 0 {
		t.Errorf("expected no findings for single CMD, got %v", got)
	}
}

func TestDeprecatedMaintainer(t *testing.T) {
	r := NewDeprecatedMaintainer("BP008", finding.SeverityMedium)

	if got := check(t, r, "FROM alpine\nMAINTAINER dev@example.com\n"); len(got) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(got))
	}
}

func TestMissingWorkdir(t *testing.T) {
	r := NewMissingWorkdir("BP009", finding.SeverityMedium)

	got := check(t, r, "FROM alpine\nWORKDIR app\n")
	if len(got) != 1 || !strings.Contains(got[0].Message, "relative") {
		t.Fatalf("expected a relative-workdir finding, got %v", got)
	}

	got = check(t, r, "FROM alpine\nCOPY . /app/\n")
	if len(got) != 1 || got[0].Line != 0 {
		t.Fatalf("expected a file-level missing-workdir finding, got %v", got)
	}

	if got := check(t, r, "FROM alpine\nWORKDIR /app\nCOPY . .\n"); len(got) != 0 {
		t.Errorf("expected no findings, got %v", got)
	}
}
