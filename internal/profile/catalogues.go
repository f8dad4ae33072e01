package profile

import (
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
	"github.com/dockvet/dockvet/internal/rules/bestpractice"
	documentation "github.com/dockvet/dockvet/internal/rules/documentation"
	"github.com/dockvet/dockvet/internal/rules/optimization"
	"github.com/dockvet/dockvet/internal/rules/security"
)

// Security returns the security profile: the four-level severity taxonomy
// and the critical→2, high→1 exit table.
func Security() *Profile {
	return &Profile{
		Name: "security",
		Catalogue: rules.NewCatalogue(
			security.NewHardcodedSecret("SEC001", finding.SeverityCritical),
			security.NewNonRootUser("SEC002", finding.SeverityHigh),
			security.NewUnpinnedBaseImage("SEC003", finding.SeverityHigh),
			security.NewCurlPipeShell("SEC004", finding.SeverityHigh),
			security.NewSudoPresent("SEC005", finding.SeverityMedium),
			security.NewPrivilegedPort("SEC006", finding.SeverityMedium),
			security.NewAddRemoteURL("SEC007", finding.SeverityMedium),
			security.NewMissingHealthcheck("SEC008", finding.SeverityLow),
			security.NewMissingDockerignore("SEC009", finding.SeverityLow),
		),
		labels: map[finding.Severity]string{
			finding.SeverityCritical: "CRITICAL",
			finding.SeverityHigh:     "HIGH",
			finding.SeverityMedium:   "MEDIUM",
			finding.SeverityLow:      "LOW",
			finding.SeverityInfo:     "INFO",
		},
		exit: []ExitRule{
			{Severity: finding.SeverityCritical, Code: 2},
			{Severity: finding.SeverityHigh, Code: 1},
		},
	}
}

// BestPractices returns the best-practices profile. It reuses several
// security predicates under its own IDs and severities, and renders its
// three severity levels as ERROR/WARN/INFO.
func BestPractices() *Profile {
	return &Profile{
		Name: "best-practices",
		Catalogue: rules.NewCatalogue(
			security.NewUnpinnedBaseImage("BP001", finding.SeverityHigh),
			security.NewNonRootUser("BP002", finding.SeverityHigh),
			bestpractice.NewMultipleCmd("BP003", finding.SeverityHigh),
			bestpractice.NewAptNoRecommends("BP004", finding.SeverityMedium),
			bestpractice.NewAptCacheCleanup("BP005", finding.SeverityMedium),
			bestpractice.NewUnnecessaryPackages("BP006", finding.SeverityMedium),
			bestpractice.NewAddVsCopy("BP007", finding.SeverityMedium),
			bestpractice.NewDeprecatedMaintainer("BP008", finding.SeverityMedium),
			bestpractice.NewMissingWorkdir("BP009", finding.SeverityMedium),
			optimization.NewMultiStage("BP010", finding.SeverityInfo),
			security.NewMissingHealthcheck("BP011", finding.SeverityInfo),
			documentation.NewUndocumented("BP012", finding.SeverityInfo),
		),
		labels: map[finding.Severity]string{
			finding.SeverityHigh:   "ERROR",
			finding.SeverityMedium: "WARN",
			finding.SeverityInfo:   "INFO",
		},
		exit: []ExitRule{
			{Severity: finding.SeverityHigh, Code: 1},
		},
	}
}
