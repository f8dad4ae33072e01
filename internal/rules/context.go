package rules

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dockvet/dockvet/internal/config"
	"github.com/dockvet/dockvet/internal/dockerfile"
)

// ImageRef is a base image reference split into its parts. The tag and
// digest are literal text; no variable expansion happens.
type ImageRef struct {
	Image  string
	Tag    string // text after the last ':', empty if untagged
	Digest string // text after '@', empty if not digest-pinned
}

// IsVariable reports whether the image name is an unexpanded build variable.
func (r ImageRef) IsVariable() bool {
	return strings.HasPrefix(r.Image, "$")
}

// ParseImageRef splits an image reference like ubuntu:22.04 or
// alpine@sha256:abcd. A ':' inside a registry host port is not a tag.
func ParseImageRef(s string) ImageRef {
	var ref ImageRef
	if at := strings.Index(s, "@"); at != -1 {
		ref.Digest = s[at+1:]
		s = s[:at]
	}
	if colon := strings.LastIndex(s, ":"); colon != -1 && !strings.Contains(s[colon+1:], "/") {
		ref.Tag = s[colon+1:]
		s = s[:colon]
	}
	ref.Image = s
	return ref
}

// Context carries whole-file facts computed once per run and shared by every
// rule. It is read-only after construction; rules use it to reason about
// cross-instruction relationships without rescanning.
type Context struct {
	Filename string

	// FromCount is the number of FROM instructions (multi-stage detection).
	FromCount int

	// BaseImage is the first FROM instruction's image reference.
	BaseImage ImageRef

	// HasBaseImage is false for files with no FROM at all.
	HasBaseImage bool

	// BaseImageLine is the line of the first FROM instruction.
	BaseImageLine int

	// FinalUser is the argument of the last USER instruction, empty when no
	// USER exists. Last wins, matching Docker's own override semantics.
	FinalUser string

	// FinalUserLine is the line of that USER instruction.
	FinalUserLine int

	// ExposedPorts are the numeric ports from all EXPOSE instructions.
	ExposedPorts []int

	// HasDockerignore reports whether a .dockerignore sits next to the file.
	HasDockerignore bool

	Comments   int
	BlankLines int

	Config *config.Config
}

// NewContext computes the shared context for one file. The .dockerignore
// probe uses the parsed file's directory; files parsed from memory (empty
// name) skip the probe.
func NewContext(f *dockerfile.File, cfg *config.Config) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	ctx := &Context{
		Filename:   f.Name,
		Comments:   f.Comments,
		BlankLines: f.BlankLines,
		Config:     cfg,
	}

	froms := f.ByDirective("FROM")
	ctx.FromCount = len(froms)
	if len(froms) > 0 {
		ctx.HasBaseImage = true
		ctx.BaseImage = ParseImageRef(baseImageToken(froms[0]))
		ctx.BaseImageLine = froms[0].Line
	}

	if user, ok := f.Last("USER"); ok {
		arg := user.Args
		// USER app:group sets the user to the part before the colon.
		if i := strings.Index(arg, ":"); i != -1 {
			arg = arg[:i]
		}
		ctx.FinalUser = strings.TrimSpace(arg)
		ctx.FinalUserLine = user.Line
	}

	for _, expose := range f.ByDirective("EXPOSE") {
		for _, field := range expose.Fields() {
			if port, ok := ParsePort(field); ok {
				ctx.ExposedPorts = append(ctx.ExposedPorts, port)
			}
		}
	}

	if f.Name != "" {
		sibling := filepath.Join(filepath.Dir(f.Name), ".dockerignore")
		if _, err := os.Stat(sibling); err == nil {
			ctx.HasDockerignore = true
		}
	}

	return ctx
}

// baseImageToken extracts the image reference from a FROM instruction's
// arguments, skipping --platform flags and the AS clause.
func baseImageToken(from dockerfile.Instruction) string {
	for _, field := range from.Fields() {
		if strings.HasPrefix(field, "--") {
			continue
		}
		return field
	}
	return ""
}

// ParsePort extracts the leading numeric port from an EXPOSE field like
// 8080, 80/tcp, or 1000-1010.
func ParsePort(s string) (int, bool) {
	if i := strings.Index(s, "/"); i != -1 {
		s = s[:i]
	}
	if i := strings.Index(s, "-"); i != -1 {
		s = s[:i]
	}
	port, err := strconv.Atoi(s)
	if err != nil || port <= 0 {
		return 0, false
	}
	return port, true
}
