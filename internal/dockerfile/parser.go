package dockerfile

import (
	"fmt"
	"os"
	"strings"
)

// knownDirectives is the set of documented Dockerfile instruction keywords.
// Anything else is retained verbatim so rules can still pattern-match on it,
// but recorded as a parse note.
var knownDirectives = map[string]bool{
	"FROM": true, "RUN": true, "CMD": true, "ENTRYPOINT": true,
	"COPY": true, "ADD": true, "ENV": true, "ARG": true,
	"LABEL": true, "EXPOSE": true, "VOLUME": true, "USER": true,
	"WORKDIR": true, "SHELL": true, "HEALTHCHECK": true,
	"STOPSIGNAL": true, "ONBUILD": true, "MAINTAINER": true,
}

// Load reads and parses the Dockerfile at path. A failed read is the only
// fatal outcome; everything in the file body parses tolerantly.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, src), nil
}

// Parse turns raw Dockerfile text into an ordered instruction sequence.
// Full-line comments and blank lines are stripped but censused, trailing-\
// continuations are joined onto the first physical line, and directive
// keywords are uppercased. No variable substitution or shell evaluation is
// performed; rules match on literal text.
func Parse(name string, src []byte) *File {
	f := &File{Name: name}

	lines := strings.Split(string(src), "\n")
	// A trailing newline yields one empty trailing element, not a blank line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			f.BlankLines++
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			f.Comments++
			continue
		}

		startLine := i + 1
		logical := trimmed

		// Join continuation lines. Comments and blank lines inside a
		// continued instruction are skipped, matching docker build.
		for hasContinuation(logical) {
			logical = strings.TrimSpace(logical[:len(logical)-1])
			next, consumed, ok := nextContinuationLine(f, lines, i+1)
			if !ok {
				f.Notes = append(f.Notes, Note{
					Line:    startLine,
					Message: "unterminated line continuation",
				})
				i = len(lines)
				break
			}
			i = consumed
			if next != "" {
				logical = logical + " " + next
			}
		}

		if logical == "" {
			continue
		}

		directive, args, _ := strings.Cut(logical, " ")
		directive = strings.ToUpper(directive)
		if !knownDirectives[directive] {
			f.Notes = append(f.Notes, Note{
				Line:    startLine,
				Message: fmt.Sprintf("unknown directive %q", directive),
			})
		}

		endLine := i + 1
		if endLine > len(lines) {
			endLine = len(lines)
		}
		f.Instructions = append(f.Instructions, Instruction{
			Line:      startLine,
			EndLine:   endLine,
			Directive: directive,
			Args:      strings.TrimSpace(args),
			Raw:       logical,
		})
	}

	return f
}

// nextContinuationLine scans forward for the next line that continues the
// current instruction, counting skipped comments and blanks. Returns the
// trimmed line, the index it was found at, and false at EOF.
func nextContinuationLine(f *File, lines []string, from int) (string, int, bool) {
	for i := from; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			f.BlankLines++
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			f.Comments++
			continue
		}
		return trimmed, i, true
	}
	return "", len(lines), false
}

// hasContinuation reports whether the line ends in an unescaped backslash.
func hasContinuation(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
