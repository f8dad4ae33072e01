package dockerfile

import "strings"

// Instruction is one parsed Dockerfile directive. Instructions preserve file
// order; Line is the first physical line of the instruction and EndLine the
// last, so a continuation-joined instruction spans [Line, EndLine].
type Instruction struct {
	Line      int    // 1-based first physical line
	EndLine   int    // last physical line (== Line without continuations)
	Directive string // normalized uppercase keyword, e.g. FROM, USER
	Args      string // raw trailing text, whitespace-trimmed
	Raw       string // joined logical line as written
}

// Note records a tolerable parsing oddity. Notes never abort parsing; the
// engine surfaces them as low-severity findings.
type Note struct {
	Line    int
	Message string
}

// File is the parse result for one Dockerfile.
type File struct {
	Name         string
	Instructions []Instruction
	Comments     int // full-line comments stripped from the sequence
	BlankLines   int
	Notes        []Note
}

// ByDirective returns all instructions with the given directive keyword,
// preserving file order.
func (f *File) ByDirective(directive string) []Instruction {
	var out []Instruction
	for _, in := range f.Instructions {
		if in.Directive == directive {
			out = append(out, in)
		}
	}
	return out
}

// First returns the first instruction with the given directive.
func (f *File) First(directive string) (Instruction, bool) {
	for _, in := range f.Instructions {
		if in.Directive == directive {
			return in, true
		}
	}
	return Instruction{}, false
}

// Last returns the last instruction with the given directive.
func (f *File) Last(directive string) (Instruction, bool) {
	for i := len(f.Instructions) - 1; i >= 0; i-- {
		if f.Instructions[i].Directive == directive {
			return f.Instructions[i], true
		}
	}
	return Instruction{}, false
}

// Fields splits the instruction arguments on whitespace.
func (in Instruction) Fields() []string {
	return strings.Fields(in.Args)
}
