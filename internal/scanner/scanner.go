package scanner

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// Kind classifies a recognized declaration. Template declarations are
// emitted as KindClass since they render under the same rst directive.
type Kind string

const (
	KindClass    Kind = "class"
	KindFunction Kind = "function"
	KindType     Kind = "type"
)

// Decl is one recognized declaration together with the contiguous comment
// block that immediately preceded it.
type Decl struct {
	Kind     Kind
	Name     string
	Indent   int
	Comments []string
}

// Emitter receives declarations in input order, interleaved with the
// scan itself.
type Emitter interface {
	Emit(d Decl) error
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(d Decl) error

func (f EmitterFunc) Emit(d Decl) error { return f(d) }

var (
	signatureRe = regexp.MustCompile(
		`([A-Z][a-zA-Z0-9]+|int|double|bool|void|const)[*&]{0,2} [a-z_A-Z0-9]+\(.*\).*[;{]`)
	partialSignatureRe = regexp.MustCompile(
		`([A-Z][a-zA-Z0-9]+|int|double|bool|void|const)[*&]{0,2} [a-z_A-Z0-9]+\(`)
)

// state carries the per-unit scan context: the tracked nesting depth, the
// visibility gate, the pending comment block, and the one-slot buffer for
// a signature suspected to span two lines.
type state struct {
	indent  int
	private bool
	cached  []string
	partial string
}

// Scan processes the lines of one input unit in order, sending every
// recognized declaration to emit. Lines must not carry trailing newlines.
// Unrecognized declarations are silently passed over.
func Scan(lines []string, emit Emitter) error {
	st := &state{}
	for _, line := range lines {
		if err := st.step(line, emit); err != nil {
			return err
		}
	}
	return nil
}

func (st *state) step(line string, emit Emitter) error {
	st.unwind(line)
	line = cutLeading(line, st.indent)

	// The access keyword's first letter sits inside the indent that was
	// just cut, so the markers appear without it.
	if strings.HasPrefix(line, "rivate:") || strings.HasPrefix(line, "rotected:") {
		st.private = true
	}
	if strings.HasPrefix(line, "ublic:") {
		st.private = false
	}
	if st.private {
		return nil
	}

	line = strings.TrimRightFunc(line, unicode.IsSpace)

	if replacement, ok := verbatimRemap[line]; ok {
		line = replacement
	}

	if isComment(line) {
		st.cached = append(st.cached, line)
		return nil
	}

	switch {
	case strings.HasPrefix(line, "class") && strings.Contains(line, "{"):
		name := declName(cutLeading(line, len("class ")))
		if err := st.emit(emit, KindClass, name); err != nil {
			return err
		}
		st.indent += 2

	case strings.HasPrefix(line, "typedef") && strings.HasSuffix(line, ";"):
		// Unlike the other branches, a typedef keeps any brace-bearing
		// body text in its name; only semicolons are dropped.
		name := cutLeading(line, len("typedef "))
		name = strings.TrimSpace(strings.ReplaceAll(name, ";", ""))
		if err := st.emit(emit, KindType, name); err != nil {
			return err
		}
		st.indent += 2

	case strings.HasPrefix(line, "template") && (strings.Contains(line, "(") || strings.Contains(line, "{")):
		name := declName(line)
		name = strings.ReplaceAll(name, "> class ", "> ")
		name = strings.ReplaceAll(name, "> struct ", "> ")
		name = strings.TrimSpace(name)
		if err := st.emit(emit, KindClass, name); err != nil {
			return err
		}
		st.indent += 2

	case signatureRe.MatchString(st.partial + strings.TrimSpace(line)):
		name := st.partial + strings.TrimSpace(line)
		if before, after, found := strings.Cut(name, "//"); found {
			name = before
			st.cached = append(st.cached, "// "+after)
		}
		if err := st.emit(emit, KindFunction, declName(name)); err != nil {
			return err
		}

	case partialSignatureRe.MatchString(line):
		st.partial = line + " "
		return nil
	}

	st.partial = ""
	if line != "" {
		st.cached = nil
	}
	return nil
}

// unwind pops nesting levels while the line outdents relative to the
// tracked indent, unless the line carries an access section label.
func (st *state) unwind(line string) {
	for len(line) > 0 && st.indent > 0 &&
		!strings.HasPrefix(line, strings.Repeat(" ", st.indent)) &&
		!strings.Contains(line, "public:") &&
		!strings.Contains(line, "private:") &&
		!strings.Contains(line, "protected:") {
		st.indent -= 2
		st.private = false
	}
}

func (st *state) emit(emit Emitter, kind Kind, name string) error {
	return emit.Emit(Decl{
		Kind:     kind,
		Name:     name,
		Indent:   st.indent,
		Comments: slices.Clone(st.cached),
	})
}

func isComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(line, " *")
}

// declName trims a matched declaration down to the text used as the
// directive argument: the body opener and semicolons dropped.
func declName(text string) string {
	text, _, _ = strings.Cut(text, "{")
	text = strings.ReplaceAll(text, ";", "")
	return strings.TrimSpace(text)
}

func cutLeading(line string, n int) string {
	if n >= len(line) {
		return ""
	}
	return line[n:]
}
