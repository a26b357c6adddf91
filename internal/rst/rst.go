package rst

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/samber/oops"

	"github.com/rstkit/cpp2rst/internal/format"
	"github.com/rstkit/cpp2rst/internal/scanner"
)

// Writer renders declaration entries as rst directive blocks beneath a
// document header. It implements scanner.Emitter so the scan writes
// entries interleaved with its own pass.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the fixed document title block. Call once, before
// any entries.
func (w *Writer) WriteHeader(title, preamble string) error {
	underline := strings.Repeat("=", len(title))
	_, err := fmt.Fprintf(w.w,
		".. _cpp:\n\n.. This file is autogenerated using `cpp2rst`.\n\n\n%s\n%s\n\n%s\n\n",
		title, underline, preamble)
	if err != nil {
		return oops.
			Code("WRITE_FAILED").
			Wrapf(err, "writing document header")
	}
	return nil
}

// Emit writes one declaration entry: a blank line, the directive line,
// a blank line, then the formatted comment body, all prefixed by the
// declaration's indent and right-trimmed per line.
func (w *Writer) Emit(d scanner.Decl) error {
	body := format.Render(d.Comments)
	entry := fmt.Sprintf("\n%s %s\n\n%s\n", directive(d.Kind), d.Name, body)
	prefix := strings.Repeat(" ", d.Indent)

	for _, line := range splitLines(entry) {
		out := strings.TrimRightFunc(prefix+line, unicode.IsSpace)
		if _, err := io.WriteString(w.w, out+"\n"); err != nil {
			return oops.
				Code("WRITE_FAILED").
				With("declaration", d.Name).
				Wrapf(err, "writing declaration entry")
		}
	}
	return nil
}

func directive(kind scanner.Kind) string {
	switch kind {
	case scanner.KindFunction:
		return ".. cpp:function::"
	case scanner.KindType:
		return ".. cpp:type::"
	default:
		return ".. cpp:class::"
	}
}

// splitLines splits on newlines without yielding a trailing empty line
// for text ending in a newline.
func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
