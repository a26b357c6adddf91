package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/rstkit/cpp2rst/internal/extract"
)

type styles struct {
	green *color.Color
	dim   *color.Color
	bold  *color.Color
}

func newStyles() styles {
	return styles{
		green: color.New(color.FgGreen),
		dim:   color.New(color.Faint),
		bold:  color.New(color.Bold),
	}
}

// ExtractPrinter renders extraction progress to stderr with colored
// output.
type ExtractPrinter struct {
	w     io.Writer
	quiet bool
	mu    sync.Mutex
	s     styles
}

// NewExtractPrinter creates an ExtractPrinter that writes to stderr.
func NewExtractPrinter(quiet bool) *ExtractPrinter {
	return &ExtractPrinter{
		w:     os.Stderr,
		quiet: quiet,
		s:     newStyles(),
	}
}

// NewExtractPrinterWithWriter creates an ExtractPrinter that writes to
// the given writer.
func NewExtractPrinterWithWriter(w io.Writer, quiet bool) *ExtractPrinter {
	return &ExtractPrinter{
		w:     w,
		quiet: quiet,
		s:     newStyles(),
	}
}

// FileDone is the callback wired into extract.Options.OnFile.
func (p *ExtractPrinter) FileDone(path string, decls int) {
	if p.quiet {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, "%s %s %s\n",
		p.s.green.Sprint("✓"),
		p.s.bold.Sprint(path),
		p.s.dim.Sprint(formatCount(decls)),
	)
}

// PrintSummary renders the final line after extraction completes.
func (p *ExtractPrinter) PrintSummary(r *extract.Result) {
	if r == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, "extract complete: %d file(s), %d declaration(s) -> %s\n",
		r.Files,
		r.Declarations,
		r.Output,
	)
}

func formatCount(decls int) string {
	switch decls {
	case 0:
		return "(no declarations)"
	case 1:
		return "(1 declaration)"
	default:
		return fmt.Sprintf("(%d declarations)", decls)
	}
}
