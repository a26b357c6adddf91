package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rstkit/cpp2rst/internal/extract"
	"github.com/rstkit/cpp2rst/internal/ui"
)

func TestFileDone(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewExtractPrinterWithWriter(&buf, false)

	p.FileDone("s2/s2cap.h", 12)

	out := buf.String()
	if !strings.Contains(out, "s2/s2cap.h") {
		t.Errorf("output missing file path, got: %q", out)
	}
	if !strings.Contains(out, "12 declarations") {
		t.Errorf("output missing declaration count, got: %q", out)
	}
}

func TestFileDoneSingular(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewExtractPrinterWithWriter(&buf, false)

	p.FileDone("s2/s2cap.h", 1)

	if !strings.Contains(buf.String(), "1 declaration)") {
		t.Errorf("output missing singular count, got: %q", buf.String())
	}
}

func TestFileDoneQuiet(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewExtractPrinterWithWriter(&buf, true)

	p.FileDone("s2/s2cap.h", 3)

	if buf.Len() != 0 {
		t.Errorf("quiet printer wrote %q, want nothing", buf.String())
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewExtractPrinterWithWriter(&buf, true)

	p.PrintSummary(&extract.Result{Files: 3, Declarations: 41, Output: "cpp.rst"})

	out := buf.String()
	if !strings.Contains(out, "3 file(s)") {
		t.Errorf("summary missing file count, got: %q", out)
	}
	if !strings.Contains(out, "41 declaration(s)") {
		t.Errorf("summary missing declaration count, got: %q", out)
	}
	if !strings.Contains(out, "cpp.rst") {
		t.Errorf("summary missing output path, got: %q", out)
	}
}

func TestPrintSummaryNilResult(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewExtractPrinterWithWriter(&buf, false)

	p.PrintSummary(nil)

	if buf.Len() != 0 {
		t.Errorf("nil result wrote %q, want nothing", buf.String())
	}
}
