package rst_test

import (
	"bytes"
	"testing"

	"github.com/rstkit/cpp2rst/internal/rst"
	"github.com/rstkit/cpp2rst/internal/scanner"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := rst.NewWriter(&buf)

	if err := w.WriteHeader("C++ API", "Preamble text."); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}

	want := ".. _cpp:\n" +
		"\n" +
		".. This file is autogenerated using `cpp2rst`.\n" +
		"\n" +
		"\n" +
		"C++ API\n" +
		"=======\n" +
		"\n" +
		"Preamble text.\n" +
		"\n"

	if buf.String() != want {
		t.Errorf("WriteHeader() output = %q, want %q", buf.String(), want)
	}
}

func TestEmit(t *testing.T) {
	tests := []struct {
		name string
		decl scanner.Decl
		want string
	}{
		{
			name: "class with empty body",
			decl: scanner.Decl{Kind: scanner.KindClass, Name: "Foo"},
			want: "\n.. cpp:class:: Foo\n\n\n",
		},
		{
			name: "function with comment body",
			decl: scanner.Decl{
				Kind:     scanner.KindFunction,
				Name:     "int Compute()",
				Comments: []string{"// Does X.", "// Returns Y."},
			},
			want: "\n.. cpp:function:: int Compute()\n\n  Does X.\n  Returns Y.\n",
		},
		{
			name: "type entry nested under a class",
			decl: scanner.Decl{Kind: scanner.KindType, Name: "int MyInt", Indent: 2},
			want: "\n  .. cpp:type:: int MyInt\n\n\n",
		},
		{
			name: "nested function body gains the entry indent",
			decl: scanner.Decl{
				Kind:     scanner.KindFunction,
				Name:     "double x()",
				Indent:   2,
				Comments: []string{"// The x coordinate."},
			},
			want: "\n  .. cpp:function:: double x()\n\n    The x coordinate.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := rst.NewWriter(&buf)

			if err := w.Emit(tt.decl); err != nil {
				t.Fatalf("Emit() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Emit() output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestEmitTrimsTrailingWhitespace(t *testing.T) {
	var buf bytes.Buffer
	w := rst.NewWriter(&buf)

	decl := scanner.Decl{
		Kind:     scanner.KindFunction,
		Name:     "void Noop()",
		Indent:   2,
		Comments: []string{"//"},
	}
	if err := w.Emit(decl); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		if len(line) > 0 && (line[len(line)-1] == ' ' || line[len(line)-1] == '\t') {
			t.Errorf("line %q has trailing whitespace", line)
		}
	}
}
