package inventory_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rstkit/cpp2rst/internal/inventory"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%q) error = %v", path, err)
	}
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	aContent := "// A class.\nclass Alpha {\n};\n"
	bContent := "typedef int Beta;\n"
	writeFile(t, filepath.Join(dir, "a.h"), aContent)
	writeFile(t, filepath.Join(dir, "b.h"), bContent)

	paths := []string{filepath.Join(dir, "a.h"), filepath.Join(dir, "b.h")}
	stats, err := inventory.Collect(context.Background(), paths, 2)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Collect() returned %d stats, want 2", len(stats))
	}

	a := stats[0]
	if a.Path != paths[0] {
		t.Errorf("stats[0].Path = %q, want %q (input order preserved)", a.Path, paths[0])
	}
	if a.Lines != 3 {
		t.Errorf("stats[0].Lines = %d, want 3", a.Lines)
	}
	if a.Decls != 1 {
		t.Errorf("stats[0].Decls = %d, want 1", a.Decls)
	}
	if a.Size != int64(len(aContent)) {
		t.Errorf("stats[0].Size = %d, want %d", a.Size, len(aContent))
	}

	b := stats[1]
	if b.Lines != 1 || b.Decls != 1 {
		t.Errorf("stats[1] lines/decls = %d/%d, want 1/1", b.Lines, b.Decls)
	}
}

func TestCollectMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := inventory.Collect(context.Background(), []string{filepath.Join(dir, "gone.h")}, 1)
	if err == nil {
		t.Fatalf("Collect() error = nil, want non-nil")
	}
	if !strings.Contains(err.Error(), "inspecting input file") {
		t.Errorf("Collect() error = %q, expected stat failure", err.Error())
	}
}

func TestCollectCanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.h"), "class A {\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := inventory.Collect(ctx, []string{filepath.Join(dir, "a.h")}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Collect() error = %v, want context.Canceled", err)
	}
}

func TestCollectDefaultsParallelism(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.h"), "class A {\n")

	stats, err := inventory.Collect(context.Background(), []string{filepath.Join(dir, "a.h")}, 0)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(stats) != 1 || stats[0].Decls != 1 {
		t.Errorf("Collect() stats = %#v, want one file with one declaration", stats)
	}
}
