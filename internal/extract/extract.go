package extract

import (
	"bufio"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/oops"

	"github.com/rstkit/cpp2rst/internal/rst"
	"github.com/rstkit/cpp2rst/internal/scanner"
)

type Options struct {
	Inputs   string
	Exclude  []string
	Output   string
	Title    string
	Preamble string

	// OnFile, when set, is called after each input file finishes with the
	// number of declarations recognized in it.
	OnFile func(path string, decls int)
}

type Result struct {
	Files        int
	Declarations int
	Output       string
}

// Run resolves the input glob and writes the full rst artifact. Input
// files are processed strictly in order, each in full before the next;
// the only state shared across them is the output stream.
func Run(opts Options) (*Result, error) {
	paths, err := ResolveInputs(opts.Inputs, opts.Exclude)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return nil, oops.
			Code("WRITE_FAILED").
			With("path", opts.Output).
			Wrapf(err, "creating output file")
	}
	defer out.Close()

	buffered := bufio.NewWriter(out)
	writer := rst.NewWriter(buffered)

	if headerErr := writer.WriteHeader(opts.Title, opts.Preamble); headerErr != nil {
		return nil, headerErr
	}

	result := &Result{Output: opts.Output}
	for _, path := range paths {
		declCount, scanErr := extractFile(path, writer)
		if scanErr != nil {
			return nil, scanErr
		}

		result.Files++
		result.Declarations += declCount
		if opts.OnFile != nil {
			opts.OnFile(path, declCount)
		}
	}

	if flushErr := buffered.Flush(); flushErr != nil {
		return nil, oops.
			Code("WRITE_FAILED").
			With("path", opts.Output).
			Wrapf(flushErr, "flushing output file")
	}

	if closeErr := out.Close(); closeErr != nil {
		return nil, oops.
			Code("WRITE_FAILED").
			With("path", opts.Output).
			Wrapf(closeErr, "closing output file")
	}

	return result, nil
}

func extractFile(path string, writer *rst.Writer) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, oops.
			Code("READ_FAILED").
			With("path", path).
			Wrapf(err, "reading input file")
	}

	counting := &countingEmitter{next: writer}
	if scanErr := scanner.Scan(SplitLines(data), counting); scanErr != nil {
		return 0, scanErr
	}

	return counting.count, nil
}

// ResolveInputs expands the inputs glob, drops exclude matches, and
// returns the remaining paths sorted for deterministic processing order.
func ResolveInputs(pattern string, exclude []string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, oops.
			Code("CONFIG_INVALID").
			With("pattern", pattern).
			Hint("Use a doublestar glob such as \"include/**/*.h\"").
			Wrapf(err, "expanding inputs glob")
	}

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		excluded, matchErr := matchesAny(exclude, match)
		if matchErr != nil {
			return nil, matchErr
		}
		if !excluded {
			paths = append(paths, match)
		}
	}

	if len(paths) == 0 {
		return nil, oops.
			Code("NO_INPUTS").
			With("pattern", pattern).
			Hint("Check the inputs glob in cpp2rst.toml or pass --inputs").
			Errorf("no input files match %q", pattern)
	}

	slices.Sort(paths)
	return paths, nil
}

func matchesAny(patterns []string, path string) (bool, error) {
	candidate := filepath.ToSlash(path)
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, candidate)
		if err != nil {
			return false, oops.
				Code("CONFIG_INVALID").
				With("pattern", pattern).
				Wrapf(err, "matching exclude pattern")
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// SplitLines splits file content into newline-free lines, dropping the
// empty trailing entry of newline-terminated files and any carriage
// returns from CRLF input.
func SplitLines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

type countingEmitter struct {
	next  scanner.Emitter
	count int
}

func (c *countingEmitter) Emit(d scanner.Decl) error {
	c.count++
	return c.next.Emit(d)
}
