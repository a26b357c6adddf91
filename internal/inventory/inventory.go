package inventory

import (
	"context"
	"os"

	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"

	"github.com/rstkit/cpp2rst/internal/extract"
	"github.com/rstkit/cpp2rst/internal/scanner"
)

const defaultMaxParallel = 4

// FileStat describes one input file the current glob resolves to.
type FileStat struct {
	Path  string `json:"path"`
	Size  int64  `json:"size"`
	Lines int    `json:"lines"`
	Decls int    `json:"declarations"`
}

// Collect gathers per-file stats for paths, at most maxParallel files at
// a time. Results keep the order of paths. Gathering stats runs a dry
// scan per file; nothing is written anywhere.
func Collect(ctx context.Context, paths []string, maxParallel int) ([]FileStat, error) {
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}

	stats := make([]FileStat, len(paths))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallel)

	for i, path := range paths {
		group.Go(func() error {
			if ctxErr := groupCtx.Err(); ctxErr != nil {
				return ctxErr
			}

			stat, err := collectFile(path)
			if err != nil {
				return err
			}

			stats[i] = *stat
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

func collectFile(path string) (*FileStat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, oops.
			Code("READ_FAILED").
			With("path", path).
			Wrapf(err, "inspecting input file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.
			Code("READ_FAILED").
			With("path", path).
			Wrapf(err, "reading input file")
	}

	lines := extract.SplitLines(data)

	declCount := 0
	countErr := scanner.Scan(lines, scanner.EmitterFunc(func(scanner.Decl) error {
		declCount++
		return nil
	}))
	if countErr != nil {
		return nil, countErr
	}

	return &FileStat{
		Path:  path,
		Size:  info.Size(),
		Lines: len(lines),
		Decls: declCount,
	}, nil
}
