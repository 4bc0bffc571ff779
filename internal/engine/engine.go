package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/scout/internal/ignore"
	"github.com/dshills/scout/internal/pattern"
	"github.com/dshills/scout/internal/scanner"
	"github.com/dshills/scout/internal/walker"
	"github.com/dshills/scout/pkg/types"
)

// Engine runs searches. The zero value is not useful; use New.
type Engine struct {
	workers int
}

// Result aggregates everything one search produced.
type Result struct {
	// Matches across all files, sorted by path then line number.
	Matches []types.MatchRecord

	// FilesScanned counts files whose content was searched.
	FilesScanned int

	// FilesSkipped counts files passed over: binary detection plus
	// read failures.
	FilesSkipped int

	// Warnings records recoverable failures (unreadable directories and
	// files). Binary skips carry no warning.
	Warnings []types.Warning

	Duration time.Duration
}

// New creates an Engine. Pool size comes from the SearchConfig at Run
// time, so one Engine can serve differently-sized searches.
func New() *Engine {
	return &Engine{}
}

// Run executes one search. It returns an error only for conditions that
// abort before any file I/O: an invalid config, an uncompilable regex, a
// root that is missing or not a directory, or a cancelled context.
func (e *Engine) Run(ctx context.Context, cfg types.SearchConfig) (*Result, error) {
	start := time.Now()

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkRoot(cfg.Root); err != nil {
		return nil, err
	}

	compiled, err := pattern.Compile(cfg.Pattern, cfg.UseRegex, cfg.IgnoreCase)
	if err != nil {
		return nil, err
	}

	w := walker.New(cfg.Root, cfg.Extensions, ignore.New())
	paths, walkWarnings, err := w.Walk()
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", cfg.Root, err)
	}

	res := &Result{Warnings: walkWarnings}
	if err := e.scanAll(ctx, cfg, compiled, paths, res); err != nil {
		return nil, err
	}

	sort.Slice(res.Matches, func(i, j int) bool {
		if res.Matches[i].Path != res.Matches[j].Path {
			return res.Matches[i].Path < res.Matches[j].Path
		}
		return res.Matches[i].Line < res.Matches[j].Line
	})

	res.Duration = time.Since(start)
	return res, nil
}

// scanAll fans the candidate paths out across the worker pool and
// aggregates records, counters, and warnings into res.
func (e *Engine) scanAll(ctx context.Context, cfg types.SearchConfig, compiled *pattern.Compiled, paths []string, res *Result) error {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		scanned int32
		skipped int32
		mu      sync.Mutex // guards res.Matches and res.Warnings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, rel := range paths {
		rel := rel
		select {
		case <-gctx.Done():
			// Abandon outstanding work; in-flight scans finish on their
			// own and the counters stay consistent.
			_ = g.Wait()
			return gctx.Err()
		default:
		}

		g.Go(func() error {
			records, err := scanner.Scan(filepath.Join(cfg.Root, rel), rel, compiled)
			if err != nil {
				atomic.AddInt32(&skipped, 1)
				if !errors.Is(err, types.ErrBinaryFile) {
					mu.Lock()
					res.Warnings = append(res.Warnings, types.Warning{Path: rel, Err: err})
					mu.Unlock()
				}
				// A failed file never fails its siblings.
				return nil
			}
			atomic.AddInt32(&scanned, 1)
			if len(records) > 0 {
				mu.Lock()
				res.Matches = append(res.Matches, records...)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	res.FilesScanned = int(scanned)
	res.FilesSkipped = int(skipped)
	return nil
}

// checkRoot re-validates the root right before scanning starts; the CLI
// checks too, but the directory can vanish between validation and here.
func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", types.ErrRootNotFound, root)
		}
		return fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", types.ErrNotDirectory, root)
	}
	return nil
}
