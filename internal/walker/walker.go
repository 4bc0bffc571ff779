package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/scout/internal/ignore"
	"github.com/dshills/scout/pkg/types"
)

// Walker traverses one root and yields candidate files. A Walker is
// single-use: restart a search with a fresh one.
type Walker struct {
	root   string
	exts   map[string]bool // nil means all extensions
	filter *ignore.Filter
}

// New creates a walker over root. Extensions are expected in normalized
// form (lowercase, no leading dot); an empty set admits every file.
func New(root string, extensions []string, filter *ignore.Filter) *Walker {
	var exts map[string]bool
	if len(extensions) > 0 {
		exts = make(map[string]bool, len(extensions))
		for _, ext := range extensions {
			exts[ext] = true
		}
	}
	return &Walker{root: root, exts: exts, filter: filter}
}

// Walk materializes the candidate list in depth-first lexical order.
// Unreadable directories and unstattable entries become warnings, not
// errors; only a root that cannot be walked at all fails.
func (w *Walker) Walk() ([]string, []types.Warning, error) {
	var (
		paths    []string
		warnings []types.Warning
	)

	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		rel, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			rel = path
		}

		if err != nil {
			if path == w.root {
				return err
			}
			warnings = append(warnings, types.Warning{Path: rel, Err: err})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if rel == "." {
			w.filter.LoadDir(path, rel)
			return nil
		}

		if d.IsDir() {
			if hidden(d.Name()) || w.filter.Match(rel, true) {
				return filepath.SkipDir
			}
			w.filter.LoadDir(path, rel)
			return nil
		}

		if hidden(d.Name()) || w.filter.Match(rel, false) {
			return nil
		}
		if !w.wantExtension(d.Name()) {
			return nil
		}

		// WalkDir reports symlinks without following them; admit only
		// links that resolve to regular files.
		if d.Type()&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(path)
			if statErr != nil {
				warnings = append(warnings, types.Warning{Path: rel, Err: statErr})
				return nil
			}
			if !info.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, warnings, err
	}
	return paths, warnings, nil
}

// wantExtension applies the case-insensitive extension filter to a file
// name. A file without an extension only passes when the filter is "all".
func (w *Walker) wantExtension(name string) bool {
	if w.exts == nil {
		return true
	}
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return false
	}
	return w.exts[strings.ToLower(name[i+1:])]
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
