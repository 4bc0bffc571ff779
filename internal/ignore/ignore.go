package ignore

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// RuleFileName is the per-directory ignore-rule file the filter loads.
const RuleFileName = ".gitignore"

// vcsMetaDirs are skipped unconditionally, rule files or not.
var vcsMetaDirs = map[string]bool{
	".git": true,
	".hg":  true,
	".svn": true,
}

// Filter accumulates ignore rules as a walk descends from the search
// root. LoadDir must be called from the walking goroutine as each
// directory is entered; Match is read-only against the rules collected
// so far. Patterns are scoped to the directory their rule file lives in,
// so rules from an already-left subtree can never affect sibling paths.
//
// The filter is not safe for concurrent mutation, which is fine: only
// the single walking goroutine touches it, and it is discarded when the
// walk ends.
type Filter struct {
	patterns []gitignore.Pattern
	matcher  gitignore.Matcher
}

// New returns an empty filter for one search.
func New() *Filter {
	return &Filter{}
}

// LoadDir reads the rule file in relDir (relative to the search root,
// "." for the root itself) under dir (its absolute location) and appends
// its patterns scoped to relDir. A missing or unreadable rule file means
// no additional rules, never an error.
func (f *Filter) LoadDir(dir, relDir string) {
	content, err := os.ReadFile(filepath.Join(dir, RuleFileName))
	if err != nil {
		return
	}

	domain := splitPath(relDir)
	added := false
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f.patterns = append(f.patterns, gitignore.ParsePattern(line, domain))
		added = true
	}
	if added {
		// Matcher evaluation order is declaration order with last match
		// winning, which gives deeper rule files precedence because the
		// walk appends them later.
		f.matcher = gitignore.NewMatcher(f.patterns)
	}
}

// Match reports whether relPath (slash- or OS-separated, relative to the
// search root) should be skipped.
func (f *Filter) Match(relPath string, isDir bool) bool {
	segments := splitPath(relPath)
	if len(segments) == 0 {
		return false
	}
	for _, seg := range segments {
		if vcsMetaDirs[seg] {
			return true
		}
	}
	if f.matcher == nil {
		return false
	}
	return f.matcher.Match(segments, isDir)
}

func splitPath(p string) []string {
	p = strings.Trim(filepath.ToSlash(p), "/")
	if p == "" || p == "." {
		return nil
	}
	return strings.Split(p, "/")
}
