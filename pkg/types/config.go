package types

import "strings"

// SearchConfig describes a single search: where to look, what to look for,
// and how to match. It is constructed once by the caller and treated as
// read-only by the engine for the duration of the search.
type SearchConfig struct {
	// Root is the directory the search descends from.
	Root string

	// Pattern is the literal string or regular expression to search for.
	Pattern string

	// UseRegex compiles Pattern as a regular expression instead of
	// matching it as a literal substring.
	UseRegex bool

	// IgnoreCase makes matching case-insensitive in both modes.
	IgnoreCase bool

	// Extensions limits candidate files to these extensions (lowercase,
	// no leading dot). Nil or empty means all files are candidates.
	Extensions []string

	// Workers bounds the scan worker pool. Zero means one worker per CPU.
	Workers int
}

// Normalize returns a copy of the config with the extension filter in
// canonical form: lowercased, leading dots stripped, empties and the "*"
// wildcard removed. A filter that contained only wildcards becomes nil,
// meaning all files.
func (c SearchConfig) Normalize() SearchConfig {
	if len(c.Extensions) == 0 {
		return c
	}
	exts := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" || ext == "*" {
			continue
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		exts = nil
	}
	c.Extensions = exts
	return c
}

// Validate checks the parts of the config the engine cannot search without.
func (c SearchConfig) Validate() error {
	if c.Pattern == "" {
		return ErrEmptyPattern
	}
	if c.Root == "" {
		return ErrRootNotFound
	}
	return nil
}

// AllExtensions reports whether the extension filter admits every file.
func (c SearchConfig) AllExtensions() bool {
	return len(c.Extensions) == 0
}
