// Package types provides shared type definitions for the scout search engine.
//
// This package defines the domain types that cross component boundaries:
// the search configuration handed to the engine, the match records it
// produces, and the warnings it accumulates for recoverable failures.
//
// # Core Types
//
// SearchConfig describes one search and is immutable for its duration:
//
//	cfg := types.SearchConfig{
//	    Root:       "/path/to/project",
//	    Pattern:    "TODO",
//	    Extensions: []string{"go", "md"},
//	}
//
// MatchRecord represents one matching line, with byte-offset spans for
// every occurrence of the pattern on that line:
//
//	rec := types.MatchRecord{
//	    Path:  "internal/engine/engine.go",
//	    Line:  42,
//	    Text:  "// TODO tighten this bound",
//	    Spans: []types.Span{{Start: 3, End: 7}},
//	}
//
// Spans always index the original line text, so a renderer can slice the
// line directly to apply highlighting.
package types
