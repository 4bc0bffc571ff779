package types

// Span is a half-open byte-offset range [Start, End) locating one
// occurrence of the pattern within a line's text.
type Span struct {
	Start int
	End   int
}

// MatchRecord represents one matching line in one file. Records are
// created by scan workers and never mutated afterward.
type MatchRecord struct {
	// Path of the file, relative to the search root.
	Path string

	// Line is the 1-based line number within the file.
	Line int

	// Text is the line content without its terminator.
	Text string

	// Spans holds every occurrence of the pattern on the line, in
	// left-to-right order. Offsets index Text.
	Spans []Span
}

// Warning records a recoverable failure: an entry the search skipped
// without aborting, so callers can report that results are partial.
type Warning struct {
	Path string
	Err  error
}

func (w Warning) String() string {
	return w.Path + ": " + w.Err.Error()
}
