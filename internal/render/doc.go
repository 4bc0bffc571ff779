// Package render formats engine results for the terminal: colored
// path:line headers, highlighted match spans, and a summary that
// includes skipped-file counts so partial results are visible. Color is
// disabled automatically when stdout is not a terminal.
package render
