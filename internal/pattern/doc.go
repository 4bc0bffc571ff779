// Package pattern compiles a search pattern once and matches it against
// lines, reporting every occurrence as a byte-offset span.
//
// Two modes are supported. Literal mode finds non-overlapping substring
// occurrences; regex mode uses the standard regexp engine. In both modes
// case-insensitivity is a compile-time property, never a per-line text
// transform, so spans always index the original line.
//
//	p, err := pattern.Compile("error", false, true)
//	if err != nil {
//	    return err
//	}
//	spans := p.Match("Error: ERROR")  // [{0 5} {7 12}]
package pattern
