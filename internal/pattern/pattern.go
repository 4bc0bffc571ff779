package pattern

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/scout/pkg/types"
)

// Compiled is a search pattern ready for per-line matching. It is
// immutable after Compile and safe for concurrent use by scan workers.
type Compiled struct {
	re         *regexp.Regexp // nil in literal mode
	literal    string
	litRunes   []rune // pattern runes, used by the case-folding scan
	ignoreCase bool
}

// Compile builds a Compiled pattern. Regex compilation failure is
// reported here so a malformed pattern fails the search before any file
// I/O happens.
func Compile(pat string, useRegex, ignoreCase bool) (*Compiled, error) {
	if pat == "" {
		return nil, types.ErrEmptyPattern
	}
	if !useRegex {
		c := &Compiled{literal: pat, ignoreCase: ignoreCase}
		if ignoreCase {
			c.litRunes = []rune(pat)
		}
		return c, nil
	}

	expr := pat
	if ignoreCase {
		// Case-insensitivity as a compile option keeps reported spans
		// aligned with the original line text.
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", pat, err)
	}
	return &Compiled{re: re, ignoreCase: ignoreCase}, nil
}

// Match returns the spans of every occurrence of the pattern in line,
// left to right. It returns nil when the line does not match.
func (c *Compiled) Match(line string) []types.Span {
	switch {
	case c.re != nil:
		return c.matchRegex(line)
	case c.ignoreCase:
		return c.matchFold(line)
	default:
		return c.matchLiteral(line)
	}
}

func (c *Compiled) matchRegex(line string) []types.Span {
	idx := c.re.FindAllStringIndex(line, -1)
	if len(idx) == 0 {
		return nil
	}
	spans := make([]types.Span, len(idx))
	for i, m := range idx {
		spans[i] = types.Span{Start: m[0], End: m[1]}
	}
	return spans
}

func (c *Compiled) matchLiteral(line string) []types.Span {
	var spans []types.Span
	for start := 0; ; {
		i := strings.Index(line[start:], c.literal)
		if i < 0 {
			break
		}
		at := start + i
		spans = append(spans, types.Span{Start: at, End: at + len(c.literal)})
		start = at + len(c.literal)
	}
	return spans
}

// matchFold scans the original line rune by rune, comparing against the
// pattern under Unicode simple folding. Spans are byte offsets into the
// original line, never into a folded copy, so case folds that change
// encoded length cannot misalign them.
func (c *Compiled) matchFold(line string) []types.Span {
	var spans []types.Span
	for i := 0; i < len(line); {
		end, ok := c.foldMatchAt(line, i)
		if ok {
			spans = append(spans, types.Span{Start: i, End: end})
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(line[i:])
		i += size
	}
	return spans
}

// foldMatchAt reports whether the pattern fold-matches line starting at
// byte offset i, and if so the byte offset just past the match.
func (c *Compiled) foldMatchAt(line string, i int) (int, bool) {
	j := i
	for _, pr := range c.litRunes {
		if j >= len(line) {
			return 0, false
		}
		lr, size := utf8.DecodeRuneInString(line[j:])
		if !foldEqual(pr, lr) {
			return 0, false
		}
		j += size
	}
	return j, true
}

// foldEqual reports whether two runes are equal under Unicode simple
// case folding.
func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
