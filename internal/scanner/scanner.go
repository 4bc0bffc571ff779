package scanner

import (
	"bytes"
	"os"
	"strings"

	"github.com/dshills/scout/internal/pattern"
	"github.com/dshills/scout/pkg/types"
)

// binarySniffLen is how much of a file's head is inspected for NUL
// bytes before treating it as text.
const binarySniffLen = 8192

// Scan reads the file at path and returns one MatchRecord per matching
// line, in line order. relPath is the path recorded on the records.
// Binary files return types.ErrBinaryFile; I/O failures return the
// underlying error. Both are the engine's to classify.
func Scan(path, relPath string, p *pattern.Compiled) ([]types.MatchRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isBinary(content) {
		return nil, types.ErrBinaryFile
	}

	var records []types.MatchRecord
	text := string(content)
	for lineNo := 1; text != ""; lineNo++ {
		var line string
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			line, text = text, ""
		}
		// CRLF terminators: the CR belongs to the terminator, not the
		// line, so spans index the logical line text.
		line = strings.TrimSuffix(line, "\r")

		spans := p.Match(line)
		if len(spans) == 0 {
			continue
		}
		records = append(records, types.MatchRecord{
			Path:  relPath,
			Line:  lineNo,
			Text:  line,
			Spans: spans,
		})
	}
	return records, nil
}

// isBinary reports whether content looks like binary data: a NUL byte
// within the inspected head.
func isBinary(content []byte) bool {
	head := content
	if len(head) > binarySniffLen {
		head = head[:binarySniffLen]
	}
	return bytes.IndexByte(head, 0) >= 0
}
