// File: preprocessor.go
// Role: turns raw BLIF text into logical lines: strip comments, join
// backslash-continued lines, drop blank lines.
package blif

import (
	"bufio"
	"io"
	"strings"
)

// logicalLine is one dispatch-ready line plus the physical line number
// where it started, for error reporting.
type logicalLine struct {
	text string
	line int
}

// stripComment truncates s at the first unescaped '#': anything from an
// unescaped '#' to end-of-line is discarded. A '#' preceded by a
// backslash is treated as literal text, not a comment marker.
func stripComment(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '#' && (i == 0 || s[i-1] != '\\') {
			return s[:i]
		}
	}
	return s
}

// preprocess reads raw BLIF text and returns the logical lines the
// dispatcher operates on: comments stripped, backslash-continuations
// joined by a single space, blank/whitespace-only lines dropped.
func preprocess(r io.Reader) ([]logicalLine, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var out []logicalLine
	var pending strings.Builder
	pendingStart := 0
	physLine := 0

	flush := func() {
		if pendingStart == 0 {
			return
		}
		if text := strings.TrimSpace(pending.String()); text != "" {
			out = append(out, logicalLine{text: text, line: pendingStart})
		}
		pending.Reset()
		pendingStart = 0
	}

	for scanner.Scan() {
		physLine++
		stripped := strings.TrimRight(stripComment(scanner.Text()), " \t")

		continued := strings.HasSuffix(stripped, `\`)
		body := stripped
		if continued {
			body = strings.TrimSuffix(body, `\`)
		}

		if pendingStart == 0 {
			pendingStart = physLine
		} else {
			pending.WriteByte(' ')
		}
		pending.WriteString(strings.TrimSpace(body))

		if !continued {
			flush()
		}
	}
	flush()

	return out, scanner.Err()
}
