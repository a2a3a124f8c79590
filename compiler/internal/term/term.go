package term

import (
	"fmt"
	"io"
	"strings"
)

// Print helpers that ignore (n, err); output to a terminal or buffer has no
// useful recovery path.

func Wprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }
func Wprintln(w io.Writer, a ...any)               { _, _ = fmt.Fprintln(w, a...) }
func Bprintf(b *strings.Builder, format string, a ...any) {
	_, _ = fmt.Fprintf(b, format, a...)
}

// Clip shortens s to at most n bytes, marking the cut with "...".
func Clip(s string, n int) string {
	if n <= 3 || len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// OneLine escapes newlines and tabs for single-line display.
func OneLine(s string) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	return strings.ReplaceAll(s, "\t", "\\t")
}
