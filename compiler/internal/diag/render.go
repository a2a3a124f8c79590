package diag

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/desilang/lox/compiler/internal/term"
)

// Render writes d in rustc style:
//
//	error[LEX0002]: unterminated string
//	 --> demo.lox:2:1
//	 2 | "abc
//	   | ^ add a closing '"'
//
// src is the file contents; when nil or the line is out of range only the
// header and help are printed.
func Render(w io.Writer, d Diagnostic, file string, src []byte, st term.Styles) {
	sev := d.Severity
	if sev == "" {
		sev = SevError
	}
	head := string(sev)
	if d.Code != "" {
		head += "[" + d.Code + "]"
	}
	term.Wprintf(w, "%s: %s\n", term.Paint(severityStyle(sev, st), head), term.Paint(st.Code, d.Msg))

	p := d.Span.Start
	if file != "" && p.Line > 0 {
		if p.Col > 0 {
			term.Wprintf(w, " %s %s:%d:%d\n", term.Paint(st.Gutter, "-->"), file, p.Line, p.Col)
		} else {
			term.Wprintf(w, " %s %s:%d\n", term.Paint(st.Gutter, "-->"), file, p.Line)
		}
	}

	printedCaret := false
	if lineText, ok := lineAt(src, p.Line); ok {
		ln := strconv.Itoa(p.Line)
		linePrefix := " " + ln + " | "
		underPrefix := " " + strings.Repeat(" ", len(ln)) + " | "
		term.Wprintf(w, "%s%s\n", term.Paint(st.Gutter, linePrefix), visualize(lineText))
		if p.Col > 0 {
			term.Wprintf(w, "%s%s\n", term.Paint(st.Gutter, underPrefix),
				underline(lineText, p.Col, endCol(d.Span), d.Help, st))
			printedCaret = true
		}
	}
	if !printedCaret && strings.TrimSpace(d.Help) != "" {
		term.Wprintf(w, "%s %s\n", term.Paint(st.Help, "help:"), d.Help)
	}
}

// RenderAll renders ds separated by blank lines.
func RenderAll(w io.Writer, ds []Diagnostic, file string, src []byte, st term.Styles) {
	for i, d := range ds {
		if i > 0 {
			term.Wprintln(w)
		}
		Render(w, d, file, src, st)
	}
}

func severityStyle(s Severity, st term.Styles) lipgloss.Style {
	switch s {
	case SevWarning:
		return st.Warning
	case SevNote:
		return st.Note
	default:
		return st.Error
	}
}

func endCol(sp Span) int {
	if sp.End.Line != sp.Start.Line {
		return 0
	}
	return sp.End.Col
}

func underline(line string, col, end int, label string, st term.Styles) string {
	vis := visualize(line)
	start := clamp(col-1, 0, len(vis))
	stop := start + 1
	if end > col {
		stop = clamp(end-1, start+1, len(vis)+1)
	}
	mark := "^" + strings.Repeat("~", stop-start-1)
	out := strings.Repeat(" ", start) + term.Paint(st.Caret, mark)
	if strings.TrimSpace(label) != "" {
		out += " " + term.Paint(st.Help, label)
	}
	return out
}

// lineAt returns the n-th (1-based) line of src without its terminator.
func lineAt(src []byte, n int) (string, bool) {
	if src == nil || n <= 0 {
		return "", false
	}
	for i := 1; ; i++ {
		j := bytes.IndexByte(src, '\n')
		if i == n {
			if j < 0 {
				return strings.TrimSuffix(string(src), "\r"), true
			}
			return strings.TrimSuffix(string(src[:j]), "\r"), true
		}
		if j < 0 {
			return "", false
		}
		src = src[j+1:]
	}
}

// visualize replaces tabs with single spaces so caret columns line up with
// byte columns.
func visualize(s string) string { return strings.ReplaceAll(s, "\t", " ") }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
