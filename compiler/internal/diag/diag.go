package diag

import (
	"fmt"
	"sort"
	"strings"
)

// Pos marks a 1-based line/column location in a file. Col 0 means unknown.
type Pos struct{ Line, Col int }

// Span marks a half-open range [Start, End) within a file.
type Span struct {
	Start Pos
	End   Pos
}

// At returns a span covering width bytes starting at line:col.
func At(line, col, width int) Span {
	if width < 1 {
		width = 1
	}
	return Span{Start: Pos{line, col}, End: Pos{line, col + width}}
}

type Severity string

const (
	SevError   Severity = "error"
	SevWarning Severity = "warning"
	SevNote    Severity = "note"
)

// Diagnostic is a front-end message with an optional span. Code and Help are
// filled from the catalog by Resolve.
type Diagnostic struct {
	Severity Severity
	Code     string // e.g. "LEX0002"
	Key      string // catalog key, e.g. "unterminated_string"
	Span     Span
	Msg      string
	Help     string
}

func (d Diagnostic) Error() string {
	if d.Span.Start.Line == 0 {
		return d.Msg
	}
	if d.Span.Start.Col == 0 {
		return fmt.Sprintf("%d: %s", d.Span.Start.Line, d.Msg)
	}
	return fmt.Sprintf("%d:%d: %s", d.Span.Start.Line, d.Span.Start.Col, d.Msg)
}

// Resolve fills Code and Help from the catalog entry for (domain, d.Key)
// unless they are already set.
func (d Diagnostic) Resolve(domain string) Diagnostic {
	if d.Severity == "" {
		d.Severity = SevError
	}
	if d.Key == "" {
		return d
	}
	ce, ok := Lookup(domain, d.Key)
	if !ok {
		return d
	}
	if d.Code == "" {
		d.Code = ce.ID
	}
	if d.Help == "" {
		d.Help = ce.Help
	}
	return d
}

// List is an ordered collection of diagnostics usable as an error.
type List []Diagnostic

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	for i, d := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Error())
	}
	return b.String()
}

// Err returns nil for an empty list, else the list itself.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Sort orders diagnostics by position; equal positions keep their order.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		a, b := l[i].Span.Start, l[j].Span.Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Col < b.Col
	})
}
