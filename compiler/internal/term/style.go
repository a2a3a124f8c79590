package term

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color modes accepted by NewStyles.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Styles groups the lipgloss styles used for diagnostics and token dumps.
// The zero value renders plain text.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Note    lipgloss.Style
	Code    lipgloss.Style
	Gutter  lipgloss.Style
	Caret   lipgloss.Style
	Help    lipgloss.Style
	Kind    lipgloss.Style
	Faint   lipgloss.Style
}

// NewStyles builds styles bound to w. ColorAuto colours only when w is a
// terminal; ColorNever returns plain styles.
func NewStyles(w io.Writer, mode string) Styles {
	if mode == ColorNever {
		return Plain()
	}
	r := lipgloss.NewRenderer(w)
	if mode == ColorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}
	return Styles{
		Error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Warning: r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Note:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Code:    r.NewStyle().Bold(true),
		Gutter:  r.NewStyle().Foreground(lipgloss.Color("12")),
		Caret:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Help:    r.NewStyle().Foreground(lipgloss.Color("14")),
		Kind:    r.NewStyle().Foreground(lipgloss.Color("13")),
		Faint:   r.NewStyle().Faint(true),
	}
}

// Plain returns styles that leave text untouched.
func Plain() Styles {
	s := lipgloss.NewStyle()
	return Styles{s, s, s, s, s, s, s, s, s}
}

// Paint renders text with st, skipping empty strings so padding stays exact.
func Paint(st lipgloss.Style, text string) string {
	if text == "" {
		return ""
	}
	return st.Render(text)
}
