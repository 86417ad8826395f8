package cli

import "github.com/charmbracelet/lipgloss"

// styles paints headings and statuses in text output. A disabled styles
// returns text unchanged.
type styles struct {
	enabled bool
	heading lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(enabled bool) styles {
	return styles{
		enabled: enabled,
		heading: lipgloss.NewStyle().Bold(true),
		good:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		bad:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s styles) paint(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

func (s styles) Heading(text string) string { return s.paint(s.heading, text) }

func (s styles) Good(text string) string { return s.paint(s.good, text) }

func (s styles) Bad(text string) string { return s.paint(s.bad, text) }

func (s styles) Muted(text string) string { return s.paint(s.muted, text) }

func (a *App) styles() styles {
	return newStyles(a.useColor())
}
