package tui

import "github.com/charmbracelet/lipgloss"

// Brand colors shared by both themes.
var (
	colorGreen = lipgloss.Color("#1DB954") // search accent, headings
	colorRed   = lipgloss.Color("#FF3A2F") // do-not-drive advice
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// theme groups the styles that change with the dark mode preference.
type theme struct {
	title    lipgloss.Style
	row      lipgloss.Style
	selected lipgloss.Style
	muted    lipgloss.Style
	heading  lipgloss.Style
	label    lipgloss.Style
	body     lipgloss.Style
	warn     lipgloss.Style
	footer   lipgloss.Style
}

func newTheme(dark bool) theme {
	fg := lipgloss.Color("#1C1C1E")
	surface := lipgloss.Color("#E5E5EA")
	muted := lipgloss.Color("#6E6E73")
	if dark {
		fg = lipgloss.Color("#EEEEEE")
		surface = lipgloss.Color("#2C2C2E")
		muted = lipgloss.Color("#8C8C8C")
	}

	return theme{
		title: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true).
			Padding(0, 1),
		row: lipgloss.NewStyle().
			Foreground(fg).
			PaddingLeft(1),
		selected: lipgloss.NewStyle().
			Foreground(fg).
			Background(surface).
			Bold(true),
		muted: lipgloss.NewStyle().
			Foreground(muted),
		heading: lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true),
		label: lipgloss.NewStyle().
			Foreground(fg).
			Underline(true),
		body: lipgloss.NewStyle().
			Foreground(fg).
			PaddingLeft(2),
		warn: lipgloss.NewStyle().
			Foreground(colorRed).
			PaddingLeft(2),
		footer: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
	}
}
