package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pbaille/dashalert/internal/domain"
)

// renderDetail lays out every cause of a sign for the detail viewport.
func renderDetail(t theme, sign domain.Category, width int) string {
	wrap := lipgloss.NewStyle()
	if width > 4 {
		wrap = wrap.Width(width - 4)
	}

	var b strings.Builder
	b.WriteString(t.title.Render(sign.Name))
	b.WriteString("\n")
	if sign.IconRef != "" {
		b.WriteString(t.muted.Render("  icon: " + sign.IconRef))
		b.WriteString("\n")
	}

	for _, e := range sign.Entries {
		b.WriteString("\n")
		b.WriteString(t.heading.Render(e.Name))
		b.WriteString("\n")

		section(&b, t, wrap, "Description:", e.Description, t.body)
		section(&b, t, wrap, "Solution:", e.Remedy, t.body)
		if e.ContinueDriving != "" {
			style := t.body
			if strings.HasPrefix(e.ContinueDriving, "No") {
				style = t.warn
			}
			section(&b, t, wrap, "Can I keep driving?", e.ContinueDriving, style)
		}
		if cost := e.CostLabel(); cost != "" {
			section(&b, t, wrap, "Average Repair Cost:", cost, t.body)
		}
	}

	return b.String()
}

func section(b *strings.Builder, t theme, wrap lipgloss.Style, label, text string, style lipgloss.Style) {
	b.WriteString(t.label.Render(label))
	b.WriteString("\n")
	b.WriteString(style.Render(wrap.Render(text)))
	b.WriteString("\n")
}
