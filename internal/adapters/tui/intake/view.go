package intake

import (
	"github.com/bnema/cognisupport/internal/adapters/render/tickets"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	focused lipgloss.Style
	section lipgloss.Style
	notice  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		focused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		section: lipgloss.NewStyle().MarginTop(1),
		notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	}
}

func (m Model) View() string {
	insight, hasInsight := m.session.Insight()
	panel := tickets.Panel{
		Form:    m.session.Form(),
		State:   m.session.State(),
		Spinner: m.spinner.View(),
	}
	if hasInsight {
		panel.Insight = &insight
	}

	parts := []string{
		m.styles.title.Render("New Support Ticket"),
		m.styles.section.Render(m.fieldLabel("Issue Title", fieldTitle)),
		m.title.View(),
		m.styles.section.Render(m.fieldLabel("Description", fieldDescription)),
		m.description.View(),
		m.styles.section.Render(m.styles.label.Render("AI Insight")),
		tickets.RenderPanel(panel),
	}
	if m.notice != "" {
		parts = append(parts, m.styles.notice.Render(m.notice))
	}
	parts = append(parts,
		m.styles.section.Render(tickets.RenderTable(m.session.Tickets(), tickets.RenderOptions{Width: m.width})),
		m.styles.section.Render(m.help.View(m.keys)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) fieldLabel(text string, f field) string {
	if m.focus == f {
		return m.styles.focused.Render("> " + text)
	}
	return m.styles.label.Render("  " + text)
}
