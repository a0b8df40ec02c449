package tickets

import (
	"github.com/bnema/cognisupport/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	id          lipgloss.Style
	cell        lipgloss.Style
	empty       lipgloss.Style
	placeholder lipgloss.Style
	skeleton    lipgloss.Style
	card        lipgloss.Style
	cardLabel   lipgloss.Style
	category    lipgloss.Style
	routing     lipgloss.Style
	high        lipgloss.Style
	medium      lipgloss.Style
	low         lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")),
		id:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		cell:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:       lipgloss.NewStyle().Faint(true),
		placeholder: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		skeleton:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
		cardLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		category:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		routing:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		high:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		medium:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		low:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
	}
}

func (s styles) priority(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return s.high
	case domain.PriorityMedium:
		return s.medium
	default:
		return s.low
	}
}
