package tickets

import (
	"fmt"
	"strings"

	"github.com/bnema/cognisupport/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	PlaceholderText = "Start typing to see AI insights..."
	PendingText     = "Analyzing input..."

	truncationTail = "…"
)

const (
	issueColumn       = 1
	defaultIssueWidth = 34
	minIssueWidth     = 12
)

type column struct {
	title string
	width int
}

// tableColumns sizes the Issue column to fill width. A width of zero keeps
// the default layout.
func tableColumns(width int) []column {
	columns := []column{
		{title: "ID", width: 6},
		{title: "Issue", width: defaultIssueWidth},
		{title: "Category", width: 16},
		{title: "Priority", width: 9},
		{title: "Status", width: 12},
	}
	if width <= 0 {
		return columns
	}

	fixed := len(columns) - 1
	for i, c := range columns {
		if i != issueColumn {
			fixed += c.width
		}
	}
	columns[issueColumn].width = max(width-fixed, minIssueWidth)

	return columns
}

// Panel is everything the insight panel needs to pick what it shows.
type Panel struct {
	Form    domain.FormInput
	State   domain.LifecycleState
	Insight *domain.Insight
	Spinner string
}

type RenderOptions struct {
	// Width is the terminal width the table should fit. Zero means the
	// default column layout.
	Width int
}

// RenderTable renders the collection in the order given, newest first.
func RenderTable(tickets []domain.Ticket, opts RenderOptions) string {
	return renderTable(tickets, opts, newStyles())
}

// RenderPanel renders the insight panel for the current form state.
func RenderPanel(panel Panel) string {
	return renderPanel(panel, newStyles())
}

// RenderInsight renders a resolved insight as a card.
func RenderInsight(insight domain.Insight) string {
	return renderCard(insight, newStyles())
}

// RoutingNote is the sentence shown under a resolved insight.
func RoutingNote(insight domain.Insight) string {
	return fmt.Sprintf("Ticket will be auto-routed to the %s.", insight.RoutingTeam())
}

func renderTable(tickets []domain.Ticket, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Recent Tickets"),
		s.header.Render(fmt.Sprintf("tickets: %d", len(tickets))),
	}

	if len(tickets) == 0 {
		lines = append(lines, s.empty.Render("No tickets yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	columns := tableColumns(opts.Width)
	headers := make([]string, 0, len(columns))
	for _, c := range columns {
		headers = append(headers, cell(c.title, c.width, s.header))
	}
	lines = append(lines, strings.Join(headers, " "))

	for _, ticket := range tickets {
		lines = append(lines, renderRow(ticket, columns, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRow(ticket domain.Ticket, columns []column, s styles) string {
	values := []struct {
		text  string
		style lipgloss.Style
	}{
		{text: fmt.Sprintf("#%d", ticket.ID), style: s.id},
		{text: ticket.Title, style: s.cell},
		{text: ticket.Category, style: s.cell},
		{text: string(ticket.Priority), style: s.priority(ticket.Priority)},
		{text: string(ticket.Status), style: s.cell},
	}

	cells := make([]string, 0, len(values))
	for i, value := range values {
		cells = append(cells, cell(value.text, columns[i].width, value.style))
	}

	return strings.Join(cells, " ")
}

func cell(text string, width int, style lipgloss.Style) string {
	return style.Width(width).Render(ansi.Truncate(text, width, truncationTail))
}

func renderPanel(panel Panel, s styles) string {
	switch {
	case panel.Form.Empty():
		return s.placeholder.Render(PlaceholderText)
	case panel.State == domain.LifecycleAnalyzing:
		return renderSkeleton(panel.Spinner, s)
	case panel.State == domain.LifecycleResolved && panel.Insight != nil:
		return renderCard(*panel.Insight, s)
	default:
		return s.placeholder.Render(PendingText)
	}
}

func renderSkeleton(spinner string, s styles) string {
	bar := s.skeleton.Render(strings.Repeat("░", 18))
	lines := []string{
		strings.TrimSpace(spinner + " " + s.placeholder.Render("AI is thinking...")),
		bar,
		bar,
	}

	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderCard(insight domain.Insight, s styles) string {
	confidence := insight.Confidence
	if confidence == "" {
		confidence = "n/a"
	}

	lines := []string{
		s.cardLabel.Render("Category:   ") + s.category.Render(insight.Category),
		s.cardLabel.Render("Priority:   ") + s.priority(insight.Priority).Render(string(insight.Priority)),
		s.cardLabel.Render("Confidence: ") + s.cell.Render(confidence),
		s.routing.Render(RoutingNote(insight)),
	}

	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
