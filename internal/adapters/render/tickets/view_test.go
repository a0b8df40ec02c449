package tickets

import (
	"strings"
	"testing"

	"github.com/bnema/cognisupport/internal/domain"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func seed() []domain.Ticket {
	return []domain.Ticket{
		{ID: 103, Title: "Printer jamming on 3rd floor", Category: "Hardware", Priority: domain.PriorityLow, Status: domain.StatusNew},
		{ID: 102, Title: "Need access to Jira", Category: "Account Access", Priority: domain.PriorityMedium, Status: domain.StatusResolved},
		{ID: 101, Title: "Laptop won't turn on", Category: "Hardware", Priority: domain.PriorityHigh, Status: domain.StatusOpen},
	}
}

func TestRenderTicketTable(t *testing.T) {
	t.Parallel()

	plain := ansi.Strip(RenderTable(seed(), RenderOptions{}))
	assert.Contains(t, plain, "tickets: 3")
	assert.Contains(t, plain, "Issue")
	assert.Contains(t, plain, "#103")
	assert.Contains(t, plain, "Need access to Jira")
	assert.Contains(t, plain, "Account Access")
	assert.Contains(t, plain, "Resolved")

	first := strings.Index(plain, "#103")
	last := strings.Index(plain, "#101")
	assert.Less(t, first, last, "rows keep newest-first order")
}

func TestRenderTableEmpty(t *testing.T) {
	t.Parallel()

	plain := ansi.Strip(RenderTable(nil, RenderOptions{}))
	assert.Contains(t, plain, "tickets: 0")
	assert.Contains(t, plain, "No tickets yet.")
}

func TestRenderTableTruncatesLongTitles(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("VPN drops every few minutes ", 4)
	plain := ansi.Strip(RenderTable([]domain.Ticket{
		{ID: 7, Title: long, Category: "Network", Priority: domain.PriorityHigh, Status: domain.StatusNew},
	}, RenderOptions{}))

	assert.NotContains(t, plain, long)
	assert.Contains(t, plain, truncationTail)
}

func TestTableColumnsFitWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "default layout", width: 0, want: defaultIssueWidth},
		{name: "wide terminal", width: 120, want: 120 - (6 + 16 + 9 + 12 + 4)},
		{name: "narrow terminal keeps minimum", width: 40, want: minIssueWidth},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tableColumns(tc.width)[issueColumn].width)
		})
	}
}

func TestRenderPanelStates(t *testing.T) {
	t.Parallel()

	insight := &domain.Insight{Category: "Network", Priority: domain.PriorityHigh, Confidence: "92%"}

	tests := []struct {
		name    string
		panel   Panel
		want    []string
		wantNot []string
	}{
		{
			name:  "empty form shows placeholder",
			panel: Panel{State: domain.LifecycleAnalyzing, Insight: insight},
			want:  []string{PlaceholderText},
		},
		{
			name:    "analyzing shows skeleton",
			panel:   Panel{Form: domain.FormInput{Title: "VPN down"}, State: domain.LifecycleAnalyzing, Spinner: "*"},
			want:    []string{"AI is thinking..."},
			wantNot: []string{PendingText},
		},
		{
			name:  "resolved shows card",
			panel: Panel{Form: domain.FormInput{Title: "VPN down"}, State: domain.LifecycleResolved, Insight: insight},
			want:  []string{"Network", "High", "92%", "Ticket will be auto-routed to the Network Team."},
		},
		{
			name:  "failed falls back to pending text",
			panel: Panel{Form: domain.FormInput{Title: "VPN down"}, State: domain.LifecycleFailed},
			want:  []string{PendingText},
		},
		{
			name:  "idle with input falls back to pending text",
			panel: Panel{Form: domain.FormInput{Description: "abc"}, State: domain.LifecycleIdle},
			want:  []string{PendingText},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			plain := ansi.Strip(RenderPanel(tc.panel))
			for _, want := range tc.want {
				assert.Contains(t, plain, want)
			}
			for _, wantNot := range tc.wantNot {
				assert.NotContains(t, plain, wantNot)
			}
		})
	}
}

func TestRenderInsightWithoutConfidence(t *testing.T) {
	t.Parallel()

	plain := ansi.Strip(RenderInsight(domain.Insight{Category: "Software", Priority: domain.PriorityLow}))
	assert.Contains(t, plain, "Confidence: n/a")
	assert.Contains(t, plain, "Software Team")
}
