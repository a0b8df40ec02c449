package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibleGrid(t *testing.T) {
	t.Parallel()

	for titleLen := 0; titleLen <= 4; titleLen++ {
		for descriptionLen := 0; descriptionLen <= 6; descriptionLen++ {
			title := strings.Repeat("t", titleLen)
			description := strings.Repeat("d", descriptionLen)

			want := (titleLen > 0 || descriptionLen > 0) && (titleLen > 3 || descriptionLen > 5)
			assert.Equal(t, want, Eligible(title, description), "title=%d description=%d", titleLen, descriptionLen)
		}
	}
}

func TestEligibleEdges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		title       string
		description string
		want        bool
	}{
		{name: "four character title alone", title: "abcd", want: true},
		{name: "three character title alone", title: "abc", want: false},
		{name: "five character description alone", description: "abcde", want: false},
		{name: "six character description alone", description: "abcdef", want: true},
		{name: "short title with long description", title: "ab", description: "abcdef", want: true},
		{name: "multibyte title under gate", title: "abé", want: false},
		{name: "multibyte title at gate", title: "café", want: true},
		{name: "multibyte description under gate", description: "crasé", want: false},
		{name: "multibyte description at gate", description: "écrasé", want: true},
		{name: "both empty", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Eligible(tc.title, tc.description))
		})
	}
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	got, err := ParsePriority(" high ")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, got)

	_, err = ParsePriority("urgent")
	require.ErrorIs(t, err, ErrUnknownPriority)
}

func TestInsightValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Insight{Category: "Network", Priority: PriorityHigh, Confidence: "0.92"}.Validate())

	err := Insight{Priority: PriorityLow}.Validate()
	require.ErrorIs(t, err, ErrMalformedInsight)

	err = Insight{Category: "Network", Priority: "Critical"}.Validate()
	require.ErrorIs(t, err, ErrMalformedInsight)
	require.ErrorIs(t, err, ErrUnknownPriority)
}

func TestTicketCollectionPrependKeepsNewestFirst(t *testing.T) {
	t.Parallel()

	original := TicketCollection{{ID: 102}, {ID: 101}}
	next := original.Prepend(Ticket{ID: 103})

	require.Len(t, next, 3)
	assert.Equal(t, TicketID(103), next[0].ID)
	assert.Equal(t, TicketCollection{{ID: 102}, {ID: 101}}, original)
	assert.Equal(t, TicketID(103), next.MaxID())
	assert.True(t, next.Contains(101))
	assert.False(t, next.Contains(104))
}

func TestTicketValidate(t *testing.T) {
	t.Parallel()

	valid := Ticket{ID: 1, Title: "VPN down", Category: "Network", Priority: PriorityHigh, Status: StatusNew}
	assert.NoError(t, valid.Validate())

	missingTitle := valid
	missingTitle.Title = " "
	assert.ErrorIs(t, missingTitle.Validate(), ErrInvalidTicket)
	assert.ErrorContains(t, missingTitle.Validate(), "title is required")

	badID := valid
	badID.ID = 0
	assert.ErrorIs(t, badID.Validate(), ErrInvalidTicket)

	badStatus := valid
	badStatus.Status = "Parked"
	assert.ErrorIs(t, badStatus.Validate(), ErrUnknownStatus)
}

func TestFormInputCompleteness(t *testing.T) {
	t.Parallel()

	assert.True(t, FormInput{}.Empty())
	assert.False(t, FormInput{Title: "VPN down"}.Complete())
	assert.True(t, FormInput{Title: "VPN down", Description: "Cannot connect"}.Complete())
}
