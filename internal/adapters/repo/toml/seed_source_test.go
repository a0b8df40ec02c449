package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/cognisupport/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedSource(t *testing.T, contents string) *SeedSource {
	t.Helper()

	seedPath := filepath.Join(t.TempDir(), "tickets.toml")
	require.NoError(t, os.WriteFile(seedPath, []byte(contents), 0o600))

	config := viper.New()
	config.Set("tickets.seed_path", seedPath)

	source, err := NewSeedSource(config)
	require.NoError(t, err)
	return source
}

func TestSeedSourceDefaultsWithoutPath(t *testing.T) {
	t.Parallel()

	source, err := NewSeedSource(nil)
	require.NoError(t, err)
	assert.Empty(t, source.Path())

	tickets, err := source.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 3)
	assert.Equal(t, domain.TicketID(103), tickets[0].ID)
	assert.Equal(t, "Laptop won't turn on", tickets[2].Title)
	for _, ticket := range tickets {
		assert.NoError(t, ticket.Validate())
	}
}

func TestSeedSourceReadsFile(t *testing.T) {
	t.Parallel()

	source := newSeedSource(t, `
version = 1

[[tickets]]
id = 7
title = "Badge access denied"
category = "Security"
priority = "medium"
status = "in progress"

[[tickets]]
id = 3
title = "Monitor flickers"
priority = "Low"
status = "Open"
`)

	tickets, err := source.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Ticket{
		{ID: 7, Title: "Badge access denied", Category: "Security", Priority: domain.PriorityMedium, Status: domain.StatusInProgress},
		{ID: 3, Title: "Monitor flickers", Category: domain.UnassignedCategory, Priority: domain.PriorityLow, Status: domain.StatusOpen},
	}, tickets)
}

func TestSeedSourceRejectsInvalidEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "future schema version",
			contents: "version = 9\n",
			wantErr:  "unsupported seed schema version 9",
		},
		{
			name:     "duplicate id",
			contents: "[[tickets]]\nid = 1\ntitle = \"a\"\npriority = \"Low\"\nstatus = \"New\"\n[[tickets]]\nid = 1\ntitle = \"b\"\npriority = \"Low\"\nstatus = \"New\"\n",
			wantErr:  "duplicate id 1",
		},
		{
			name:     "unknown priority",
			contents: "[[tickets]]\nid = 1\ntitle = \"a\"\npriority = \"Urgent\"\nstatus = \"New\"\n",
			wantErr:  "unknown priority",
		},
		{
			name:     "malformed toml",
			contents: "[[tickets]\n",
			wantErr:  "decode seed file",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := newSeedSource(t, tc.contents).List(context.Background())
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestSeedSourceMissingFile(t *testing.T) {
	t.Parallel()

	config := viper.New()
	config.Set("tickets.seed_path", filepath.Join(t.TempDir(), "missing.toml"))

	source, err := NewSeedSource(config)
	require.NoError(t, err)

	_, err = source.List(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSeedSourceHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	source, err := NewSeedSource(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = source.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
