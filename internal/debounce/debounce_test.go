package debounce

import (
	"testing"
	"time"

	"github.com/bnema/cognisupport/internal/clocktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delay = 500 * time.Millisecond

func newTestValue(t *testing.T) (*Value[string], *clocktest.Fake, *[]string) {
	t.Helper()

	clock := clocktest.New(time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC))
	var settled []string
	value := New(clock, delay, "", func(v string) {
		settled = append(settled, v)
	})
	t.Cleanup(value.Stop)

	return value, clock, &settled
}

func TestBurstSettlesOnlyFinalValue(t *testing.T) {
	t.Parallel()

	value, clock, settled := newTestValue(t)

	for _, keystroke := range []string{"V", "VP", "VPN", "VPN ", "VPN d"} {
		value.Set(keystroke)
		clock.Advance(100 * time.Millisecond)
	}
	assert.Empty(t, *settled)
	assert.Equal(t, "", value.Output())
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(399 * time.Millisecond)
	assert.Empty(t, *settled, "must not settle before the full window after the last change")

	clock.Advance(time.Millisecond)
	assert.Equal(t, []string{"VPN d"}, *settled)
	assert.Equal(t, "VPN d", value.Output())
	assert.False(t, value.Pending())
}

func TestSpacedChangesEachSettle(t *testing.T) {
	t.Parallel()

	value, clock, settled := newTestValue(t)

	value.Set("printer")
	clock.Advance(delay)
	value.Set("printer jam")
	clock.Advance(delay)

	assert.Equal(t, []string{"printer", "printer jam"}, *settled)
}

func TestRevertWithinWindowDoesNotEmit(t *testing.T) {
	t.Parallel()

	value, clock, settled := newTestValue(t)

	value.Set("wifi")
	clock.Advance(delay)
	require.Equal(t, []string{"wifi"}, *settled)

	value.Set("wifi!")
	clock.Advance(100 * time.Millisecond)
	value.Set("wifi")
	clock.Advance(delay)

	assert.Equal(t, []string{"wifi"}, *settled)
	assert.Equal(t, "wifi", value.Output())
}

func TestSettingSameValueKeepsTimer(t *testing.T) {
	t.Parallel()

	value, clock, settled := newTestValue(t)

	value.Set("disk")
	clock.Advance(300 * time.Millisecond)
	value.Set("disk")
	clock.Advance(200 * time.Millisecond)

	assert.Equal(t, []string{"disk"}, *settled)
}

func TestStopReleasesPendingTimer(t *testing.T) {
	t.Parallel()

	value, clock, settled := newTestValue(t)

	value.Set("outlook crash")
	require.True(t, value.Pending())

	value.Stop()
	assert.False(t, value.Pending())
	assert.Zero(t, clock.Pending())

	clock.Advance(time.Second)
	value.Set("ignored after stop")
	clock.Advance(time.Second)

	assert.Empty(t, *settled)
}

func TestResetDiscardsPendingSettle(t *testing.T) {
	t.Parallel()

	value, clock, settled := newTestValue(t)

	value.Set("keyboard")
	clock.Advance(delay)
	value.Set("keyboard sticky")
	clock.Advance(100 * time.Millisecond)

	value.Reset("")
	assert.False(t, value.Pending())
	assert.Equal(t, "", value.Output())

	clock.Advance(time.Second)
	assert.Equal(t, []string{"keyboard"}, *settled)

	value.Set("mouse")
	clock.Advance(delay)
	assert.Equal(t, []string{"keyboard", "mouse"}, *settled)
}

func TestRealClockSettles(t *testing.T) {
	t.Parallel()

	done := make(chan string, 1)
	value := New(nil, 10*time.Millisecond, "", func(v string) { done <- v })
	t.Cleanup(value.Stop)

	value.Set("a")
	value.Set("ab")

	select {
	case got := <-done:
		assert.Equal(t, "ab", got)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced value never settled")
	}
}
