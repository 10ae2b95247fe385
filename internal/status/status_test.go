package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{Pending, Preparing, true},
		{Pending, Cancelled, true},
		{Pending, Ready, false},
		{Pending, Completed, false},
		{Preparing, Ready, true},
		{Preparing, Cancelled, true},
		{Preparing, Pending, false},
		{Ready, Completed, true},
		{Ready, Cancelled, true},
		{Ready, Preparing, false},
		{Completed, Preparing, false},
		{Completed, Cancelled, false},
		{Cancelled, Pending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransition(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestFromReady_OnlyCompletedAndCancelled(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t, []Status{Completed, Cancelled}, Ready.Next())
}

func TestTerminalStates(t *testing.T) {
	t.Parallel()

	assert.True(t, Completed.Terminal())
	assert.True(t, Cancelled.Terminal())
	assert.Empty(t, Completed.Next())
	assert.Empty(t, Cancelled.Next())
	assert.Empty(t, Actions(Completed))
	assert.Empty(t, Actions(Cancelled))

	for _, s := range []Status{Pending, Preparing, Ready} {
		assert.False(t, s.Terminal(), "%s", s)
		assert.True(t, s.Active(), "%s", s)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	s, ok := Parse("preparing")
	require.True(t, ok)
	assert.Equal(t, Preparing, s)

	_, ok = Parse("delivered")
	assert.False(t, ok)
}

func TestActions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Action{ActionStartPreparing, ActionCancel}, Actions(Pending))
	assert.Equal(t, []Action{ActionMarkReady, ActionCancel}, Actions(Preparing))
	assert.Equal(t, []Action{ActionGenerateBill, ActionCancel}, Actions(Ready))

	assert.Equal(t, Preparing, ActionStartPreparing.Target())
	assert.Equal(t, Completed, ActionGenerateBill.Target())
	assert.Equal(t, Cancelled, ActionCancel.Target())
}

func TestUrgent(t *testing.T) {
	t.Parallel()

	now := time.Now()

	assert.False(t, Urgent(Pending, now.Add(-10*time.Minute), now))
	assert.True(t, Urgent(Pending, now.Add(-16*time.Minute), now))
	assert.True(t, Urgent(Preparing, now.Add(-40*time.Minute), now))

	// terminal orders never flag as urgent, however old
	assert.False(t, Urgent(Completed, now.Add(-2*time.Hour), now))
	assert.False(t, Urgent(Cancelled, now.Add(-2*time.Hour), now))
}

func TestLabelAndColor(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{Pending, Preparing, Ready, Completed, Cancelled} {
		assert.NotEmpty(t, s.Label())
		assert.NotEmpty(t, s.Color())
	}
	assert.Equal(t, "Preparing", Preparing.Label())
}
