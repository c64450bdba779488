package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{name: "minutes with unit", raw: "30 mins", want: 30 * time.Minute},
		{name: "single minute", raw: "1 min", want: time.Minute},
		{name: "hour", raw: "1 hour", want: time.Hour},
		{name: "hours plural", raw: "2 hours", want: 2 * time.Hour},
		{name: "hr abbreviation", raw: "1hr", want: time.Hour},
		{name: "bare h", raw: "3h", want: 3 * time.Hour},
		{name: "no unit defaults to minutes", raw: "45", want: 45 * time.Minute},
		{name: "case insensitive", raw: "1 HOUR", want: time.Hour},
		{name: "empty falls back", raw: "", want: DefaultRoundDuration},
		{name: "unparsable falls back", raw: "soon", want: DefaultRoundDuration},
		{name: "leading spaces", raw: "  15 minutes", want: 15 * time.Minute},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ParseRoundDuration(tc.raw))
		})
	}
}

func TestCountdownFullRun(t *testing.T) {
	t.Parallel()

	c := NewCountdown(1800 * time.Second)
	require.Equal(t, 1800, c.Total)

	var reminders, expiries int
	for i := 0; i < 1800; i++ {
		switch c.Tick() {
		case CountdownReminder:
			reminders++
			assert.Equal(t, 299, c.Remaining)
		case CountdownExpired:
			expiries++
		}
	}

	assert.Equal(t, 0, c.Remaining)
	assert.Equal(t, 1, reminders)
	assert.Equal(t, 1, expiries)
	assert.True(t, c.Expired)
}

func TestCountdownExpirySignalledOnce(t *testing.T) {
	t.Parallel()

	c := NewCountdown(2 * time.Second)
	assert.Equal(t, CountdownNone, c.Tick())
	assert.Equal(t, CountdownExpired, c.Tick())
	assert.Equal(t, CountdownNone, c.Tick())
	assert.Equal(t, 0, c.Remaining)
}

func TestCountdownShortRoundNeverFiresReminder(t *testing.T) {
	t.Parallel()

	c := NewCountdown(299 * time.Second)
	for i := 0; i < 299; i++ {
		assert.NotEqual(t, CountdownReminder, c.Tick())
	}
	assert.False(t, c.ReminderFired)
	assert.True(t, c.Expired)
}

func TestCountdownReminderAtExactThresholdRound(t *testing.T) {
	t.Parallel()

	c := NewCountdown(300 * time.Second)
	assert.Equal(t, CountdownReminder, c.Tick())
	assert.Equal(t, 299, c.Remaining)
	assert.True(t, c.ReminderFired)
}
