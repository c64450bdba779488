package application

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownRunnerRemindsOnceAndExpires(t *testing.T) {
	var reminders, expiries atomic.Int32

	r := NewCountdownRunner(
		func() { reminders.Add(1) },
		func() { expiries.Add(1) },
	)
	r.interval = time.Millisecond

	// 300s total: the reminder fires on the first tick below the threshold,
	// expiry on the final tick.
	r.Start(300 * time.Second)
	defer r.Stop()

	require.Eventually(t, func() bool { return expiries.Load() == 1 }, 5*time.Second, time.Millisecond)

	remaining, total := r.Remaining()
	assert.Equal(t, 0, remaining)
	assert.Equal(t, 300, total)
	assert.Equal(t, int32(1), reminders.Load())
	assert.Equal(t, int32(1), expiries.Load())
}

func TestCountdownRunnerShortRoundSkipsReminder(t *testing.T) {
	var reminders, expiries atomic.Int32

	r := NewCountdownRunner(
		func() { reminders.Add(1) },
		func() { expiries.Add(1) },
	)
	r.interval = time.Millisecond

	r.Start(10 * time.Second)
	defer r.Stop()

	require.Eventually(t, func() bool { return expiries.Load() == 1 }, time.Second, time.Millisecond)
	assert.Zero(t, reminders.Load())
}

func TestCountdownRunnerStopHaltsTicking(t *testing.T) {
	r := NewCountdownRunner(nil, nil)
	r.interval = time.Millisecond

	r.Start(3600 * time.Second)
	require.Eventually(t, func() bool {
		remaining, _ := r.Remaining()
		return remaining < 3600
	}, time.Second, time.Millisecond)

	r.Stop()
	remaining, _ := r.Remaining()
	time.Sleep(10 * time.Millisecond)
	after, _ := r.Remaining()
	assert.Equal(t, remaining, after)
}

func TestCountdownRunnerRestartsFromConfiguredDuration(t *testing.T) {
	r := NewCountdownRunner(nil, nil)
	r.interval = time.Millisecond

	r.Start(1800 * time.Second)
	require.Eventually(t, func() bool {
		remaining, _ := r.Remaining()
		return remaining < 1795
	}, time.Second, time.Millisecond)
	r.Stop()

	// A new session must initialize from the round duration, never from the
	// previous remaining value.
	r2 := NewCountdownRunner(nil, nil)
	r2.interval = time.Millisecond
	r2.Start(1800 * time.Second)
	remaining, total := r2.Remaining()
	assert.Equal(t, 1800, total)
	assert.GreaterOrEqual(t, remaining, 1795)
	r2.Stop()
}
