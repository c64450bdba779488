package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelens/interview-cli/internal/domain"
)

func drain(w *Watcher) []domain.FullscreenChange {
	var events []domain.FullscreenChange
	for {
		select {
		case e := <-w.Events():
			events = append(events, e)
		default:
			return events
		}
	}
}

func TestWatcherFirstReportOnlyPrimes(t *testing.T) {
	t.Parallel()

	w := NewWatcher()
	w.Report(true)

	assert.Empty(t, drain(w))
}

func TestWatcherEmitsOneEventPerTransition(t *testing.T) {
	t.Parallel()

	w := NewWatcher()
	w.Report(true)
	w.Report(false)
	w.Report(false) // repeat, no event
	w.Report(true)
	w.Report(false)

	events := drain(w)
	require.Len(t, events, 3)
	assert.True(t, events[0].Exited)
	assert.False(t, events[1].Exited)
	assert.True(t, events[2].Exited)
}

func TestWatcherDropsOldestWhenConsumerStalls(t *testing.T) {
	t.Parallel()

	w := NewWatcher()
	w.Report(true)
	for i := 0; i < eventBuffer+4; i++ {
		w.Report(i%2 == 0)
	}

	events := drain(w)
	require.NotEmpty(t, events)
	assert.LessOrEqual(t, len(events), eventBuffer)
}
