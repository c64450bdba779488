// Package term bridges terminal focus transitions into fullscreen events.
// The session view reports bubbletea focus/blur messages here; losing focus
// is treated as leaving fullscreen.
package term

import (
	"sync"

	"github.com/hirelens/interview-cli/internal/domain"
	"github.com/hirelens/interview-cli/internal/ports"
)

const eventBuffer = 16

// Watcher converts focus reports into FullscreenChange events, deduplicating
// repeats. Sends never block the reporting UI loop; if the consumer stalls,
// older transitions are dropped in favour of the newest one.
type Watcher struct {
	mu      sync.Mutex
	focused bool
	primed  bool
	ch      chan domain.FullscreenChange
}

var _ ports.FullscreenEvents = (*Watcher)(nil)

func NewWatcher() *Watcher {
	return &Watcher{ch: make(chan domain.FullscreenChange, eventBuffer)}
}

// Events delivers fullscreen transitions, one per observed change.
func (w *Watcher) Events() <-chan domain.FullscreenChange {
	return w.ch
}

// Report records the current focus state. The first report only primes the
// watcher; transitions are emitted from the second report on.
func (w *Watcher) Report(focused bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.primed && w.focused == focused {
		return
	}
	wasPrimed := w.primed
	w.focused = focused
	w.primed = true

	if !wasPrimed {
		return
	}

	change := domain.FullscreenChange{Exited: !focused}
	select {
	case w.ch <- change:
	default:
		// Consumer is behind; drop the oldest event and keep the newest.
		select {
		case <-w.ch:
		default:
		}
		select {
		case w.ch <- change:
		default:
		}
	}
}
