package application

import (
	"sync"
	"time"

	"github.com/hirelens/interview-cli/internal/domain"
)

// CountdownRunner drives a domain countdown on a once-per-second ticker.
// Start is bound to the active session beginning (after the tips dialog is
// dismissed) and Stop to the session ending; the runner never persists
// remaining time.
type CountdownRunner struct {
	onReminder func()
	onExpire   func()
	interval   time.Duration

	mu        sync.Mutex
	countdown *domain.Countdown
	cancel    chan struct{}
	done      chan struct{}
}

func NewCountdownRunner(onReminder, onExpire func()) *CountdownRunner {
	return &CountdownRunner{
		onReminder: onReminder,
		onExpire:   onExpire,
		interval:   time.Second,
	}
}

// Start initializes the countdown from the round's configured duration and
// begins ticking. Idempotent while running.
func (r *CountdownRunner) Start(total time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return
	}

	r.countdown = domain.NewCountdown(total)
	r.cancel = make(chan struct{})
	r.done = make(chan struct{})

	go r.run(r.cancel, r.done)
}

// Stop halts ticking. Safe to call whether or not the runner is active.
func (r *CountdownRunner) Stop() {
	r.mu.Lock()
	if r.cancel == nil {
		r.mu.Unlock()
		return
	}
	cancel := r.cancel
	done := r.done
	r.cancel = nil
	r.done = nil
	r.mu.Unlock()

	close(cancel)
	<-done
}

// Remaining returns the remaining and total seconds, or zeros before Start.
func (r *CountdownRunner) Remaining() (remaining, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countdown == nil {
		return 0, 0
	}
	return r.countdown.Remaining, r.countdown.Total
}

func (r *CountdownRunner) run(cancel <-chan struct{}, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			r.mu.Lock()
			event := r.countdown.Tick()
			r.mu.Unlock()

			switch event {
			case domain.CountdownReminder:
				if r.onReminder != nil {
					r.onReminder()
				}
			case domain.CountdownExpired:
				if r.onExpire != nil {
					r.onExpire()
				}
				return
			}
		}
	}
}
