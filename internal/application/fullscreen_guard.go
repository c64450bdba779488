package application

import (
	"context"
	"sync"

	"github.com/hirelens/interview-cli/internal/ports"
)

// FullscreenGuard consumes fullscreen transitions and raises exactly one
// integrity event per exit. Losing fullscreen opens a blocking dialog that
// only regaining fullscreen dismisses; it never terminates the session.
type FullscreenGuard struct {
	events ports.FullscreenEvents
	onExit func()

	mu         sync.Mutex
	dialogOpen bool
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewFullscreenGuard(events ports.FullscreenEvents, onExit func()) *FullscreenGuard {
	return &FullscreenGuard{events: events, onExit: onExit}
}

// Start begins watching for fullscreen changes. Idempotent while running.
func (g *FullscreenGuard) Start(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	g.done = make(chan struct{})

	go g.run(loopCtx, g.done)
}

// Stop halts watching.
func (g *FullscreenGuard) Stop() {
	g.mu.Lock()
	if g.cancel == nil {
		g.mu.Unlock()
		return
	}
	cancel := g.cancel
	done := g.done
	g.cancel = nil
	g.done = nil
	g.mu.Unlock()

	cancel()
	<-done
}

// DialogOpen reports whether the blocking re-enter-fullscreen dialog is up.
func (g *FullscreenGuard) DialogOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dialogOpen
}

func (g *FullscreenGuard) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-g.events.Events():
			if !ok {
				return
			}
			if change.Exited {
				g.mu.Lock()
				g.dialogOpen = true
				g.mu.Unlock()
				// One event per exit, independent of dialog lifetime.
				if g.onExit != nil {
					g.onExit()
				}
			} else {
				g.mu.Lock()
				g.dialogOpen = false
				g.mu.Unlock()
			}
		}
	}
}
