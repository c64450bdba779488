package application

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelens/interview-cli/internal/domain"
)

func TestFullscreenGuardOneEventPerExit(t *testing.T) {
	events := newFakeFullscreenEvents()

	var exits atomic.Int32
	g := NewFullscreenGuard(events, func() { exits.Add(1) })
	g.Start(context.Background())
	defer g.Stop()

	for i := 0; i < 5; i++ {
		events.ch <- domain.FullscreenChange{Exited: true}
		events.ch <- domain.FullscreenChange{Exited: false}
	}

	require.Eventually(t, func() bool { return exits.Load() == 5 }, time.Second, time.Millisecond)
	assert.Equal(t, int32(5), exits.Load())
}

func TestFullscreenGuardDialogTracksFullscreen(t *testing.T) {
	events := newFakeFullscreenEvents()
	g := NewFullscreenGuard(events, nil)
	g.Start(context.Background())
	defer g.Stop()

	events.ch <- domain.FullscreenChange{Exited: true}
	require.Eventually(t, g.DialogOpen, time.Second, time.Millisecond)

	// Regaining fullscreen dismisses the dialog without emitting an event.
	events.ch <- domain.FullscreenChange{Exited: false}
	require.Eventually(t, func() bool { return !g.DialogOpen() }, time.Second, time.Millisecond)
}

func TestFullscreenGuardStopHaltsWatching(t *testing.T) {
	events := newFakeFullscreenEvents()

	var exits atomic.Int32
	g := NewFullscreenGuard(events, func() { exits.Add(1) })
	g.Start(context.Background())

	events.ch <- domain.FullscreenChange{Exited: true}
	require.Eventually(t, func() bool { return exits.Load() == 1 }, time.Second, time.Millisecond)

	g.Stop()
	events.ch <- domain.FullscreenChange{Exited: true}
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), exits.Load())
}
