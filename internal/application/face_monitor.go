package application

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hirelens/interview-cli/internal/domain"
	"github.com/hirelens/interview-cli/internal/ports"
)

const defaultSampleInterval = 400 * time.Millisecond

// MonitorState is the externally observable face-presence signal.
type MonitorState struct {
	Warning  domain.FaceWarning
	Checking bool
}

// FacePresenceMonitor samples frames from a stream at a fixed maximum rate,
// classifies each via the classifier collaborator, and debounces the raw
// classifications into a stable warning. The classifier failing to warm up
// leaves the monitor checking indefinitely: progression gated on this monitor
// stays blocked (fail-closed).
type FacePresenceMonitor struct {
	classifier ports.FaceClassifier
	clock      ports.Clock
	onRaise    func(domain.FaceWarning)
	logger     zerolog.Logger
	interval   time.Duration

	mu            sync.Mutex
	machine       *domain.WarningMachine
	warning       domain.FaceWarning
	checking      bool
	warmedUp      bool
	lastMediaTime int64
	haveMediaTime bool
	cancel        context.CancelFunc
	done          chan struct{}
}

// NewFacePresenceMonitor builds an inactive monitor. onRaise, if non-nil, is
// invoked once each time the stable warning transitions from none to a
// violation.
func NewFacePresenceMonitor(classifier ports.FaceClassifier, clock ports.Clock, onRaise func(domain.FaceWarning), logger zerolog.Logger) *FacePresenceMonitor {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &FacePresenceMonitor{
		classifier: classifier,
		clock:      clock,
		onRaise:    onRaise,
		logger:     logger,
		interval:   defaultSampleInterval,
		machine:    domain.NewWarningMachine(),
		warning:    domain.WarningNone,
	}
}

// Start begins cooperative sampling of the given stream. Idempotent while
// running. The monitor holds only a read reference to the stream; it never
// closes it.
func (m *FacePresenceMonitor) Start(ctx context.Context, stream ports.DeviceStream) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		return
	}

	m.checking = true
	m.haveMediaTime = false
	m.machine.Reset()
	m.warning = domain.WarningNone

	loopCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.run(loopCtx, stream, m.done)
}

// Stop halts sampling, cancels pending dwell timers and forces the warning
// back to none.
func (m *FacePresenceMonitor) Stop() {
	m.mu.Lock()
	if m.cancel == nil {
		m.mu.Unlock()
		return
	}
	cancel := m.cancel
	done := m.done
	m.cancel = nil
	m.done = nil
	m.mu.Unlock()

	cancel()
	<-done

	m.mu.Lock()
	m.machine.Reset()
	m.warning = domain.WarningNone
	m.checking = false
	m.mu.Unlock()
}

// State returns the current stable warning and whether classifier
// initialization is still pending.
func (m *FacePresenceMonitor) State() MonitorState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MonitorState{Warning: m.warning, Checking: m.checking}
}

func (m *FacePresenceMonitor) run(ctx context.Context, stream ports.DeviceStream, done chan struct{}) {
	defer close(done)

	if !m.warmup(ctx) {
		// Fail-closed: stay checking, sample nothing.
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sample(ctx, stream)
		}
	}
}

func (m *FacePresenceMonitor) warmup(ctx context.Context) bool {
	m.mu.Lock()
	warmedUp := m.warmedUp
	m.mu.Unlock()

	if !warmedUp {
		if err := m.classifier.Warmup(ctx); err != nil {
			m.logger.Error().Err(err).Msg("classifier warmup failed")
			return false
		}
	}

	m.mu.Lock()
	m.warmedUp = true
	m.checking = false
	m.mu.Unlock()
	return true
}

func (m *FacePresenceMonitor) sample(ctx context.Context, stream ports.DeviceStream) {
	frame, ok := stream.Frame()
	if !ok {
		return
	}

	m.mu.Lock()
	// Skip frames the decoder has not advanced.
	if m.haveMediaTime && frame.MediaTime == m.lastMediaTime {
		m.mu.Unlock()
		return
	}
	m.lastMediaTime = frame.MediaTime
	m.haveMediaTime = true
	m.mu.Unlock()

	detections, err := m.classifier.Detect(ctx, frame)
	if err != nil {
		m.logger.Debug().Err(err).Msg("frame classification failed")
		return
	}

	class := domain.ClassifyFrame(domain.FrameSample{
		Width:      frame.Width,
		Height:     frame.Height,
		MediaTime:  time.Duration(frame.MediaTime) * time.Millisecond,
		Detections: detections,
	})

	m.observe(class)
}

func (m *FacePresenceMonitor) observe(class domain.FaceWarning) {
	m.mu.Lock()
	previous := m.warning
	m.warning = m.machine.Observe(class, m.clock.Now())
	current := m.warning
	m.mu.Unlock()

	if current != previous && current != domain.WarningNone && m.onRaise != nil {
		m.onRaise(current)
	}
}
