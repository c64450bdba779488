package application

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hirelens/interview-cli/internal/domain"
	"github.com/hirelens/interview-cli/internal/ports"
)

const (
	defaultCheckpointPeriod = 120 * time.Second
	submitTimeout           = 15 * time.Second
)

// IntegrityPipeline builds integrity-event payloads, optionally captures a
// still image from the shared-screen stream as evidence, and submits both to
// the backend. Submission is fire-and-forget: failures are logged and
// absorbed, never retried, and never surfaced to the candidate.
type IntegrityPipeline struct {
	backend     ports.Backend
	clock       ports.Clock
	logger      zerolog.Logger
	interviewID string
	period      time.Duration

	wg sync.WaitGroup

	mu             sync.Mutex
	cancelPeriodic context.CancelFunc
	periodicDone   chan struct{}
}

func NewIntegrityPipeline(backend ports.Backend, clock ports.Clock, interviewID string, logger zerolog.Logger) *IntegrityPipeline {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &IntegrityPipeline{
		backend:     backend,
		clock:       clock,
		logger:      logger,
		interviewID: interviewID,
		period:      defaultCheckpointPeriod,
	}
}

// Submit records one integrity event, capturing evidence from the given
// stream when it is live. It returns immediately; the work happens in the
// background and its outcome never propagates to the caller.
func (p *IntegrityPipeline) Submit(eventType string, evidence ports.DeviceStream) {
	timestamp := p.clock.Now()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()

		p.submit(ctx, eventType, timestamp, evidence)
	}()
}

func (p *IntegrityPipeline) submit(ctx context.Context, eventType string, timestamp time.Time, evidence ports.DeviceStream) {
	event := domain.IntegrityEvent{
		InterviewID: p.interviewID,
		EventType:   eventType,
		Timestamp:   timestamp.Unix(),
		EvidenceRef: p.captureEvidence(ctx, evidence),
	}

	if err := p.backend.SubmitIntegrityEvent(ctx, event); err != nil {
		p.logger.Warn().Err(err).Str("event_type", eventType).Msg("integrity event submission failed")
	}
}

// captureEvidence returns an opaque storage key, or "" when no usable
// evidence could be produced. Every failure here is swallowed: the event
// still proceeds without an evidence reference.
func (p *IntegrityPipeline) captureEvidence(ctx context.Context, evidence ports.DeviceStream) string {
	if evidence == nil || !evidence.Live() {
		return ""
	}

	snapshot, err := evidence.Snapshot()
	if err != nil {
		p.logger.Debug().Err(err).Msg("evidence snapshot failed")
		return ""
	}
	if snapshot.Width == 0 || snapshot.Height == 0 || len(snapshot.Data) == 0 {
		return ""
	}

	name := uuid.NewString() + ".jpg"
	slot, err := p.backend.RequestEvidenceSlot(ctx, name, int64(len(snapshot.Data)))
	if err != nil {
		p.logger.Warn().Err(err).Msg("evidence slot request failed")
		return ""
	}

	if err := p.backend.UploadEvidence(ctx, slot, name, snapshot.Data); err != nil {
		p.logger.Warn().Err(err).Msg("evidence upload failed")
		return ""
	}

	return slot.Key
}

// StartPeriodic begins the fixed-rate audit checkpoint for the lifetime of
// the active interview. Idempotent while running.
func (p *IntegrityPipeline) StartPeriodic(ctx context.Context, evidence ports.DeviceStream) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancelPeriodic != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	p.cancelPeriodic = cancel
	p.periodicDone = make(chan struct{})

	go p.runPeriodic(loopCtx, evidence, p.periodicDone)
}

// StopPeriodic halts the checkpoint timer. Must be called the instant the
// active interview is exited.
func (p *IntegrityPipeline) StopPeriodic() {
	p.mu.Lock()
	if p.cancelPeriodic == nil {
		p.mu.Unlock()
		return
	}
	cancel := p.cancelPeriodic
	done := p.periodicDone
	p.cancelPeriodic = nil
	p.periodicDone = nil
	p.mu.Unlock()

	cancel()
	<-done
}

// Wait blocks until all in-flight submissions have drained.
func (p *IntegrityPipeline) Wait() {
	p.wg.Wait()
}

func (p *IntegrityPipeline) runPeriodic(ctx context.Context, evidence ports.DeviceStream, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Submit(domain.EventPeriodicCheck, evidence)
		}
	}
}
