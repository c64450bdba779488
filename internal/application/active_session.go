package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hirelens/interview-cli/internal/domain"
	"github.com/hirelens/interview-cli/internal/ports"
)

// ActiveSessionState is a snapshot for the session view.
type ActiveSessionState struct {
	Remaining            int
	Total                int
	Warning              domain.FaceWarning
	Checking             bool
	TipsOpen             bool
	ReminderOpen         bool
	FullscreenDialogOpen bool
	Muted                bool
	Remote               ports.RemoteParticipant
	Done                 bool
}

// ActiveSession composes the live interview: the conferencing transport, the
// countdown, the face monitor, the fullscreen guard and the integrity
// pipeline. The conference ending remotely and the countdown expiring are
// treated identically: both complete the session.
type ActiveSession struct {
	flow       *FlowController
	conference ports.Conference
	pipeline   *IntegrityPipeline
	monitor    *FacePresenceMonitor
	guard      *FullscreenGuard
	countdown  *CountdownRunner
	meta       domain.InterviewMetadata
	logger     zerolog.Logger

	mu           sync.Mutex
	tipsOpen     bool
	reminderOpen bool
	muted        bool
	started      bool

	completeOnce sync.Once
	doneCh       chan struct{}
	watchCancel  context.CancelFunc
	watchDone    chan struct{}
}

// NewActiveSession wires the session components. The classifier and
// fullscreen event source are consumed through the monitor and guard built
// here so that every violation funnels into the one pipeline.
func NewActiveSession(
	flow *FlowController,
	conference ports.Conference,
	classifier ports.FaceClassifier,
	fullscreen ports.FullscreenEvents,
	pipeline *IntegrityPipeline,
	clock ports.Clock,
	meta domain.InterviewMetadata,
	logger zerolog.Logger,
) *ActiveSession {
	s := &ActiveSession{
		flow:       flow,
		conference: conference,
		pipeline:   pipeline,
		meta:       meta,
		logger:     logger,
		tipsOpen:   true,
		doneCh:     make(chan struct{}),
	}

	s.monitor = NewFacePresenceMonitor(classifier, clock, s.onWarningRaised, logger)
	s.guard = NewFullscreenGuard(fullscreen, s.onFullscreenExit)
	s.countdown = NewCountdownRunner(s.onReminder, s.onExpire)

	return s
}

// Start joins the conference and starts the monitors. The countdown stays
// un-started while the pre-start tips dialog is open. The flow must already
// be in the active interview state.
func (s *ActiveSession) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.mu.Unlock()

	cred, err := s.flow.Credential()
	if err != nil {
		return err
	}

	if err := s.conference.Join(ctx, cred); err != nil {
		return fmt.Errorf("join conference: %w", err)
	}

	if camera := s.flow.Camera(); camera != nil {
		s.monitor.Start(ctx, camera)
	}
	s.guard.Start(ctx)
	s.pipeline.StartPeriodic(ctx, s.flow.Screen())

	watchCtx, cancel := context.WithCancel(ctx)
	s.watchCancel = cancel
	s.watchDone = make(chan struct{})
	go s.watchEnded(watchCtx, s.watchDone)

	return nil
}

// DismissTips closes the pre-start dialog and starts the countdown from the
// round's configured duration.
func (s *ActiveSession) DismissTips() {
	s.mu.Lock()
	wasOpen := s.tipsOpen
	s.tipsOpen = false
	s.mu.Unlock()

	if wasOpen {
		s.countdown.Start(domain.ParseRoundDuration(s.meta.RoundDuration))
	}
}

// DismissReminder closes the low-time reminder dialog.
func (s *ActiveSession) DismissReminder() {
	s.mu.Lock()
	s.reminderOpen = false
	s.mu.Unlock()
}

// ToggleMute flips the local participant's mute state.
func (s *ActiveSession) ToggleMute() {
	s.mu.Lock()
	s.muted = !s.muted
	muted := s.muted
	s.mu.Unlock()

	if err := s.conference.SetMuted(muted); err != nil {
		s.logger.Warn().Err(err).Msg("mute toggle failed")
	}
}

// State returns a snapshot for rendering.
func (s *ActiveSession) State() ActiveSessionState {
	remaining, total := s.countdown.Remaining()
	monitor := s.monitor.State()

	s.mu.Lock()
	state := ActiveSessionState{
		Remaining:            remaining,
		Total:                total,
		Warning:              monitor.Warning,
		Checking:             monitor.Checking,
		TipsOpen:             s.tipsOpen,
		ReminderOpen:         s.reminderOpen,
		FullscreenDialogOpen: s.guard.DialogOpen(),
		Muted:                s.muted,
		Remote:               s.conference.Remote(),
	}
	s.mu.Unlock()

	select {
	case <-s.doneCh:
		state.Done = true
	default:
	}

	return state
}

// Done is closed when the session has completed, by expiry or remote end.
func (s *ActiveSession) Done() <-chan struct{} {
	return s.doneCh
}

// Stop completes the session if it has not completed already, stopping every
// timer and loop and releasing the conference.
func (s *ActiveSession) Stop() {
	s.complete()
}

func (s *ActiveSession) onWarningRaised(warning domain.FaceWarning) {
	eventType, ok := domain.EventTypeForWarning(warning)
	if !ok {
		return
	}
	s.pipeline.Submit(eventType, s.flow.Screen())
}

func (s *ActiveSession) onFullscreenExit() {
	s.pipeline.Submit(domain.EventExitFullscreen, s.flow.Screen())
}

func (s *ActiveSession) onReminder() {
	s.mu.Lock()
	s.reminderOpen = true
	s.mu.Unlock()
}

func (s *ActiveSession) onExpire() {
	go s.complete()
}

func (s *ActiveSession) watchEnded(ctx context.Context, done chan struct{}) {
	defer close(done)

	select {
	case <-ctx.Done():
	case <-s.conference.Ended():
		// Remote end is equivalent to the countdown reaching zero.
		go s.complete()
	}
}

func (s *ActiveSession) complete() {
	s.completeOnce.Do(func() {
		if s.watchCancel != nil {
			s.watchCancel()
			<-s.watchDone
		}

		s.countdown.Stop()
		s.monitor.Stop()
		s.guard.Stop()
		s.pipeline.StopPeriodic()

		if err := s.conference.Leave(); err != nil {
			s.logger.Warn().Err(err).Msg("conference leave failed")
		}

		if s.flow.Current() == domain.FlowInterviewActive {
			if err := s.flow.Transition(context.Background(), domain.FlowInterviewComplete); err != nil {
				s.logger.Warn().Err(err).Msg("transition to interview complete failed")
			}
		}

		close(s.doneCh)
	})
}
