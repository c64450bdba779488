package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hirelens/interview-cli/internal/domain"
	"github.com/hirelens/interview-cli/internal/ports"
)

// StartPoint is the resume decision made once during controller
// construction: a cached credential lets the flow skip authentication.
type StartPoint int

const (
	StartFresh StartPoint = iota
	StartResume
)

// FlowController owns the session flow state and the shared resources that
// live across state transitions: the device streams and the media session
// credential.
type FlowController struct {
	creds   ports.CredentialStore
	devices ports.MediaDevices
	logger  zerolog.Logger

	mu     sync.Mutex
	state  domain.FlowState
	cred   domain.Credential
	camera ports.DeviceStream
	screen ports.DeviceStream
}

// NewFlowController builds the controller and makes the resume decision: a
// valid cached credential resumes at guidelines, anything else starts fresh
// at authentication.
func NewFlowController(ctx context.Context, creds ports.CredentialStore, devices ports.MediaDevices, logger zerolog.Logger) (*FlowController, StartPoint) {
	f := &FlowController{
		creds:   creds,
		devices: devices,
		logger:  logger,
		state:   domain.FlowAuth,
	}

	point := f.resumeDecision(ctx)
	if point == StartResume {
		f.state = domain.FlowGuidelines
	}

	return f, point
}

func (f *FlowController) resumeDecision(ctx context.Context) StartPoint {
	cred, err := f.creds.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNoCredential) {
			f.logger.Warn().Err(err).Msg("credential cache unreadable, starting fresh")
		}
		return StartFresh
	}
	if cred.Validate() != nil {
		return StartFresh
	}

	f.cred = cred
	return StartResume
}

// Current returns the current flow state.
func (f *FlowController) Current() domain.FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetCredential records the media session credential and caches it for
// resume.
func (f *FlowController) SetCredential(ctx context.Context, cred domain.Credential) error {
	if err := cred.Validate(); err != nil {
		return fmt.Errorf("validate credential: %w", err)
	}

	f.mu.Lock()
	f.cred = cred
	f.mu.Unlock()

	if err := f.creds.Save(ctx, cred); err != nil {
		return fmt.Errorf("cache credential: %w", err)
	}
	return nil
}

// Credential returns the session credential, or ErrNoCredential before
// authentication completes.
func (f *FlowController) Credential() (domain.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cred.IsZero() {
		return domain.Credential{}, domain.ErrNoCredential
	}
	return f.cred, nil
}

// Transition moves the flow to the next state, acquiring the camera/mic
// stream when entering a state that needs it and releasing all streams when
// leaving the last state that does. Entering the active interview without a
// credential is a blocking error.
func (f *FlowController) Transition(ctx context.Context, to domain.FlowState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.state.CanTransitionTo(to) {
		return fmt.Errorf("%s to %s: %w", f.state, to, domain.ErrInvalidTransition)
	}

	if to == domain.FlowInterviewActive && f.cred.IsZero() {
		return domain.ErrNoCredential
	}

	if to.RequiresDevices() && f.camera == nil {
		if err := f.acquireCameraLocked(ctx); err != nil {
			return err
		}
	}

	from := f.state
	f.state = to
	f.logger.Info().Str("old_state", from.String()).Str("new_state", to.String()).Msg("flow transition")

	if from.RequiresDevices() && !to.RequiresDevices() {
		f.releaseLocked()
	}

	return nil
}

// AcquireDevices acquires the camera/mic stream if not already held. Exposed
// as the retry hook for permission failures during verification.
func (f *FlowController) AcquireDevices(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.camera != nil {
		return nil
	}
	return f.acquireCameraLocked(ctx)
}

// AcquireScreen acquires the screen-share stream if not already held.
// Screen failures are distinct from camera failures and retried
// independently.
func (f *FlowController) AcquireScreen(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.screen != nil {
		return nil
	}

	stream, err := f.devices.AcquireScreen(ctx)
	if err != nil {
		return fmt.Errorf("acquire screen share: %w", err)
	}
	f.screen = stream
	return nil
}

// Camera returns a read-only reference to the held camera stream, or nil.
func (f *FlowController) Camera() ports.DeviceStream {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.camera
}

// Screen returns a read-only reference to the held screen stream, or nil.
func (f *FlowController) Screen() ports.DeviceStream {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.screen
}

// ReleaseDevices stops all held streams, releasing the hardware.
func (f *FlowController) ReleaseDevices() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.releaseLocked()
}

// ClearCredential drops the cached credential, forcing the next run to start
// fresh.
func (f *FlowController) ClearCredential(ctx context.Context) error {
	f.mu.Lock()
	f.cred = domain.Credential{}
	f.mu.Unlock()

	if err := f.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential cache: %w", err)
	}
	return nil
}

// Teardown releases every owned resource. Must be called on exit regardless
// of the state reached.
func (f *FlowController) Teardown() {
	f.ReleaseDevices()
}

func (f *FlowController) acquireCameraLocked(ctx context.Context) error {
	stream, err := f.devices.AcquireCamera(ctx)
	if err != nil {
		return fmt.Errorf("acquire camera: %w", err)
	}
	f.camera = stream
	return nil
}

func (f *FlowController) releaseLocked() {
	if f.camera != nil {
		if err := f.camera.Close(); err != nil {
			f.logger.Warn().Err(err).Msg("camera stream close failed")
		}
		f.camera = nil
	}
	if f.screen != nil {
		if err := f.screen.Close(); err != nil {
			f.logger.Warn().Err(err).Msg("screen stream close failed")
		}
		f.screen = nil
	}
}
