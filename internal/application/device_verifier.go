package application

import (
	"context"
	"sync"

	"github.com/hirelens/interview-cli/internal/domain"
)

// DeviceVerifier runs the pre-interview device check: it borrows the flow
// controller's streams, runs the face monitor against the camera, and derives
// a single progression gate. Permission failures are kept separate per device
// and exposed with explicit retry actions; nothing retries automatically.
type DeviceVerifier struct {
	flow          *FlowController
	monitor       *FacePresenceMonitor
	requireScreen bool

	mu        sync.Mutex
	camErr    error
	screenErr error
}

func NewDeviceVerifier(flow *FlowController, monitor *FacePresenceMonitor, requireScreen bool) *DeviceVerifier {
	return &DeviceVerifier{
		flow:          flow,
		monitor:       monitor,
		requireScreen: requireScreen,
	}
}

// Start acquires the devices and begins monitoring. Acquisition errors are
// recorded, not returned: the verifier surfaces them as dismissible notices
// with retry actions.
func (v *DeviceVerifier) Start(ctx context.Context) {
	v.RetryCamera(ctx)
	if v.requireScreen {
		v.RetryScreen(ctx)
	}
}

// RetryCamera re-invokes camera/mic acquisition and restarts the monitor on
// success.
func (v *DeviceVerifier) RetryCamera(ctx context.Context) {
	err := v.flow.AcquireDevices(ctx)

	v.mu.Lock()
	v.camErr = err
	v.mu.Unlock()

	if err == nil {
		v.monitor.Start(ctx, v.flow.Camera())
	}
}

// RetryScreen re-invokes screen-share acquisition, independent of camera
// state.
func (v *DeviceVerifier) RetryScreen(ctx context.Context) {
	err := v.flow.AcquireScreen(ctx)

	v.mu.Lock()
	v.screenErr = err
	v.mu.Unlock()
}

// CameraError returns the last camera acquisition failure, if any.
func (v *DeviceVerifier) CameraError() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.camErr
}

// ScreenError returns the last screen-share acquisition failure, if any.
func (v *DeviceVerifier) ScreenError() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.screenErr
}

// FaceState returns the monitor's current face-presence state.
func (v *DeviceVerifier) FaceState() MonitorState {
	return v.monitor.State()
}

// ScreenRequired reports whether this round needs a live screen share.
func (v *DeviceVerifier) ScreenRequired() bool {
	return v.requireScreen
}

// CanContinue reports whether the candidate may proceed: devices held, the
// classifier ready, no active face warning, and screen share live when the
// flow requires it.
func (v *DeviceVerifier) CanContinue() bool {
	v.mu.Lock()
	camErr := v.camErr
	screenErr := v.screenErr
	v.mu.Unlock()

	if camErr != nil {
		return false
	}

	state := v.monitor.State()
	if state.Checking || state.Warning != domain.WarningNone {
		return false
	}

	if v.requireScreen && (screenErr != nil || v.flow.Screen() == nil) {
		return false
	}

	return true
}

// Stop halts monitoring. Stream ownership stays with the flow controller.
func (v *DeviceVerifier) Stop() {
	v.monitor.Stop()
}
