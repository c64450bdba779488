package ports

import (
	"context"

	"github.com/hirelens/interview-cli/internal/domain"
)

// Frame is one decoded video frame pulled cooperatively from a stream.
// MediaTime is the stream's own media clock; a frame with an unchanged
// MediaTime has not advanced and must not be re-evaluated.
type Frame struct {
	Data      []byte
	Width     int
	Height    int
	MediaTime int64 // media-clock position in milliseconds
}

// DeviceStream is an owned handle on a live camera/mic or screen-share
// stream. Exactly one owner at a time; consumers hold read-only references
// and must not close a stream they do not own.
type DeviceStream interface {
	// Frame returns the most recently decoded frame, if any.
	Frame() (Frame, bool)
	// Snapshot captures one still image from the stream for evidence.
	Snapshot() (domain.Snapshot, error)
	// Live reports whether the stream still has an active video track.
	Live() bool
	// Close stops the stream and releases the underlying hardware. Owner only.
	Close() error
}

// MediaDevices acquires device streams. Acquisition blocks on the
// platform permission grant; denial surfaces as domain.ErrPermissionDenied
// or domain.ErrScreenShareDenied.
type MediaDevices interface {
	AcquireCamera(ctx context.Context) (DeviceStream, error)
	AcquireScreen(ctx context.Context) (DeviceStream, error)
}
