package application

import (
	"context"
	"sync"
	"time"

	"github.com/hirelens/interview-cli/internal/domain"
	"github.com/hirelens/interview-cli/internal/ports"
)

// fakeClock advances a fixed step on every reading, so dwell windows elapse
// in virtual time while loops run at test speed.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newFakeClock(start time.Time, step time.Duration) *fakeClock {
	return &fakeClock{now: start, step: step}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

type fakeStream struct {
	mu       sync.Mutex
	frames   []ports.Frame
	idx      int
	live     bool
	snapshot domain.Snapshot
	snapErr  error
	closed   bool
}

func (s *fakeStream) Frame() (ports.Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		return ports.Frame{}, false
	}
	frame := s.frames[s.idx]
	if s.idx < len(s.frames)-1 {
		s.idx++
	}
	return frame, true
}

func (s *fakeStream) Snapshot() (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot, s.snapErr
}

func (s *fakeStream) Live() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

func (s *fakeStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.live = false
	return nil
}

func (s *fakeStream) wasClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// cameraFrames builds a frame sequence with an advancing media clock.
func cameraFrames(n int) []ports.Frame {
	frames := make([]ports.Frame, n)
	for i := range frames {
		frames[i] = ports.Frame{Width: 640, Height: 480, MediaTime: int64(i * 400)}
	}
	return frames
}

type fakeClassifier struct {
	warmupErr error

	mu          sync.Mutex
	detections  [][]domain.Detection
	idx         int
	detectCalls int
}

func (c *fakeClassifier) Warmup(context.Context) error {
	return c.warmupErr
}

func (c *fakeClassifier) Detect(context.Context, ports.Frame) ([]domain.Detection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detectCalls++
	if len(c.detections) == 0 {
		return nil, nil
	}
	out := c.detections[c.idx]
	if c.idx < len(c.detections)-1 {
		c.idx++
	}
	return out, nil
}

func (c *fakeClassifier) Close() error {
	return nil
}

func (c *fakeClassifier) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.detectCalls
}

func frontalFace() []domain.Detection {
	return []domain.Detection{
		{Confidence: 0.92, Box: domain.Rect{X: 220, Y: 140, Width: 200, Height: 200}},
	}
}

type fakeConference struct {
	mu     sync.Mutex
	joined bool
	muted  bool
	left   bool
	ended  chan struct{}
}

func newFakeConference() *fakeConference {
	return &fakeConference{ended: make(chan struct{})}
}

func (c *fakeConference) Join(context.Context, domain.Credential) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.joined = true
	return nil
}

func (c *fakeConference) SetMuted(muted bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = muted
	return nil
}

func (c *fakeConference) Remote() ports.RemoteParticipant {
	return ports.RemoteParticipant{Present: true}
}

func (c *fakeConference) Ended() <-chan struct{} {
	return c.ended
}

func (c *fakeConference) Leave() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left = true
	return nil
}

func (c *fakeConference) endRemotely() {
	close(c.ended)
}

type fakeFullscreenEvents struct {
	ch chan domain.FullscreenChange
}

func newFakeFullscreenEvents() *fakeFullscreenEvents {
	return &fakeFullscreenEvents{ch: make(chan domain.FullscreenChange, 16)}
}

func (f *fakeFullscreenEvents) Events() <-chan domain.FullscreenChange {
	return f.ch
}
