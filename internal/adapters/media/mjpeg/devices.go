// Package mjpeg acquires device streams from the local capture helper, which
// exposes the camera and the shared screen as multipart/x-mixed-replace MJPEG
// endpoints.
package mjpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hirelens/interview-cli/internal/domain"
	"github.com/hirelens/interview-cli/internal/ports"
)

const maxFrameBytes = 8 << 20

// Devices acquires MJPEG streams from the capture helper. A 403 from the
// helper means the platform permission prompt was declined.
type Devices struct {
	CameraURL  string
	ScreenURL  string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

var _ ports.MediaDevices = (*Devices)(nil)

func (d *Devices) AcquireCamera(ctx context.Context) (ports.DeviceStream, error) {
	stream, err := d.acquire(ctx, d.CameraURL, domain.ErrPermissionDenied)
	if err != nil {
		return nil, fmt.Errorf("acquire camera: %w", err)
	}
	return stream, nil
}

func (d *Devices) AcquireScreen(ctx context.Context) (ports.DeviceStream, error) {
	stream, err := d.acquire(ctx, d.ScreenURL, domain.ErrScreenShareDenied)
	if err != nil {
		return nil, fmt.Errorf("acquire screen: %w", err)
	}
	return stream, nil
}

func (d *Devices) acquire(ctx context.Context, url string, denied error) (*Stream, error) {
	if url == "" {
		return nil, errors.New("capture url is required")
	}

	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create capture request: %w", err)
	}

	resp, err := d.httpClient().Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusForbidden {
		_ = resp.Body.Close()
		return nil, denied
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("capture helper returned status %d", resp.StatusCode)
	}

	mediaType, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/x-mixed-replace" || params["boundary"] == "" {
		_ = resp.Body.Close()
		return nil, errors.New("capture helper did not return an mjpeg stream")
	}

	s := &Stream{
		body:    resp.Body,
		reader:  multipart.NewReader(resp.Body, params["boundary"]),
		logger:  d.Logger,
		live:    true,
		started: time.Now(),
		done:    make(chan struct{}),
	}
	go s.readLoop()

	return s, nil
}

func (d *Devices) httpClient() *http.Client {
	if d.HTTPClient != nil {
		return d.HTTPClient
	}
	return http.DefaultClient
}

// Stream is one live MJPEG stream. The read loop keeps only the most recent
// frame; consumers pull it cooperatively and use MediaTime to tell whether
// the stream has advanced.
type Stream struct {
	body    io.ReadCloser
	reader  *multipart.Reader
	logger  zerolog.Logger
	started time.Time

	mu        sync.Mutex
	frame     ports.Frame
	haveFrame bool
	live      bool

	closeOnce sync.Once
	done      chan struct{}
}

var _ ports.DeviceStream = (*Stream)(nil)

func (s *Stream) Frame() (ports.Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame, s.haveFrame
}

// Snapshot captures the latest frame as a still image for evidence.
func (s *Stream) Snapshot() (domain.Snapshot, error) {
	s.mu.Lock()
	frame := s.frame
	haveFrame := s.haveFrame
	s.mu.Unlock()

	if !haveFrame {
		return domain.Snapshot{}, domain.ErrStreamNotLive
	}

	return domain.Snapshot{
		Data:   frame.Data,
		Width:  frame.Width,
		Height: frame.Height,
	}, nil
}

func (s *Stream) Live() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

// Close stops the stream and releases the underlying capture. Owner only.
func (s *Stream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.body.Close()
		<-s.done
	})
	return err
}

func (s *Stream) readLoop() {
	defer close(s.done)
	defer func() {
		s.mu.Lock()
		s.live = false
		s.mu.Unlock()
	}()

	for {
		part, err := s.reader.NextPart()
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, http.ErrBodyReadAfterClose) {
				s.logger.Debug().Err(err).Msg("mjpeg stream ended")
			}
			return
		}

		data, err := io.ReadAll(io.LimitReader(part, maxFrameBytes))
		if err != nil {
			return
		}

		config, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			// Skip frames the helper truncated mid-write.
			continue
		}

		mediaTime := s.mediaTime(part.Header.Get("X-Timestamp"))

		s.mu.Lock()
		s.frame = ports.Frame{
			Data:      data,
			Width:     config.Width,
			Height:    config.Height,
			MediaTime: mediaTime,
		}
		s.haveFrame = true
		s.mu.Unlock()
	}
}

// mediaTime prefers the helper's own media clock and falls back to elapsed
// wall time.
func (s *Stream) mediaTime(header string) int64 {
	if header != "" {
		if parsed, err := strconv.ParseInt(header, 10, 64); err == nil {
			return parsed
		}
	}
	return time.Since(s.started).Milliseconds()
}
