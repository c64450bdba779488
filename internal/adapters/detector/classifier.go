// Package detector is the face-detection adapter: a request/response
// websocket client against the local detection sidecar. One frame in, zero or
// more face boxes out.
package detector

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hirelens/interview-cli/internal/domain"
	"github.com/hirelens/interview-cli/internal/ports"
)

const (
	defaultHandshakeTimeout = 10 * time.Second
	defaultWarmupTimeout    = 30 * time.Second
	defaultDetectTimeout    = 2 * time.Second
)

type frameMessage struct {
	Type      string `json:"type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MediaTime int64  `json:"media_time"`
	Data      string `json:"data,omitempty"`
}

type detectionMessage struct {
	Type       string `json:"type"`
	Error      string `json:"error,omitempty"`
	Detections []struct {
		Confidence float64 `json:"confidence"`
		X          float64 `json:"x"`
		Y          float64 `json:"y"`
		Width      float64 `json:"width"`
		Height     float64 `json:"height"`
	} `json:"detections"`
}

// Classifier is a ports.FaceClassifier backed by the detection sidecar. The
// protocol is strict request/response, serialized by an internal lock; the
// face monitor samples serially so the lock is uncontended in practice.
type Classifier struct {
	URL              string
	HandshakeTimeout time.Duration
	WarmupTimeout    time.Duration
	DetectTimeout    time.Duration

	mu   sync.Mutex
	conn *websocket.Conn
}

var _ ports.FaceClassifier = (*Classifier)(nil)

// Warmup connects to the sidecar and waits for it to report the model loaded.
func (c *Classifier) Warmup(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}

	timeout := c.HandshakeTimeout
	if timeout <= 0 {
		timeout = defaultHandshakeTimeout
	}
	dialer := websocket.Dialer{HandshakeTimeout: timeout}

	conn, resp, err := dialer.DialContext(ctx, c.URL, nil)
	if err != nil {
		if resp != nil {
			defer func() { _ = resp.Body.Close() }()
			return fmt.Errorf("dial detector: status %d: %w", resp.StatusCode, err)
		}
		return fmt.Errorf("dial detector: %w", err)
	}

	warmupTimeout := c.WarmupTimeout
	if warmupTimeout <= 0 {
		warmupTimeout = defaultWarmupTimeout
	}

	reply, err := roundTrip(conn, frameMessage{Type: "warmup"}, warmupTimeout)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("detector warmup: %w", err)
	}
	if reply.Type != "ready" {
		_ = conn.Close()
		if reply.Error != "" {
			return fmt.Errorf("detector warmup: %s", reply.Error)
		}
		return fmt.Errorf("detector warmup: unexpected reply %q", reply.Type)
	}

	c.conn = conn
	return nil
}

// Detect submits one frame and returns the detected face boxes.
func (c *Classifier) Detect(ctx context.Context, frame ports.Frame) ([]domain.Detection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, domain.ErrClassifierNotReady
	}

	timeout := c.DetectTimeout
	if timeout <= 0 {
		timeout = defaultDetectTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	reply, err := roundTrip(c.conn, frameMessage{
		Type:      "frame",
		Width:     frame.Width,
		Height:    frame.Height,
		MediaTime: frame.MediaTime,
		Data:      base64.StdEncoding.EncodeToString(frame.Data),
	}, timeout)
	if err != nil {
		return nil, fmt.Errorf("detect frame: %w", err)
	}

	if reply.Type != "detections" {
		if reply.Error != "" {
			return nil, fmt.Errorf("detect frame: %s", reply.Error)
		}
		return nil, fmt.Errorf("detect frame: unexpected reply %q", reply.Type)
	}

	detections := make([]domain.Detection, 0, len(reply.Detections))
	for _, d := range reply.Detections {
		detections = append(detections, domain.Detection{
			Confidence: d.Confidence,
			Box: domain.Rect{
				X:      d.X,
				Y:      d.Y,
				Width:  d.Width,
				Height: d.Height,
			},
		})
	}
	return detections, nil
}

// Close drops the sidecar connection.
func (c *Classifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	err := c.conn.Close()
	c.conn = nil
	return err
}

func roundTrip(conn *websocket.Conn, msg frameMessage, timeout time.Duration) (detectionMessage, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return detectionMessage{}, err
	}

	if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return detectionMessage{}, err
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return detectionMessage{}, err
	}

	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return detectionMessage{}, err
	}
	_, raw, err := conn.ReadMessage()
	if err != nil {
		return detectionMessage{}, err
	}

	var reply detectionMessage
	if err := json.Unmarshal(raw, &reply); err != nil {
		return detectionMessage{}, err
	}
	if reply.Type == "" {
		return detectionMessage{}, errors.New("reply missing type")
	}
	return reply, nil
}
