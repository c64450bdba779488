// Package ws is the conferencing transport adapter: a persistent websocket
// session against the media server named by the session credential.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/hirelens/interview-cli/internal/domain"
	"github.com/hirelens/interview-cli/internal/ports"
)

const defaultHandshakeTimeout = 10 * time.Second

type clientMessage struct {
	Type  string `json:"type"`
	Token string `json:"token,omitempty"`
	Muted *bool  `json:"muted,omitempty"`
}

type serverMessage struct {
	Type     string `json:"type"`
	Present  bool   `json:"present"`
	Speaking bool   `json:"speaking"`
	Reason   string `json:"reason,omitempty"`
}

// Conference is a ports.Conference over a websocket transport. Ended is
// signalled both by an explicit session_ended message and by the connection
// dropping; the session core treats the two identically.
type Conference struct {
	HandshakeTimeout time.Duration
	Logger           zerolog.Logger

	mu       sync.Mutex
	conn     *websocket.Conn
	remote   ports.RemoteParticipant
	readDone chan struct{}

	writeMu sync.Mutex

	ended   chan struct{}
	endOnce sync.Once
}

var _ ports.Conference = (*Conference)(nil)

func New(logger zerolog.Logger) *Conference {
	return &Conference{
		Logger: logger,
		ended:  make(chan struct{}),
	}
}

// Join dials the media server from the credential, authenticates and starts
// the read loop. One Join per Conference.
func (c *Conference) Join(ctx context.Context, cred domain.Credential) error {
	if err := cred.Validate(); err != nil {
		return fmt.Errorf("validate credential: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return errors.New("already joined")
	}

	timeout := c.HandshakeTimeout
	if timeout <= 0 {
		timeout = defaultHandshakeTimeout
	}
	dialer := websocket.Dialer{HandshakeTimeout: timeout}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+cred.Token)

	conn, resp, err := dialer.DialContext(ctx, cred.ServerURL, headers)
	if err != nil {
		if resp != nil {
			defer func() { _ = resp.Body.Close() }()
			return fmt.Errorf("dial media server: status %d: %w", resp.StatusCode, err)
		}
		return fmt.Errorf("dial media server: %w", err)
	}

	if err := c.writeMessage(conn, clientMessage{Type: "join", Token: cred.Token}); err != nil {
		_ = conn.Close()
		return fmt.Errorf("send join: %w", err)
	}

	c.conn = conn
	c.readDone = make(chan struct{})
	go c.readLoop(conn, c.readDone)

	return nil
}

// SetMuted flips the local participant's mute state on the server.
func (c *Conference) SetMuted(muted bool) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return domain.ErrConferenceClosed
	}

	if err := c.writeMessage(conn, clientMessage{Type: "mute", Muted: &muted}); err != nil {
		return fmt.Errorf("send mute: %w", err)
	}
	return nil
}

// Remote returns the last observed state of the far participant.
func (c *Conference) Remote() ports.RemoteParticipant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remote
}

// Ended is closed when the far side ends the call or the transport drops.
func (c *Conference) Ended() <-chan struct{} {
	return c.ended
}

// Leave sends the leave message, closes the connection and waits for the read
// loop to drain. Safe to call after the session has already ended.
func (c *Conference) Leave() error {
	c.mu.Lock()
	conn := c.conn
	readDone := c.readDone
	c.conn = nil
	c.mu.Unlock()

	if conn == nil {
		return nil
	}

	// Best effort; the server may already be gone.
	_ = c.writeMessage(conn, clientMessage{Type: "leave"})
	c.writeMu.Lock()
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.writeMu.Unlock()

	err := conn.Close()
	if readDone != nil {
		<-readDone
	}

	c.signalEnded()
	return err
}

func (c *Conference) readLoop(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	defer c.signalEnded()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.Logger.Debug().Err(err).Msg("conference read loop ended")
			}
			return
		}

		var msg serverMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.Logger.Debug().Err(err).Msg("unparseable conference message")
			continue
		}

		switch msg.Type {
		case "participant":
			c.mu.Lock()
			c.remote = ports.RemoteParticipant{Present: msg.Present, Speaking: msg.Speaking}
			c.mu.Unlock()
		case "session_ended":
			c.Logger.Info().Str("reason", msg.Reason).Msg("session ended by server")
			return
		}
	}
}

func (c *Conference) writeMessage(conn *websocket.Conn, msg clientMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (c *Conference) signalEnded() {
	c.endOnce.Do(func() { close(c.ended) })
}
