package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelens/interview-cli/internal/domain"
	"github.com/hirelens/interview-cli/internal/log"
)

var upgrader = websocket.Upgrader{}

// mediaServer is a scripted far side: it records received client messages and
// plays back server messages on demand.
type mediaServer struct {
	t        *testing.T
	received chan clientMessage
	conns    chan *websocket.Conn
	auth     chan string
}

func newMediaServer(t *testing.T) (*mediaServer, string) {
	t.Helper()

	s := &mediaServer{
		t:        t,
		received: make(chan clientMessage, 16),
		conns:    make(chan *websocket.Conn, 1),
		auth:     make(chan string, 1),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.auth <- r.Header.Get("Authorization")

		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		s.conns <- conn

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var msg clientMessage
			require.NoError(t, json.Unmarshal(data, &msg))
			s.received <- msg
		}
	}))
	t.Cleanup(server.Close)

	return s, "ws" + strings.TrimPrefix(server.URL, "http")
}

func (s *mediaServer) send(msg serverMessage) {
	conn := <-s.conns
	s.conns <- conn
	data, err := json.Marshal(msg)
	require.NoError(s.t, err)
	require.NoError(s.t, conn.WriteMessage(websocket.TextMessage, data))
}

func (s *mediaServer) next() clientMessage {
	select {
	case msg := <-s.received:
		return msg
	case <-time.After(time.Second):
		s.t.Fatal("timed out waiting for client message")
		return clientMessage{}
	}
}

func TestConferenceJoinAuthenticatesAndAnnounces(t *testing.T) {
	server, url := newMediaServer(t)
	conf := New(log.WithComponent("test"))
	t.Cleanup(func() { _ = conf.Leave() })

	err := conf.Join(context.Background(), domain.Credential{Token: "tok-1", ServerURL: url})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", <-server.auth)

	join := server.next()
	assert.Equal(t, "join", join.Type)
	assert.Equal(t, "tok-1", join.Token)
}

func TestConferenceJoinTwiceFails(t *testing.T) {
	_, url := newMediaServer(t)
	conf := New(log.WithComponent("test"))
	t.Cleanup(func() { _ = conf.Leave() })

	cred := domain.Credential{Token: "tok-1", ServerURL: url}
	require.NoError(t, conf.Join(context.Background(), cred))
	require.Error(t, conf.Join(context.Background(), cred))
}

func TestConferenceTracksRemoteParticipant(t *testing.T) {
	server, url := newMediaServer(t)
	conf := New(log.WithComponent("test"))
	t.Cleanup(func() { _ = conf.Leave() })

	require.NoError(t, conf.Join(context.Background(), domain.Credential{Token: "tok-1", ServerURL: url}))
	assert.False(t, conf.Remote().Present)

	server.send(serverMessage{Type: "participant", Present: true, Speaking: true})

	require.Eventually(t, func() bool {
		remote := conf.Remote()
		return remote.Present && remote.Speaking
	}, time.Second, time.Millisecond)
}

func TestConferenceSetMutedSendsMessage(t *testing.T) {
	server, url := newMediaServer(t)
	conf := New(log.WithComponent("test"))
	t.Cleanup(func() { _ = conf.Leave() })

	require.NoError(t, conf.Join(context.Background(), domain.Credential{Token: "tok-1", ServerURL: url}))
	server.next() // join

	require.NoError(t, conf.SetMuted(true))
	msg := server.next()
	assert.Equal(t, "mute", msg.Type)
	require.NotNil(t, msg.Muted)
	assert.True(t, *msg.Muted)
}

func TestConferenceSetMutedBeforeJoinFails(t *testing.T) {
	conf := New(log.WithComponent("test"))
	require.ErrorIs(t, conf.SetMuted(true), domain.ErrConferenceClosed)
}

func TestConferenceRemoteEndSignalsEnded(t *testing.T) {
	server, url := newMediaServer(t)
	conf := New(log.WithComponent("test"))
	t.Cleanup(func() { _ = conf.Leave() })

	require.NoError(t, conf.Join(context.Background(), domain.Credential{Token: "tok-1", ServerURL: url}))

	select {
	case <-conf.Ended():
		t.Fatal("ended before the server closed the session")
	default:
	}

	server.send(serverMessage{Type: "session_ended", Reason: "interview finished"})

	select {
	case <-conf.Ended():
	case <-time.After(time.Second):
		t.Fatal("ended signal never fired")
	}
}

func TestConferenceLeaveSendsLeaveAndSignalsEnded(t *testing.T) {
	server, url := newMediaServer(t)
	conf := New(log.WithComponent("test"))

	require.NoError(t, conf.Join(context.Background(), domain.Credential{Token: "tok-1", ServerURL: url}))
	server.next() // join

	require.NoError(t, conf.Leave())

	select {
	case <-conf.Ended():
	case <-time.After(time.Second):
		t.Fatal("ended signal never fired after leave")
	}

	// A second leave is a no-op.
	require.NoError(t, conf.Leave())
}

func TestConferenceJoinRejectsBadCredential(t *testing.T) {
	conf := New(log.WithComponent("test"))
	err := conf.Join(context.Background(), domain.Credential{Token: "tok-1"})
	require.Error(t, err)
}
