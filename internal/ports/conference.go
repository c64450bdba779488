package ports

import (
	"context"

	"github.com/hirelens/interview-cli/internal/domain"
)

// RemoteParticipant is the observed state of the AI interviewer on the call.
type RemoteParticipant struct {
	Present  bool
	Speaking bool
}

// Conference is the real-time conferencing transport that carries the
// conversation. The core constructs it from the media session credential and
// maps its Ended signal to interview completion.
type Conference interface {
	Join(ctx context.Context, cred domain.Credential) error
	SetMuted(muted bool) error
	Remote() RemoteParticipant
	// Ended is closed when the far side ends the call or the transport drops.
	Ended() <-chan struct{}
	Leave() error
}
