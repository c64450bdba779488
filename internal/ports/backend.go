package ports

import (
	"context"

	"github.com/hirelens/interview-cli/internal/domain"
)

// Backend is the interview backend the client reports to.
type Backend interface {
	// BootstrapSession exchanges candidate identity and an interview id for
	// the media session credential and round metadata.
	BootstrapSession(ctx context.Context, interviewID, candidateEmail, accessCode string) (domain.SessionBootstrap, error)

	// SubmitIntegrityEvent records one violation or periodic checkpoint.
	SubmitIntegrityEvent(ctx context.Context, event domain.IntegrityEvent) error

	// RequestEvidenceSlot asks for an upload destination for one evidence
	// object of the given name and size.
	RequestEvidenceSlot(ctx context.Context, name string, size int64) (domain.EvidenceSlot, error)

	// UploadEvidence performs the direct multipart upload to the slot.
	UploadEvidence(ctx context.Context, slot domain.EvidenceSlot, name string, data []byte) error
}
