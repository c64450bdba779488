package ports

import (
	"context"

	"github.com/hirelens/interview-cli/internal/domain"
)

// CredentialStore persists the media session credential between invocations
// so a restarted client can resume at the guidelines screen instead of
// re-authenticating.
type CredentialStore interface {
	Load(ctx context.Context) (domain.Credential, error)
	Save(ctx context.Context, cred domain.Credential) error
	Clear(ctx context.Context) error
}
