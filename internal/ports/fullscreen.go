package ports

import "github.com/hirelens/interview-cli/internal/domain"

// FullscreenEvents delivers fullscreen transitions observed by the UI layer.
type FullscreenEvents interface {
	Events() <-chan domain.FullscreenChange
}
