package ports

import (
	"context"

	"github.com/hirelens/interview-cli/internal/domain"
)

// FaceClassifier is the on-device face-detection collaborator: one decoded
// frame in, zero or more detections out.
type FaceClassifier interface {
	// Warmup loads the model. Must be called once before Detect.
	Warmup(ctx context.Context) error
	Detect(ctx context.Context, frame Frame) ([]domain.Detection, error)
	Close() error
}
