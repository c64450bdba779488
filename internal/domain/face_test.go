package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func centeredFace(confidence float64) FrameSample {
	return FrameSample{
		Width:  640,
		Height: 480,
		Detections: []Detection{
			{Confidence: confidence, Box: Rect{X: 220, Y: 140, Width: 200, Height: 200}},
		},
	}
}

func TestClassifyFrame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sample FrameSample
		want   FaceWarning
	}{
		{
			name:   "no detections",
			sample: FrameSample{Width: 640, Height: 480},
			want:   WarningNoFace,
		},
		{
			name: "multiple detections",
			sample: FrameSample{
				Width:  640,
				Height: 480,
				Detections: []Detection{
					{Confidence: 0.9, Box: Rect{X: 100, Y: 100, Width: 150, Height: 150}},
					{Confidence: 0.8, Box: Rect{X: 400, Y: 100, Width: 150, Height: 150}},
				},
			},
			want: WarningMultipleFaces,
		},
		{
			name:   "low confidence is obstruction",
			sample: centeredFace(0.59),
			want:   WarningObstruction,
		},
		{
			name:   "confidence at threshold passes",
			sample: centeredFace(0.6),
			want:   WarningNone,
		},
		{
			name: "face too small",
			sample: FrameSample{
				Width:  640,
				Height: 480,
				Detections: []Detection{
					{Confidence: 0.9, Box: Rect{X: 300, Y: 220, Width: 40, Height: 40}},
				},
			},
			want: WarningFaceNotVisible,
		},
		{
			name: "face out of frame beyond margin",
			sample: FrameSample{
				Width:  640,
				Height: 480,
				Detections: []Detection{
					{Confidence: 0.9, Box: Rect{X: -40, Y: 140, Width: 200, Height: 200}},
				},
			},
			want: WarningFaceNotVisible,
		},
		{
			name: "slightly past edge within margin is fine",
			sample: FrameSample{
				Width:  640,
				Height: 480,
				Detections: []Detection{
					{Confidence: 0.9, Box: Rect{X: -20, Y: 140, Width: 200, Height: 200}},
				},
			},
			want: WarningNone,
		},
		{
			name: "wide aspect is non-frontal",
			sample: FrameSample{
				Width:  640,
				Height: 480,
				Detections: []Detection{
					{Confidence: 0.9, Box: Rect{X: 140, Y: 170, Width: 320, Height: 140}},
				},
			},
			want: WarningFaceNotVisible,
		},
		{
			name: "narrow aspect is non-frontal",
			sample: FrameSample{
				Width:  640,
				Height: 480,
				Detections: []Detection{
					{Confidence: 0.9, Box: Rect{X: 280, Y: 110, Width: 140, Height: 260}},
				},
			},
			want: WarningFaceNotVisible,
		},
		{
			name:   "frontal centered face",
			sample: centeredFace(0.92),
			want:   WarningNone,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ClassifyFrame(tc.sample))
		})
	}
}

func TestClassifyFrameRuleOrder(t *testing.T) {
	t.Parallel()

	// Multiple faces wins over low confidence of the top detection.
	sample := FrameSample{
		Width:  640,
		Height: 480,
		Detections: []Detection{
			{Confidence: 0.3, Box: Rect{X: 100, Y: 100, Width: 40, Height: 40}},
			{Confidence: 0.2, Box: Rect{X: 400, Y: 100, Width: 40, Height: 40}},
		},
	}
	assert.Equal(t, WarningMultipleFaces, ClassifyFrame(sample))
}
