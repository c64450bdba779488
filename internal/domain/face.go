package domain

import "time"

// FaceWarning is the stable face-presence signal shown to the candidate.
type FaceWarning string

const (
	WarningNone           FaceWarning = "none"
	WarningNoFace         FaceWarning = "no_face"
	WarningMultipleFaces  FaceWarning = "multiple_faces"
	WarningFaceNotVisible FaceWarning = "face_not_visible"
	WarningObstruction    FaceWarning = "obstruction"
)

// Rect is a bounding box in frame-pixel coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Detection is one face reported by the classifier for a single frame.
type Detection struct {
	Confidence float64
	Box        Rect
}

// FrameSample is the per-frame classifier output. Ephemeral: consumed
// immediately into a classification, never persisted.
type FrameSample struct {
	Width      int
	Height     int
	MediaTime  time.Duration
	Detections []Detection
}

// Classification thresholds.
const (
	minDetectionConfidence = 0.6
	minFaceSizeFraction    = 0.12
	edgeMarginFraction     = 0.05
	minFaceAspect          = 0.65
	maxFaceAspect          = 1.5
)

// ClassifyFrame turns one frame sample into a raw classification. Rules are
// evaluated in order, first match wins.
func ClassifyFrame(sample FrameSample) FaceWarning {
	if len(sample.Detections) == 0 {
		return WarningNoFace
	}
	if len(sample.Detections) > 1 {
		return WarningMultipleFaces
	}

	detection := topDetection(sample.Detections)
	if detection.Confidence < minDetectionConfidence {
		return WarningObstruction
	}

	frameW := float64(sample.Width)
	frameH := float64(sample.Height)
	if frameW <= 0 || frameH <= 0 {
		return WarningNoFace
	}

	box := detection.Box
	if box.Width/frameW < minFaceSizeFraction || box.Height/frameH < minFaceSizeFraction {
		return WarningFaceNotVisible
	}

	// Face at the edge, partially out of frame.
	marginX := frameW * edgeMarginFraction
	marginY := frameH * edgeMarginFraction
	if box.X < -marginX || box.Y < -marginY ||
		box.X+box.Width > frameW+marginX || box.Y+box.Height > frameH+marginY {
		return WarningFaceNotVisible
	}

	// Aspect ratio outside the frontal range is a non-frontal orientation proxy.
	if box.Height > 0 {
		aspect := box.Width / box.Height
		if aspect < minFaceAspect || aspect > maxFaceAspect {
			return WarningFaceNotVisible
		}
	}

	return WarningNone
}

func topDetection(detections []Detection) Detection {
	top := detections[0]
	for _, d := range detections[1:] {
		if d.Confidence > top.Confidence {
			top = d
		}
	}
	return top
}
