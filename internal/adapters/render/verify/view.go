package verify

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hirelens/interview-cli/internal/domain"
)

func renderView(checker Checker, spinnerFrame string, s styles) string {
	lines := []string{
		s.title.Render("Device check"),
		cameraLine(checker, s),
	}

	if checker.ScreenRequired() {
		lines = append(lines, screenLine(checker, s))
	}

	lines = append(lines, faceLine(checker, spinnerFrame, s))

	if checker.CanContinue() {
		lines = append(lines, s.ok.Render("All set. Press enter to continue."))
	}
	lines = append(lines, s.help.Render(helpLine(checker)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func cameraLine(checker Checker, s styles) string {
	if err := checker.CameraError(); err != nil {
		return s.bad.Render("camera: denied") + " " + s.detail.Render("press c to retry")
	}
	return s.ok.Render("camera: ready")
}

func screenLine(checker Checker, s styles) string {
	if err := checker.ScreenError(); err != nil {
		return s.bad.Render("screen share: denied") + " " + s.detail.Render("press s to retry")
	}
	return s.ok.Render("screen share: ready")
}

func faceLine(checker Checker, spinnerFrame string, s styles) string {
	if checker.CameraError() != nil {
		return s.pending.Render("face check: waiting for camera")
	}

	state := checker.FaceState()
	if state.Checking {
		return spinnerFrame + " " + s.pending.Render("face check: starting...")
	}

	if text, ok := faceText(state.Warning); ok {
		return s.bad.Render("face check: " + text)
	}
	return s.ok.Render("face check: ok")
}

func faceText(warning domain.FaceWarning) (string, bool) {
	switch warning {
	case domain.WarningNoFace:
		return "no face visible", true
	case domain.WarningMultipleFaces:
		return "more than one person visible", true
	case domain.WarningFaceNotVisible:
		return "face not fully visible", true
	case domain.WarningObstruction:
		return "camera view obstructed", true
	default:
		return "", false
	}
}

func helpLine(checker Checker) string {
	if checker.ScreenRequired() {
		return "c retry camera · s retry screen · q quit"
	}
	return "c retry camera · q quit"
}
