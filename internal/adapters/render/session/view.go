package session

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hirelens/interview-cli/internal/application"
	"github.com/hirelens/interview-cli/internal/domain"
)

// lowTimeSeconds mirrors the countdown reminder threshold: below it the
// clock turns red.
const lowTimeSeconds = 300

func renderView(state application.ActiveSessionState, meta domain.InterviewMetadata, s styles) string {
	if state.Done {
		return s.doneBanner.Render("Interview complete. You may close this window.")
	}

	if state.TipsOpen {
		return renderTipsDialog(meta, s)
	}

	lines := []string{
		s.title.Render(sessionTitle(meta)),
		clockLine(state, s),
		remoteLine(state, s),
	}

	if banner := warningBanner(state, s); banner != "" {
		lines = append(lines, banner)
	}

	if state.FullscreenDialogOpen {
		lines = append(lines, s.dialog.Render("Return to fullscreen to continue the interview."))
	}
	if state.ReminderOpen {
		lines = append(lines, s.dialog.Render(fmt.Sprintf(
			"Less than %d minutes remaining.\nPress %s to dismiss.",
			lowTimeSeconds/60, s.dialogKey.Render("enter"),
		)))
	}

	lines = append(lines, s.help.Render("m mute · q leave"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTipsDialog(meta domain.InterviewMetadata, s styles) string {
	body := fmt.Sprintf(
		"%s\n\nStay in fullscreen and keep your face visible.\nThe timer starts when you continue.\n\nPress %s to begin.",
		sessionTitle(meta), s.dialogKey.Render("enter"),
	)
	return s.dialog.Render(body)
}

func sessionTitle(meta domain.InterviewMetadata) string {
	if meta.RoundName == "" {
		return "Interview"
	}
	return meta.RoundName
}

func clockLine(state application.ActiveSessionState, s styles) string {
	if state.Total == 0 {
		return s.header.Render("time: --:--")
	}

	style := s.clock
	if state.Remaining < lowTimeSeconds {
		style = s.clockLow
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.header.Render("time: "),
		style.Render(formatClock(state.Remaining)),
	)
}

func remoteLine(state application.ActiveSessionState, s styles) string {
	label := "interviewer: connecting"
	if state.Remote.Present {
		label = "interviewer: connected"
		if state.Remote.Speaking {
			label = "interviewer: speaking"
		}
	}
	line := s.remote.Render(label)

	if state.Muted {
		line += " " + s.muted.Render("[muted]")
	}
	return line
}

func warningBanner(state application.ActiveSessionState, s styles) string {
	if state.Checking {
		return s.checking.Render("checking camera...")
	}

	text, ok := warningText(state.Warning)
	if !ok {
		return ""
	}
	return s.warning.Render(text)
}

func warningText(warning domain.FaceWarning) (string, bool) {
	switch warning {
	case domain.WarningNoFace:
		return "We can't see you. Please face the camera.", true
	case domain.WarningMultipleFaces:
		return "More than one person is visible.", true
	case domain.WarningFaceNotVisible:
		return "Your face is not fully visible. Move closer to the camera.", true
	case domain.WarningObstruction:
		return "The camera view is obstructed.", true
	default:
		return "", false
	}
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
