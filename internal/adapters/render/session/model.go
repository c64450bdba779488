// Package session is the live interview terminal view: countdown, remote
// participant status, face warnings and the blocking dialogs. Terminal focus
// transitions are forwarded to the fullscreen watcher.
package session

import (
	"context"
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirelens/interview-cli/internal/application"
	"github.com/hirelens/interview-cli/internal/domain"
)

var ErrUnexpectedSessionModel = errors.New("unexpected final bubbletea model type")

const pollInterval = 250 * time.Millisecond

// Controller is the slice of the active session the view drives.
type Controller interface {
	State() application.ActiveSessionState
	DismissTips()
	DismissReminder()
	ToggleMute()
	Stop()
}

// FocusReporter receives terminal focus transitions.
type FocusReporter interface {
	Report(focused bool)
}

type tickMsg time.Time

type model struct {
	session Controller
	focus   FocusReporter
	meta    domain.InterviewMetadata
	styles  styles
	state   application.ActiveSessionState
}

func newModel(session Controller, focus FocusReporter, meta domain.InterviewMetadata) model {
	return model{
		session: session,
		focus:   focus,
		meta:    meta,
		styles:  newStyles(),
		state:   session.State(),
	}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.state = m.session.State()
		if m.state.Done {
			return m, tea.Quit
		}
		return m, tick()

	case tea.FocusMsg:
		m.focus.Report(true)
		return m, nil

	case tea.BlurMsg:
		m.focus.Report(false)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		return m, nil
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		if m.state.TipsOpen {
			m.session.DismissTips()
		} else if m.state.ReminderOpen {
			m.session.DismissReminder()
		}
		m.state = m.session.State()
		return m, nil

	case "m":
		if !m.state.TipsOpen {
			m.session.ToggleMute()
			m.state = m.session.State()
		}
		return m, nil

	case "q", "ctrl+c":
		m.session.Stop()
		return m, tea.Quit

	default:
		return m, nil
	}
}

func (m model) View() string {
	return renderView(m.state, m.meta, m.styles)
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run drives the session view until the session completes or the candidate
// leaves.
func Run(ctx context.Context, session Controller, focus FocusReporter, meta domain.InterviewMetadata, output io.Writer) error {
	p := tea.NewProgram(
		newModel(session, focus, meta),
		tea.WithOutput(output),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(model); !ok {
		return ErrUnexpectedSessionModel
	}
	return nil
}
