// Package verify is the pre-interview device check view: camera and screen
// acquisition status, the live face check, and retry actions for denied
// permissions.
package verify

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hirelens/interview-cli/internal/application"
)

var ErrUnexpectedVerifyModel = errors.New("unexpected final bubbletea model type")

const pollInterval = 250 * time.Millisecond

// Checker is the slice of the device verifier the view drives.
type Checker interface {
	CameraError() error
	ScreenError() error
	FaceState() application.MonitorState
	ScreenRequired() bool
	CanContinue() bool
	RetryCamera(ctx context.Context)
	RetryScreen(ctx context.Context)
}

type tickMsg time.Time

// Outcome is how the candidate left the device check.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeQuit
)

type model struct {
	ctx     context.Context
	checker Checker
	spinner spinner.Model
	styles  styles
	outcome Outcome
}

func newModel(ctx context.Context, checker Checker) model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return model{
		ctx:     ctx,
		checker: checker,
		spinner: s,
		styles:  newStyles(),
		outcome: OutcomeQuit,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			m.checker.RetryCamera(m.ctx)
			return m, nil
		case "s":
			if m.checker.ScreenRequired() {
				m.checker.RetryScreen(m.ctx)
			}
			return m, nil
		case "enter":
			if m.checker.CanContinue() {
				m.outcome = OutcomeContinue
				return m, tea.Quit
			}
			return m, nil
		case "q", "ctrl+c":
			m.outcome = OutcomeQuit
			return m, tea.Quit
		default:
			return m, nil
		}

	default:
		return m, nil
	}
}

func (m model) View() string {
	return renderView(m.checker, m.spinner.View(), m.styles)
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run drives the device check until the candidate continues or quits.
func Run(ctx context.Context, checker Checker, output io.Writer) (Outcome, error) {
	p := tea.NewProgram(
		newModel(ctx, checker),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return OutcomeQuit, err
	}

	result, ok := finalModel.(model)
	if !ok {
		return OutcomeQuit, ErrUnexpectedVerifyModel
	}
	return result.outcome, nil
}
