package domain

import "time"

// Dwell windows for the warning hysteresis. A warning is raised only after a
// non-none classification holds continuously for RaiseDwell, and cleared only
// after none holds continuously for ClearDwell.
const (
	RaiseDwell = 1200 * time.Millisecond
	ClearDwell = 800 * time.Millisecond
)

type warningPhase int

const (
	phaseIdle warningPhase = iota
	phasePendingRaise
	phaseRaised
	phasePendingClear
)

// WarningMachine debounces noisy per-frame classifications into a stable
// FaceWarning. The deadline fields are the only timing state, so the machine
// can be driven with an injected clock. Not safe for concurrent use.
type WarningMachine struct {
	phase     warningPhase
	candidate FaceWarning
	deadline  time.Time
	active    FaceWarning
}

func NewWarningMachine() *WarningMachine {
	return &WarningMachine{active: WarningNone}
}

// Observe feeds one classification into the machine and returns the stable
// warning after the observation. The caller supplies its own clock reading.
func (m *WarningMachine) Observe(class FaceWarning, now time.Time) FaceWarning {
	switch m.phase {
	case phaseIdle:
		if class != WarningNone {
			m.phase = phasePendingRaise
			m.candidate = class
			m.deadline = now.Add(RaiseDwell)
		}
	case phasePendingRaise:
		if class == WarningNone {
			m.phase = phaseIdle
			m.candidate = WarningNone
			break
		}
		// The dwell is anchored to the first non-none observation; a change
		// of kind mid-streak updates the candidate without rearming.
		m.candidate = class
		if !now.Before(m.deadline) {
			m.phase = phaseRaised
			m.active = m.candidate
		}
	case phaseRaised:
		if class == WarningNone {
			m.phase = phasePendingClear
			m.deadline = now.Add(ClearDwell)
		}
	case phasePendingClear:
		if class != WarningNone {
			m.phase = phaseRaised
			break
		}
		if !now.Before(m.deadline) {
			m.phase = phaseIdle
			m.candidate = WarningNone
			m.active = WarningNone
		}
	}

	return m.active
}

// Warning returns the current stable warning.
func (m *WarningMachine) Warning() FaceWarning {
	return m.active
}

// Reset cancels any pending dwell and forces the warning back to none.
func (m *WarningMachine) Reset() {
	m.phase = phaseIdle
	m.candidate = WarningNone
	m.active = WarningNone
	m.deadline = time.Time{}
}
