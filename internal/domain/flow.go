package domain

// FlowState is one of the session flow states. The flow controller owns the
// current value; nothing else mutates it.
type FlowState string

const (
	FlowAuth                     FlowState = "auth"
	FlowGuidelines               FlowState = "guidelines"
	FlowVerificationInstructions FlowState = "verification_instructions"
	FlowVerificationReady        FlowState = "verification_ready"
	FlowVerificationRecording    FlowState = "verification_recording"
	FlowVerificationCompleted    FlowState = "verification_completed"
	FlowInterviewActive          FlowState = "interview_active"
	FlowInterviewComplete        FlowState = "interview_complete"
)

// RequiresDevices reports whether the camera/mic stream must be held while
// the flow sits in this state.
func (s FlowState) RequiresDevices() bool {
	switch s {
	case FlowVerificationReady, FlowVerificationRecording, FlowVerificationCompleted, FlowInterviewActive:
		return true
	default:
		return false
	}
}

var flowSuccessors = map[FlowState][]FlowState{
	FlowAuth:                     {FlowGuidelines},
	FlowGuidelines:               {FlowVerificationInstructions},
	FlowVerificationInstructions: {FlowVerificationReady},
	FlowVerificationReady:        {FlowVerificationRecording},
	FlowVerificationRecording:    {FlowVerificationReady, FlowVerificationCompleted},
	FlowVerificationCompleted:    {FlowVerificationReady, FlowInterviewActive},
	FlowInterviewActive:          {FlowInterviewComplete},
	FlowInterviewComplete:        {},
}

// CanTransitionTo reports whether moving from s to next is a legal flow step.
func (s FlowState) CanTransitionTo(next FlowState) bool {
	for _, candidate := range flowSuccessors[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

func (s FlowState) String() string {
	return string(s)
}
