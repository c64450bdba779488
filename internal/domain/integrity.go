package domain

// Integrity event types reported to the backend.
const (
	EventExitFullscreen = "exit_fullscreen"
	EventNoFace         = "no_face"
	EventMultipleFaces  = "multiple_faces"
	EventFaceNotVisible = "face_not_visible"
	EventObstruction    = "obstruction"
	EventPeriodicCheck  = "periodic_check"
)

// IntegrityEvent records a proctoring violation or a periodic audit
// checkpoint. Created at detection time and submitted at most once; the
// client never retries a failed submission.
type IntegrityEvent struct {
	InterviewID string
	EventType   string
	Timestamp   int64 // unix seconds
	EvidenceRef string
}

// EventTypeForWarning maps a raised face warning to its integrity event type.
// WarningNone has no event.
func EventTypeForWarning(warning FaceWarning) (string, bool) {
	switch warning {
	case WarningNoFace:
		return EventNoFace, true
	case WarningMultipleFaces:
		return EventMultipleFaces, true
	case WarningFaceNotVisible:
		return EventFaceNotVisible, true
	case WarningObstruction:
		return EventObstruction, true
	default:
		return "", false
	}
}

// EvidenceSlot is an upload destination issued by the backend for one
// evidence object: a direct multipart POST of the file plus Fields to URL.
type EvidenceSlot struct {
	URL    string
	Fields map[string]string
	Key    string
}

// Snapshot is a single still image captured from a live stream as evidence.
type Snapshot struct {
	Data   []byte
	Width  int
	Height int
}

// FullscreenChange is one observed fullscreen transition.
type FullscreenChange struct {
	Exited bool
}
