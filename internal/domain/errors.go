package domain

import "errors"

var (
	ErrNoCredential       = errors.New("no media session credential")
	ErrInvalidTransition  = errors.New("invalid session flow transition")
	ErrPermissionDenied   = errors.New("camera or microphone permission denied")
	ErrScreenShareDenied  = errors.New("screen share permission denied")
	ErrConferenceClosed   = errors.New("conference connection closed")
	ErrStreamNotLive      = errors.New("media stream is not live")
	ErrClassifierNotReady = errors.New("face classifier is not ready")
)
