package domain

import "errors"

// Credential is the media session credential handed to the conferencing
// transport when the interview goes live. Obtained once at authentication
// and immutable for the life of the session.
type Credential struct {
	Token     string
	ServerURL string
}

func (c Credential) Validate() error {
	if c.Token == "" {
		return errors.New("token is required")
	}
	if c.ServerURL == "" {
		return errors.New("server url is required")
	}
	return nil
}

// IsZero reports whether no credential has been set.
func (c Credential) IsZero() bool {
	return c.Token == "" && c.ServerURL == ""
}

// SessionBootstrap is the backend's answer to a session bootstrap request.
type SessionBootstrap struct {
	Success    bool
	Credential Credential
	Room       string
	Identity   string
	Interview  InterviewMetadata
}

// InterviewMetadata carries the round configuration the client needs to run
// the session. RoundDuration is the human-entered duration string, e.g.
// "30 mins" or "1 hour".
type InterviewMetadata struct {
	InterviewID   string
	CandidateName string
	RoundName     string
	RoundDuration string
	RequireScreen bool
}
