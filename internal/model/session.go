package model

import "time"

// Session tracks one URL request from receipt to terminal outcome. A
// session is owned by exactly one goroutine; it shares nothing with other
// sessions.
type Session struct {
	ID              string
	URL             string
	ChatID          int64
	State           SessionState
	WorkspaceDir    string
	StatusMessageID int
	Artifact        *ArtifactCandidate
	Err             *Failure
	StartedAt       time.Time
	EndedAt         time.Time
}

// NewSession creates a session in the Validating state
func NewSession(id, url string, chatID int64) *Session {
	return &Session{
		ID:        id,
		URL:       url,
		ChatID:    chatID,
		State:     StateValidating,
		StartedAt: time.Now(),
	}
}

// Advance moves the session to next if the transition is forward; backward
// or post-terminal transitions are rejected. Entering a terminal state
// records EndedAt.
func (s *Session) Advance(next SessionState) bool {
	if !s.State.CanAdvanceTo(next) {
		return false
	}
	s.State = next
	if next.IsTerminal() {
		s.EndedAt = time.Now()
	}
	return true
}

// Fail marks the session terminally failed with the classified cause. A
// second call on a terminal session is a no-op.
func (s *Session) Fail(f *Failure) {
	if s.State.IsTerminal() {
		return
	}
	s.Err = f
	s.Advance(StateFailed)
}

// SetArtifact records the selected artifact; once set it never changes
func (s *Session) SetArtifact(a *ArtifactCandidate) {
	if s.Artifact == nil {
		s.Artifact = a
	}
}
