package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestSession_AdvanceForwardOnly(t *testing.T) {
	s := NewSession("1-1", "https://youtu.be/dQw4w9WgXcQ", 1)

	if s.State != StateValidating {
		t.Fatalf("new session state = %s, expected Validating", s.State)
	}

	if !s.Advance(StateDownloading) {
		t.Fatal("expected Validating -> Downloading to succeed")
	}

	if s.Advance(StateValidating) {
		t.Error("expected backward transition to be rejected")
	}
	if s.State != StateDownloading {
		t.Errorf("state = %s after rejected transition, expected Downloading", s.State)
	}
}

func TestSession_TerminalRecordsEndedAt(t *testing.T) {
	s := NewSession("1-2", "https://youtu.be/dQw4w9WgXcQ", 1)

	if !s.EndedAt.IsZero() {
		t.Fatal("EndedAt set before terminal transition")
	}

	s.Advance(StateDownloading)
	s.Advance(StateDone)

	if s.EndedAt.IsZero() {
		t.Error("EndedAt not recorded on terminal transition")
	}
}

func TestSession_FailOnce(t *testing.T) {
	s := NewSession("1-3", "https://youtu.be/dQw4w9WgXcQ", 1)

	s.Fail(&Failure{Kind: FailureTimeout})
	s.Fail(&Failure{Kind: FailureUpload})

	if s.State != StateFailed {
		t.Fatalf("state = %s, expected Failed", s.State)
	}
	if s.Err == nil || s.Err.Kind != FailureTimeout {
		t.Errorf("Err = %v, expected first failure (Timeout) to win", s.Err)
	}
}

func TestSession_SetArtifactOnce(t *testing.T) {
	s := NewSession("1-4", "https://youtu.be/dQw4w9WgXcQ", 1)

	first := &ArtifactCandidate{Path: "/tmp/a.mp4"}
	s.SetArtifact(first)
	s.SetArtifact(&ArtifactCandidate{Path: "/tmp/b.mp4"})

	if s.Artifact != first {
		t.Errorf("Artifact = %v, expected the first candidate to be immutable", s.Artifact)
	}
}

func TestFailureFrom(t *testing.T) {
	classified := &Failure{Kind: FailureTooLarge, Detail: "too big"}
	wrapped := fmt.Errorf("size check: %w", classified)

	if got := FailureFrom(wrapped, FailureEngine); got.Kind != FailureTooLarge {
		t.Errorf("FailureFrom(wrapped) kind = %s, expected TooLarge", got.Kind)
	}

	plain := errors.New("boom")
	got := FailureFrom(plain, FailureEngine)
	if got.Kind != FailureEngine || got.Detail != "boom" {
		t.Errorf("FailureFrom(plain) = %v, expected EngineFailure with detail", got)
	}
}
