package model

import "path/filepath"

// ArtifactCandidate is a media file found in a session workspace after the
// engine finished. The path is exclusively owned by the session.
type ArtifactCandidate struct {
	Path      string
	SizeBytes int64
	Extension string // lower-cased, with leading dot
	Priority  int    // selector ranking tier, lower is better
}

// Name returns the bare file name of the candidate
func (a *ArtifactCandidate) Name() string {
	return filepath.Base(a.Path)
}
