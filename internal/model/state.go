package model

// SessionState represents the pipeline stage a session is in
type SessionState string

const (
	// StateValidating means the inbound URL is being checked
	StateValidating SessionState = "Validating"

	// StateProbing means the optional availability probe is running
	StateProbing SessionState = "Probing"

	// StateDownloading means the extraction engine is fetching media
	StateDownloading SessionState = "Downloading"

	// StateSelecting means the workspace is being scanned for the artifact
	StateSelecting SessionState = "Selecting"

	// StateSizeChecking means the artifact is compared to the upload ceiling
	StateSizeChecking SessionState = "SizeChecking"

	// StateUploading means the artifact is being delivered to the chat
	StateUploading SessionState = "Uploading"

	// StateDone means the session finished successfully
	StateDone SessionState = "Done"

	// StateFailed means the session ended with a classified failure
	StateFailed SessionState = "Failed"
)

// stateOrder maps each state to its position in the forward-only pipeline.
var stateOrder = map[SessionState]int{
	StateValidating:   0,
	StateProbing:      1,
	StateDownloading:  2,
	StateSelecting:    3,
	StateSizeChecking: 4,
	StateUploading:    5,
	StateDone:         6,
	StateFailed:       6,
}

// String returns the string representation of SessionState
func (s SessionState) String() string {
	return string(s)
}

// IsTerminal returns true if the session has reached a final state
func (s SessionState) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}

// CanAdvanceTo reports whether moving to next keeps the pipeline strictly
// forward. Failed is reachable from any non-terminal state; no state is
// ever revisited.
func (s SessionState) CanAdvanceTo(next SessionState) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StateFailed {
		return true
	}
	return stateOrder[next] > stateOrder[s]
}
