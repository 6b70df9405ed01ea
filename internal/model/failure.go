package model

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a session ended in Failed
type FailureKind string

const (
	// FailureInvalidURL means the input did not match the accepted pattern
	FailureInvalidURL FailureKind = "InvalidUrl"

	// FailureRestrictedContent means the content is DRM-protected, private,
	// age-gated or otherwise inaccessible
	FailureRestrictedContent FailureKind = "RestrictedContent"

	// FailureLiveStream means the URL points at a live or upcoming stream
	FailureLiveStream FailureKind = "LiveStreamUnsupported"

	// FailureNoFormats means the engine found nothing downloadable
	FailureNoFormats FailureKind = "NoFormatsAvailable"

	// FailureTimeout means the extraction exceeded its time budget
	FailureTimeout FailureKind = "Timeout"

	// FailureEngine means the engine failed for an unclassified reason
	FailureEngine FailureKind = "EngineFailure"

	// FailureNoOutput means the download finished but left no usable file
	FailureNoOutput FailureKind = "NoOutputProduced"

	// FailureTooLarge means the artifact exceeds the upload ceiling
	FailureTooLarge FailureKind = "TooLarge"

	// FailureUpload means both delivery modes were rejected
	FailureUpload FailureKind = "UploadFailed"
)

// Failure is a classified terminal error for one session. Kind drives the
// user-facing wording; Detail carries a bounded diagnostic tail.
type Failure struct {
	Kind   FailureKind
	Detail string
}

func (f *Failure) Error() string {
	if f.Detail == "" {
		return string(f.Kind)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

// NewFailure builds a Failure with a formatted detail message
func NewFailure(kind FailureKind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// FailureFrom returns err as a *Failure, classifying anything else under
// the given fallback kind
func FailureFrom(err error, fallback FailureKind) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{Kind: fallback, Detail: err.Error()}
}
