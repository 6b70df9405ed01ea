package fetch

import (
	"context"
	"errors"
	"strings"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-telegram-bot/internal/model"
)

// Diagnostic tails stay bounded so user-facing messages never balloon.
const (
	tailMaxLines = 4
	tailMaxBytes = 500
)

// The engine reports causes only as text, so classification scans for
// known markers in its output.
var (
	liveMarkers = []string{
		"live event will begin",
		"is a live stream",
		"premieres in",
		"live stream recording is not available",
	}
	restrictedMarkers = []string{
		"sign in to confirm",
		"private video",
		"age-restricted",
		"confirm your age",
		"drm",
		"members-only",
		"join this channel",
	}
	noFormatMarkers = []string{
		"requested format is not available",
		"no video formats found",
	}
)

// classifyRun maps a failed engine invocation to the session taxonomy,
// using the invoking context to distinguish timeouts from engine errors.
func classifyRun(ctx context.Context, err error, result *ytdlp.Result) *model.Failure {
	stderr := ""
	if result != nil {
		stderr = result.Stderr
	}
	return Classify(ctx.Err(), err, stderr)
}

// Classify turns raw engine output into a classified Failure. ctxErr is
// the state of the invoking context when the engine returned.
func Classify(ctxErr, err error, stderr string) *model.Failure {
	if errors.Is(ctxErr, context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return &model.Failure{Kind: model.FailureTimeout, Detail: "download timed out"}
	}

	haystack := strings.ToLower(stderr + "\n" + errText(err))
	switch {
	case containsAny(haystack, liveMarkers):
		return &model.Failure{Kind: model.FailureLiveStream, Detail: tail(stderr)}
	case containsAny(haystack, restrictedMarkers):
		return &model.Failure{Kind: model.FailureRestrictedContent, Detail: tail(stderr)}
	case containsAny(haystack, noFormatMarkers):
		return &model.Failure{Kind: model.FailureNoFormats, Detail: tail(stderr)}
	}

	detail := tail(stderr)
	if detail == "" {
		detail = errText(err)
	}
	return &model.Failure{Kind: model.FailureEngine, Detail: detail}
}

func containsAny(haystack string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(haystack, marker) {
			return true
		}
	}
	return false
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// tail keeps the last few non-empty lines of engine output, capped in
// bytes as well as lines.
func tail(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	var kept []string
	for i := len(lines) - 1; i >= 0 && len(kept) < tailMaxLines; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		kept = append([]string{line}, kept...)
	}
	out := strings.Join(kept, "\n")
	if len(out) > tailMaxBytes {
		out = out[len(out)-tailMaxBytes:]
	}
	return out
}
