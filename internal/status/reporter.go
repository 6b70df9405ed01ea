package status

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ytget/yt-telegram-bot/internal/fetch"
)

// Editor edits an existing chat message
type Editor interface {
	EditText(chatID int64, messageID int, text string) error
}

// defaultEditInterval rate-limits status edits; the transport throttles
// message edits well below the engine's progress frequency.
const defaultEditInterval = 1500 * time.Millisecond

// Reporter owns the single mutable status message of one session. Every
// notification is best effort: transport errors are logged and dropped in
// one place, never propagated into the pipeline.
type Reporter struct {
	editor    Editor
	logger    *log.Logger
	chatID    int64
	messageID int
	interval  time.Duration
	lastText  string
}

// NewReporter creates a reporter bound to an already-sent status message
func NewReporter(editor Editor, chatID int64, messageID int, logger *log.Logger) *Reporter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Reporter{
		editor:    editor,
		logger:    logger,
		chatID:    chatID,
		messageID: messageID,
		interval:  defaultEditInterval,
	}
}

// Set replaces the status text. Repeating the current text is a no-op;
// any transport failure is swallowed.
func (r *Reporter) Set(text string) {
	if text == "" || text == r.lastText {
		return
	}
	r.lastText = text
	if err := r.editor.EditText(r.chatID, r.messageID, text); err != nil {
		r.logger.Printf("status edit dropped: %v", err)
	}
}

// Watch drains progress events until the channel closes, coalescing bursts
// into at most one edit per interval. The latest event always reaches the
// user eventually; intermediate ones may be skipped. Percentages are shown
// as received and may regress between phases.
func (r *Reporter) Watch(ctx context.Context, events <-chan fetch.Progress) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var latest fetch.Progress
	pending := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				if pending {
					r.Set(Format(latest))
				}
				return
			}
			latest, pending = ev, true
		case <-ticker.C:
			if pending {
				r.Set(Format(latest))
				pending = false
			}
		case <-ctx.Done():
			return
		}
	}
}

// Format renders one progress event as the user-visible phase line
func Format(p fetch.Progress) string {
	if p.Phase == fetch.PhaseMerging {
		return "Merging…"
	}
	if p.TotalBytes > 0 {
		return fmt.Sprintf("Downloading… %d%% of %s", int(p.Percent), humanize.Bytes(uint64(p.TotalBytes)))
	}
	if p.DownloadedBytes > 0 {
		return fmt.Sprintf("Downloading… %s", humanize.Bytes(uint64(p.DownloadedBytes)))
	}
	return "Downloading…"
}
