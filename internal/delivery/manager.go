package delivery

import (
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/ytget/yt-telegram-bot/internal/model"
)

// Uploader sends a finished media file to a chat in one of the transport's
// two payload modes.
type Uploader interface {
	SendVideo(chatID int64, path, caption string) error
	SendDocument(chatID int64, path, caption string) error
}

// Containers Telegram plays inline; anything else goes straight to the
// document mode.
var streamableExtensions = []string{".mp4", ".mov", ".m4v"}

// Manager uploads artifacts, preferring the inline-playable video mode and
// falling back to a plain document when the transport rejects it. It never
// deletes the artifact; workspace cleanup belongs to the session.
type Manager struct {
	uploader Uploader
	logger   *log.Logger
}

// NewManager creates a new delivery manager
func NewManager(uploader Uploader, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Manager{uploader: uploader, logger: logger}
}

// Deliver uploads the artifact to chatID, trying at most two modes in
// order. Both failing is terminal for the session.
func (m *Manager) Deliver(chatID int64, c *model.ArtifactCandidate) error {
	caption := Caption(c)

	if slices.Contains(streamableExtensions, c.Extension) {
		err := m.uploader.SendVideo(chatID, c.Path, caption)
		if err == nil {
			return nil
		}
		m.logger.Printf("video upload of %s failed, falling back to document: %v", c.Name(), err)
	}

	if err := m.uploader.SendDocument(chatID, c.Path, caption); err != nil {
		return model.NewFailure(model.FailureUpload, "%v", err)
	}
	return nil
}

// Caption is "<file name> (<human size>)"
func Caption(c *model.ArtifactCandidate) string {
	return fmt.Sprintf("%s (%s)", c.Name(), humanize.Bytes(uint64(c.SizeBytes)))
}
