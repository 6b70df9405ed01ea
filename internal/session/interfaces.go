package session

import (
	"context"

	"github.com/ytget/yt-telegram-bot/internal/fetch"
	"github.com/ytget/yt-telegram-bot/internal/model"
)

// Fetcher invokes the external extraction engine. Fetch implementations
// must close sink before returning, whatever the outcome.
type Fetcher interface {
	Probe(ctx context.Context, url string) error
	Fetch(ctx context.Context, url, dir string, sink chan fetch.Progress) (string, error)
}

// Deliverer uploads a selected artifact to the chat
type Deliverer interface {
	Deliver(chatID int64, c *model.ArtifactCandidate) error
}

// Notifier is the messaging surface a session needs: one status message it
// creates and then edits, plus a liveness indicator.
type Notifier interface {
	ReplyText(chatID int64, replyTo int, text string) (int, error)
	EditText(chatID int64, messageID int, text string) error
	SendTyping(chatID int64) error
}
