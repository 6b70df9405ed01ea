package bot

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ytget/yt-telegram-bot/internal/model"
	"github.com/ytget/yt-telegram-bot/internal/session"
)

const (
	startText = "Send me a YouTube link and I'll fetch the highest available quality and send the file back.\n" +
		"Note: Max file size is ~2GB (Telegram limit)."
	rejectText = "Please send a valid YouTube video URL."
)

// Messenger sends the update loop's own replies; sessions talk through
// their own narrower surfaces.
type Messenger interface {
	SendText(chatID int64, text string) (int, error)
}

// Runner starts one session per accepted URL
type Runner interface {
	Run(ctx context.Context, req session.Request) *model.Session
}

// Bot routes inbound Telegram updates: commands get usage text, private
// messages matching the URL pattern become sessions, everything else is
// rejected or ignored. Group and channel traffic is never serviced.
type Bot struct {
	messenger Messenger
	runner    Runner
	logger    *log.Logger
	wg        sync.WaitGroup
}

// New creates a bot around a messenger and a session runner
func New(messenger Messenger, runner Runner, logger *log.Logger) *Bot {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Bot{messenger: messenger, runner: runner, logger: logger}
}

// Serve consumes updates until ctx is cancelled or the channel closes,
// then waits for in-flight sessions to finish.
func (b *Bot) Serve(ctx context.Context, updates <-chan tgbotapi.Update) {
	defer b.Wait()
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate processes a single update. A matching URL spawns one
// session goroutine; nothing else allocates any session resources.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}
	if !msg.Chat.IsPrivate() {
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			b.send(msg.Chat.ID, startText)
		}
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}
	if !session.URLPattern.MatchString(text) {
		b.send(msg.Chat.ID, rejectText)
		return
	}

	req := session.Request{ChatID: msg.Chat.ID, MessageID: msg.MessageID, URL: text}
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.runner.Run(ctx, req)
	}()
}

// Wait blocks until all spawned sessions have reached a terminal state
func (b *Bot) Wait() {
	b.wg.Wait()
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.messenger.SendText(chatID, text); err != nil {
		b.logger.Printf("send to chat %d failed: %v", chatID, err)
	}
}
