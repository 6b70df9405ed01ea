package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// longPollTimeout is the read timeout for getUpdates long polling
const longPollTimeout = 60

// Client is the concrete Bot API adapter behind the pipeline's interfaces
type Client struct {
	api *tgbotapi.BotAPI
}

// New authenticates against the Bot API with the given token
func New(token string) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Client{api: api}, nil
}

// Self returns the authorized bot username
func (c *Client) Self() string {
	return c.api.Self.UserName
}

// updateGetter is the slice of the Bot API the backlog drain needs
type updateGetter interface {
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
}

// Updates opens the long-poll update channel, first discarding any backlog
// accumulated while the bot was down. Replaying stale URLs after a restart
// would start downloads nobody is waiting for.
func (c *Client) Updates() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(resumeOffset(c.api))
	u.Timeout = longPollTimeout
	return c.api.GetUpdatesChan(u)
}

// resumeOffset returns the offset just past the newest pending update.
// Offset -1 fetches at most the single latest update and acknowledges
// everything before it. Zero means no backlog; a failed lookup also
// resumes at zero, trading a possible replay for not losing fresh traffic.
func resumeOffset(api updateGetter) int {
	backlog, err := api.GetUpdates(tgbotapi.UpdateConfig{Offset: -1})
	if err != nil || len(backlog) == 0 {
		return 0
	}
	return backlog[len(backlog)-1].UpdateID + 1
}

// Stop closes the update channel; in-flight sessions are unaffected
func (c *Client) Stop() {
	c.api.StopReceivingUpdates()
}

// SendText sends a plain message and returns its message id
func (c *Client) SendText(chatID int64, text string) (int, error) {
	sent, err := c.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

// ReplyText sends text as a reply to another message and returns the new
// message id
func (c *Client) ReplyText(chatID int64, replyTo int, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyTo
	sent, err := c.api.Send(msg)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

// EditText replaces the text of an existing message
func (c *Client) EditText(chatID int64, messageID int, text string) error {
	_, err := c.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text))
	return err
}

// SendTyping shows the typing indicator; purely a liveness signal
func (c *Client) SendTyping(chatID int64) error {
	_, err := c.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))
	return err
}

// SendVideo uploads path as an inline-playable, streamable video
func (c *Client) SendVideo(chatID int64, path, caption string) error {
	video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(path))
	video.SupportsStreaming = true
	video.Caption = caption
	_, err := c.api.Send(video)
	return err
}

// SendDocument uploads path as a generic document
func (c *Client) SendDocument(chatID int64, path, caption string) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = caption
	_, err := c.api.Send(doc)
	return err
}
