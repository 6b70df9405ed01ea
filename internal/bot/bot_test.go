package bot

import (
	"context"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ytget/yt-telegram-bot/internal/model"
	"github.com/ytget/yt-telegram-bot/internal/session"
)

type recordingMessenger struct {
	mu    sync.Mutex
	sent  []string
	chats []int64
}

func (m *recordingMessenger) SendText(chatID int64, text string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, text)
	m.chats = append(m.chats, chatID)
	return len(m.sent), nil
}

type recordingRunner struct {
	mu   sync.Mutex
	reqs []session.Request
}

func (r *recordingRunner) Run(ctx context.Context, req session.Request) *model.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = append(r.reqs, req)
	return model.NewSession("test", req.URL, req.ChatID)
}

func (r *recordingRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reqs)
}

func privateMessage(text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 42,
		Chat:      &tgbotapi.Chat{ID: 7, Type: "private"},
		Text:      text,
	}}
}

func commandMessage(cmd string) tgbotapi.Update {
	u := privateMessage("/" + cmd)
	u.Message.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: len(cmd) + 1},
	}
	return u
}

func TestHandleUpdate_ValidURLStartsSession(t *testing.T) {
	messenger := &recordingMessenger{}
	runner := &recordingRunner{}
	b := New(messenger, runner, nil)

	b.HandleUpdate(context.Background(), privateMessage("https://youtu.be/dQw4w9WgXcQ"))
	b.Wait()

	if runner.count() != 1 {
		t.Fatalf("sessions started = %d, expected 1", runner.count())
	}
	if got := runner.reqs[0]; got.ChatID != 7 || got.MessageID != 42 {
		t.Errorf("request = %+v, expected chat 7 message 42", got)
	}
	if len(messenger.sent) != 0 {
		t.Errorf("bot replied %v itself, expected the session to own all replies", messenger.sent)
	}
}

func TestHandleUpdate_RejectsNonURL(t *testing.T) {
	messenger := &recordingMessenger{}
	runner := &recordingRunner{}
	b := New(messenger, runner, nil)

	b.HandleUpdate(context.Background(), privateMessage("hello there"))
	b.Wait()

	if runner.count() != 0 {
		t.Fatalf("sessions started = %d, expected none", runner.count())
	}
	if len(messenger.sent) != 1 || messenger.sent[0] != rejectText {
		t.Errorf("replies = %v, expected exactly one rejection", messenger.sent)
	}
}

func TestHandleUpdate_StartCommand(t *testing.T) {
	messenger := &recordingMessenger{}
	runner := &recordingRunner{}
	b := New(messenger, runner, nil)

	b.HandleUpdate(context.Background(), commandMessage("start"))
	b.HandleUpdate(context.Background(), commandMessage("help"))
	b.Wait()

	if len(messenger.sent) != 2 {
		t.Fatalf("replies = %d, expected usage text for both commands", len(messenger.sent))
	}
	for _, text := range messenger.sent {
		if text != startText {
			t.Errorf("reply = %q, expected the usage text", text)
		}
	}
	if runner.count() != 0 {
		t.Errorf("sessions started = %d, expected none for commands", runner.count())
	}
}

func TestHandleUpdate_UnknownCommandIgnored(t *testing.T) {
	messenger := &recordingMessenger{}
	b := New(messenger, &recordingRunner{}, nil)

	b.HandleUpdate(context.Background(), commandMessage("stats"))

	if len(messenger.sent) != 0 {
		t.Errorf("replies = %v, expected unknown commands to be ignored", messenger.sent)
	}
}

func TestHandleUpdate_IgnoresGroupChats(t *testing.T) {
	messenger := &recordingMessenger{}
	runner := &recordingRunner{}
	b := New(messenger, runner, nil)

	u := privateMessage("https://youtu.be/dQw4w9WgXcQ")
	u.Message.Chat.Type = "group"
	b.HandleUpdate(context.Background(), u)
	b.Wait()

	if runner.count() != 0 || len(messenger.sent) != 0 {
		t.Errorf("group message produced sessions=%d replies=%v, expected silence", runner.count(), messenger.sent)
	}
}

func TestHandleUpdate_IgnoresNonMessageUpdates(t *testing.T) {
	messenger := &recordingMessenger{}
	b := New(messenger, &recordingRunner{}, nil)

	b.HandleUpdate(context.Background(), tgbotapi.Update{})
	b.HandleUpdate(context.Background(), privateMessage("   "))

	if len(messenger.sent) != 0 {
		t.Errorf("replies = %v, expected none", messenger.sent)
	}
}

func TestServe_DrainsUntilChannelCloses(t *testing.T) {
	messenger := &recordingMessenger{}
	runner := &recordingRunner{}
	b := New(messenger, runner, nil)

	updates := make(chan tgbotapi.Update, 2)
	updates <- privateMessage("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	updates <- privateMessage("not a link")
	close(updates)

	b.Serve(context.Background(), updates)

	if runner.count() != 1 {
		t.Errorf("sessions started = %d, expected 1", runner.count())
	}
	if len(messenger.sent) != 1 || messenger.sent[0] != rejectText {
		t.Errorf("replies = %v, expected one rejection", messenger.sent)
	}
}
