package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"booking-assistant/internal/assistant"
	"booking-assistant/internal/model"
	pkgLog "booking-assistant/pkg/log"
	pkgTelegram "booking-assistant/pkg/telegram"
)

type mockUseCase struct {
	out    assistant.ChatOutput
	err    error
	inputs []string
}

func (m *mockUseCase) Chat(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	m.inputs = append(m.inputs, input.Message)
	return m.out, m.err
}

func (m *mockUseCase) ExportSchedule(ctx context.Context, input assistant.ExportScheduleInput) (assistant.ExportScheduleOutput, error) {
	return assistant.ExportScheduleOutput{}, nil
}

type mockSender struct {
	mu    sync.Mutex
	chats []int64
	texts []string
}

func (m *mockSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chats = append(m.chats, chatID)
	m.texts = append(m.texts, text)
	return nil
}

func newSyncHandler(uc assistant.UseCase, bot Sender, secret string) *handler {
	h := New(pkgLog.NewNop(), uc, bot, secret).(*handler)
	h.async = false
	return h
}

func post(h *handler, body string, header map[string]string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	c.Request = req
	h.HandleWebhook(c)
	return w
}

const textUpdate = `{"update_id":1,"message":{"message_id":7,"chat":{"id":99,"type":"private"},"text":"Book a meeting tomorrow at 3pm"}}`

func TestHandleWebhook_Text(t *testing.T) {
	uc := &mockUseCase{out: assistant.ChatOutput{Reply: "📅 Meeting booked", Intent: model.IntentBookMeeting}}
	bot := &mockSender{}
	h := newSyncHandler(uc, bot, "")

	w := post(h, textUpdate, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "accepted") {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
	if len(uc.inputs) != 1 || uc.inputs[0] != "Book a meeting tomorrow at 3pm" {
		t.Errorf("unexpected inputs: %v", uc.inputs)
	}
	if len(bot.texts) != 1 || bot.texts[0] != "📅 Meeting booked" || bot.chats[0] != 99 {
		t.Errorf("unexpected reply: %v to %v", bot.texts, bot.chats)
	}
}

func TestHandleWebhook_Ignored(t *testing.T) {
	for name, body := range map[string]string{
		"no message": `{"update_id":1}`,
		"empty text": `{"update_id":1,"message":{"message_id":7,"chat":{"id":99,"type":"private"},"text":"  "}}`,
	} {
		t.Run(name, func(t *testing.T) {
			uc := &mockUseCase{}
			bot := &mockSender{}
			w := post(newSyncHandler(uc, bot, ""), body, nil)
			if !strings.Contains(w.Body.String(), "ignored") {
				t.Errorf("body = %s", w.Body.String())
			}
			if len(uc.inputs) != 0 || len(bot.texts) != 0 {
				t.Errorf("ignored update must not be processed")
			}
		})
	}
}

func TestHandleWebhook_Secret(t *testing.T) {
	uc := &mockUseCase{out: assistant.ChatOutput{Reply: "ok"}}
	h := newSyncHandler(uc, &mockSender{}, "s3cret")

	if w := post(h, textUpdate, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("missing secret: status %d", w.Code)
	}
	if w := post(h, textUpdate, map[string]string{pkgTelegram.HeaderSecretToken: "wrong"}); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong secret: status %d", w.Code)
	}
	if w := post(h, textUpdate, map[string]string{pkgTelegram.HeaderSecretToken: "s3cret"}); w.Code != http.StatusOK {
		t.Errorf("right secret: status %d", w.Code)
	}
	if len(uc.inputs) != 1 {
		t.Errorf("expected exactly one processed update, got %d", len(uc.inputs))
	}
}

func TestHandleWebhook_BadJSON(t *testing.T) {
	if w := post(newSyncHandler(&mockUseCase{}, &mockSender{}, ""), `{broken`, nil); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

type blockingUseCase struct {
	mockUseCase
	release chan struct{}
}

func (m *blockingUseCase) Chat(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	<-m.release
	return assistant.ChatOutput{Reply: "done"}, nil
}

func TestWait_TracksBackgroundUpdates(t *testing.T) {
	uc := &blockingUseCase{release: make(chan struct{})}
	bot := &mockSender{}
	h := New(pkgLog.NewNop(), uc, bot, "").(*handler)

	if w := post(h, textUpdate, nil); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := h.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Wait with update in flight = %v, want deadline exceeded", err)
	}

	close(uc.release)
	if err := h.Wait(context.Background()); err != nil {
		t.Fatalf("Wait = %v", err)
	}
	bot.mu.Lock()
	defer bot.mu.Unlock()
	if len(bot.texts) != 1 || bot.texts[0] != "done" {
		t.Errorf("reply not sent before Wait returned: %v", bot.texts)
	}
}

func TestWait_Idle(t *testing.T) {
	h := New(pkgLog.NewNop(), &mockUseCase{}, &mockSender{}, "")
	if err := h.Wait(context.Background()); err != nil {
		t.Errorf("Wait = %v", err)
	}
}

func TestProcessMessage(t *testing.T) {
	t.Run("start command greets with help", func(t *testing.T) {
		uc := &mockUseCase{out: assistant.ChatOutput{Reply: "👋 Hello"}}
		bot := &mockSender{}
		h := newSyncHandler(uc, bot, "")
		h.processMessage(context.Background(), &pkgTelegram.Message{Chat: &pkgTelegram.Chat{ID: 1}, Text: "/start"})

		if len(uc.inputs) != 1 || uc.inputs[0] != "hi" {
			t.Errorf("unexpected inputs: %v", uc.inputs)
		}
		if !strings.HasPrefix(bot.texts[0], "👋 Hello") || !strings.Contains(bot.texts[0], "What's my schedule?") {
			t.Errorf("reply = %q", bot.texts[0])
		}
	})

	t.Run("pipeline failure is reported", func(t *testing.T) {
		uc := &mockUseCase{err: errors.New("calendar down")}
		bot := &mockSender{}
		h := newSyncHandler(uc, bot, "")
		h.processMessage(context.Background(), &pkgTelegram.Message{Chat: &pkgTelegram.Chat{ID: 1}, Text: "book"})

		if len(bot.texts) != 1 || bot.texts[0] != textFailure {
			t.Errorf("reply = %v", bot.texts)
		}
	})
}
