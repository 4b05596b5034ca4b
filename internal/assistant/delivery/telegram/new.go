package telegram

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"booking-assistant/internal/assistant"
	pkgLog "booking-assistant/pkg/log"
)

// Sender delivers replies to a Telegram chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Wait blocks until background updates finish or ctx is done.
	Wait(ctx context.Context) error
}

type handler struct {
	l       pkgLog.Logger
	uc      assistant.UseCase
	bot     Sender
	secret  string
	timeout time.Duration
	async   bool
	wg      sync.WaitGroup
}

// New creates the Telegram webhook handler. secret, when set, must match
// the header Telegram sends with each update.
func New(l pkgLog.Logger, uc assistant.UseCase, bot Sender, secret string) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		bot:     bot,
		secret:  secret,
		timeout: processTimeout,
		async:   true,
	}
}
