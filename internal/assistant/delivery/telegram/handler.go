package telegram

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"booking-assistant/internal/assistant"
	pkgLog "booking-assistant/pkg/log"
	pkgResponse "booking-assistant/pkg/response"
	pkgTelegram "booking-assistant/pkg/telegram"
)

const (
	processTimeout = 90 * time.Second

	commandStart = "/start"
	commandHelp  = "/help"

	textHelp = "Tell me what you need in plain words, for example:\n" +
		"• Book a meeting tomorrow at 3pm\n" +
		"• Am I free on Friday at 10am?\n" +
		"• What's my schedule?\n" +
		"• Cancel my meeting tomorrow at 3pm"
	textFailure = "⚠️ Something went wrong while handling your request. Please try again."
)

var errBadSecret = errors.New("invalid webhook secret")

// HandleWebhook acknowledges the update at once and runs the chat pipeline
// in the background, since calendar and model calls can outlast Telegram's
// webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" {
		got := c.GetHeader(pkgTelegram.HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.l.Warnf(ctx, "telegram handler: rejected update with bad secret")
			c.JSON(http.StatusUnauthorized, pkgResponse.Resp{ErrorCode: http.StatusUnauthorized, Message: errBadSecret.Error()})
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil || strings.TrimSpace(msg.Text) == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Detach from the request context, keeping only the request id.
	bgCtx := pkgLog.WithRequestID(context.Background(), pkgLog.RequestIDFromContext(ctx))
	run := func() {
		pctx, cancel := context.WithTimeout(bgCtx, h.timeout)
		defer cancel()
		h.processMessage(pctx, msg)
	}
	if h.async {
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			run()
		}()
	} else {
		run()
	}

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// Wait blocks until every accepted update has been answered, or returns
// ctx.Err() if ctx ends first.
func (h *handler) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// processMessage answers one text message. Errors are reported to the chat.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	var reply string
	switch text {
	case commandStart, commandHelp:
		out, err := h.uc.Chat(ctx, assistant.ChatInput{Message: "hi"})
		if err != nil {
			reply = textHelp
		} else {
			reply = out.Reply + "\n\n" + textHelp
		}
	default:
		out, err := h.uc.Chat(ctx, assistant.ChatInput{Message: text})
		if err != nil {
			h.l.Errorf(ctx, "telegram handler: uc.Chat: %v", err)
			reply = textFailure
		} else {
			reply = out.Reply
		}
	}

	if err := h.bot.SendMessage(ctx, chatID, reply); err != nil {
		h.l.Errorf(ctx, "telegram handler: send reply to chat %d: %v", chatID, err)
	}
}
