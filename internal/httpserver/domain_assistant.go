package httpserver

import (
	"context"

	assistantHTTP "booking-assistant/internal/assistant/delivery/http"
)

// setupAssistantDomain registers the chat, schedule export and optional
// Telegram webhook routes.
func (srv *HTTPServer) setupAssistantDomain(ctx context.Context) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(srv.gin, h, srv.middleware)

	srv.l.Infof(ctx, "Assistant domain registered")

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram not configured, skipping webhook route")
	}
	return nil
}
