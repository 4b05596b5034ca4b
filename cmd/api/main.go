package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"booking-assistant/config"
	_ "booking-assistant/docs" // Swagger docs
	"booking-assistant/internal/app"
	tgDelivery "booking-assistant/internal/assistant/delivery/telegram"
	"booking-assistant/internal/httpserver"
	"booking-assistant/internal/middleware"
	"booking-assistant/internal/observability"
	"booking-assistant/pkg/log"
	"booking-assistant/pkg/telegram"
)

// @title       Booking Assistant API
// @description Conversational meeting booking on top of Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Booking Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Assistant.Timezone)

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewMetrics("", registry)
	if err != nil {
		logger.Error(ctx, "Failed to register metrics: ", err)
		os.Exit(1)
	}

	// 4. Assistant pipeline
	assistantApp, err := app.Build(ctx, cfg, logger, metrics)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize assistant: %v", err)
		logger.Info(ctx, "→ Run `assistantctl gcal-auth` to generate token.json for OAuth credentials")
		os.Exit(1)
	}
	logger.Info(ctx, "✅ Assistant initialized")

	// 5. Telegram (optional)
	var (
		telegramHandler tgDelivery.Handler
		bot             *telegram.Bot
	)
	if cfg.Telegram.BotToken != "" {
		bot = telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, assistantApp.UseCase, bot, cfg.Telegram.SecretToken)
	} else {
		logger.Info(ctx, "Telegram skipped: telegram.bot_token is not set")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.New(logger, middleware.Config{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		}, metrics),
		MetricsHandler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Readiness:       assistantApp.Ready,
		AssistantUC:     assistantApp.UseCase,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	if bot != nil && cfg.Telegram.WebhookURL != "" {
		// A failed registration leaves the server up; Telegram keeps the previous webhook.
		g.Go(func() error {
			if err := bot.SetWebhook(gctx, cfg.Telegram.WebhookURL, cfg.Telegram.SecretToken); err != nil {
				logger.Warnf(gctx, "Failed to set Telegram webhook: %v", err)
				return nil
			}
			logger.Infof(gctx, "✅ Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
