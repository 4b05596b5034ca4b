// Package app assembles the assistant pipeline from configuration.
package app

import (
	"context"
	"fmt"
	"time"

	"booking-assistant/config"
	"booking-assistant/internal/assistant"
	"booking-assistant/internal/assistant/usecase"
	"booking-assistant/internal/availability"
	"booking-assistant/internal/classifier"
	"booking-assistant/internal/observability"
	"booking-assistant/internal/reply"
	"booking-assistant/internal/timeslot"
	"booking-assistant/pkg/datemath"
	"booking-assistant/pkg/gcalendar"
	"booking-assistant/pkg/llmprovider"
	"booking-assistant/pkg/log"
)

// App is the wired pipeline shared by the server and the CLI.
type App struct {
	UseCase  assistant.UseCase
	Calendar *gcalendar.Client
	Parser   *datemath.Parser
	Location *time.Location

	calendarID string
}

// Build wires every collaborator. metrics may be nil.
func Build(ctx context.Context, cfg *config.Config, l log.Logger, metrics *observability.Metrics) (*App, error) {
	parser, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		return nil, fmt.Errorf("datemath: %w", err)
	}
	loc := parser.Location()

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}
	managerCfg, err := llmprovider.ManagerConfig(cfg.LLM, cfg.Assistant.ClassifierTemperature)
	if err != nil {
		return nil, fmt.Errorf("llm manager config: %w", err)
	}
	manager := llmprovider.NewManager(providers, managerCfg, l)
	if metrics != nil {
		manager.WithObserver(metrics)
	}

	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("google calendar: %w", err)
	}

	var (
		clsOpts    []classifier.Option
		ucMetrics  assistant.Metrics
		calendarID = cfg.GoogleCalendar.CalendarID
	)
	if metrics != nil {
		clsOpts = append(clsOpts, classifier.WithMetrics(metrics))
		ucMetrics = metrics
	}

	uc := usecase.New(
		l,
		classifier.New(manager, loc, l, clsOpts...),
		timeslot.New(l, parser, loc, cfg.Assistant.MeetingDuration),
		availability.New(l, calendarClient, calendarID, loc),
		calendarClient,
		reply.New(loc),
		ucMetrics,
		usecase.Config{
			CalendarID:         calendarID,
			Timezone:           cfg.Assistant.Timezone,
			Location:           loc,
			MeetingSummary:     cfg.Assistant.MeetingSummary,
			ScheduleDays:       cfg.Assistant.ScheduleDays,
			ScheduleMaxResults: cfg.Assistant.ScheduleMaxResults,
			CancelTolerance:    cfg.Assistant.CancelTolerance,
		},
	)

	return &App{
		UseCase:    uc,
		Calendar:   calendarClient,
		Parser:     parser,
		Location:   loc,
		calendarID: calendarID,
	}, nil
}

// Ready checks the calendar with a minimal list call.
func (a *App) Ready(ctx context.Context) error {
	now := time.Now()
	_, err := a.Calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: a.calendarID,
		TimeMin:    now,
		TimeMax:    now.Add(time.Minute),
		MaxResults: 1,
	})
	return err
}
