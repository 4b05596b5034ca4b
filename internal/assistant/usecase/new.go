package usecase

import (
	"context"
	"time"

	"booking-assistant/internal/assistant"
	"booking-assistant/internal/reply"
	"booking-assistant/pkg/log"
)

// Config carries the calendar and scheduling settings of the pipeline.
type Config struct {
	CalendarID         string
	Timezone           string         // IANA name written on created events
	Location           *time.Location // civil zone; nil means loaded from Timezone
	MeetingSummary     string
	ScheduleDays       int
	ScheduleMaxResults int64
	CancelTolerance    time.Duration
	Clock              func() time.Time // nil means time.Now; read in Location
}

type implUseCase struct {
	l          log.Logger
	classifier assistant.Classifier
	extractor  assistant.Extractor
	checker    assistant.AvailabilityChecker
	calendar   assistant.Calendar
	formatter  *reply.Formatter
	metrics    assistant.Metrics
	cfg        Config
}

// New creates the assistant UseCase. metrics may be nil.
func New(
	l log.Logger,
	classifier assistant.Classifier,
	extractor assistant.Extractor,
	checker assistant.AvailabilityChecker,
	calendar assistant.Calendar,
	formatter *reply.Formatter,
	metrics assistant.Metrics,
	cfg Config,
) assistant.UseCase {
	if cfg.MeetingSummary == "" {
		cfg.MeetingSummary = defaultMeetingSummary
	}
	if cfg.ScheduleDays <= 0 {
		cfg.ScheduleDays = defaultScheduleDays
	}
	if cfg.ScheduleMaxResults <= 0 {
		cfg.ScheduleMaxResults = defaultScheduleMaxResults
	}
	if cfg.CancelTolerance <= 0 {
		cfg.CancelTolerance = defaultCancelTolerance
	}
	if cfg.Location == nil {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			l.Warnf(context.Background(), "usecase.New: timezone %q: %v, using UTC", cfg.Timezone, err)
			loc = time.UTC
		}
		cfg.Location = loc
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	loc := cfg.Location
	cfg.Clock = func() time.Time { return clock().In(loc) }
	return &implUseCase{
		l:          l,
		classifier: classifier,
		extractor:  extractor,
		checker:    checker,
		calendar:   calendar,
		formatter:  formatter,
		metrics:    metrics,
		cfg:        cfg,
	}
}
