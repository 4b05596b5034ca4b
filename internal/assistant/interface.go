package assistant

import (
	"context"
	"time"

	"booking-assistant/internal/classifier"
	"booking-assistant/internal/model"
	"booking-assistant/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat runs one message through classify, extract, check, dispatch and format.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ExportSchedule lists the upcoming events for calendar export.
	ExportSchedule(ctx context.Context, input ExportScheduleInput) (ExportScheduleOutput, error)
}

// Classifier maps free text to an intent and raw time slots.
type Classifier interface {
	Classify(ctx context.Context, text string) (classifier.Classification, error)
}

// Extractor resolves raw slots into a time window. It never fails.
type Extractor interface {
	Extract(ctx context.Context, slots model.RawSlots, now time.Time) model.TimeWindow
}

// AvailabilityChecker reports whether a resolved window is free.
type AvailabilityChecker interface {
	IsFree(ctx context.Context, w model.TimeWindow) (bool, error)
}

// Calendar is the calendar collaborator.
type Calendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Metrics records pipeline outcomes. Optional.
type Metrics interface {
	ChatRequest(intent string)
	CalendarAction(action, result string)
	ObservePipeline(d time.Duration)
}
