package usecase

import (
	"context"
	"testing"
	"time"

	"booking-assistant/internal/assistant"
	"booking-assistant/internal/availability"
	"booking-assistant/internal/classifier"
	"booking-assistant/internal/model"
	"booking-assistant/internal/reply"
	"booking-assistant/internal/timeslot"
	"booking-assistant/pkg/datemath"
	"booking-assistant/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockClassifier struct {
	result classifier.Classification
	err    error
	calls  int
}

func (m *mockClassifier) Classify(ctx context.Context, text string) (classifier.Classification, error) {
	m.calls++
	return m.result, m.err
}

// mockCalendar serves events overlapping the requested range.
type mockCalendar struct {
	events    []gcalendar.Event
	listErr   error
	createErr error
	created   []gcalendar.CreateEventRequest
	deleted   []string
	lists     []gcalendar.ListEventsRequest
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.lists = append(m.lists, req)
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []gcalendar.Event
	for _, e := range m.events {
		if e.EndTime.After(req.TimeMin) && e.StartTime.Before(req.TimeMax) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "new", Summary: req.Summary, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	return nil
}

type mockMetrics struct {
	chats    []string
	calendar []string
}

func (m *mockMetrics) ChatRequest(intent string) { m.chats = append(m.chats, intent) }
func (m *mockMetrics) CalendarAction(action, result string) {
	m.calendar = append(m.calendar, action+":"+result)
}
func (m *mockMetrics) ObservePipeline(d time.Duration) {}

// fixedNow is Monday 2025-06-09 11:00 in Asia/Kolkata.
func fixedNow(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return time.Date(2025, 6, 9, 11, 0, 0, 0, loc)
}

// newTestUseCase wires the real extractor, checker and formatter around
// the given classifier and calendar mocks.
func newTestUseCase(t *testing.T, cls *mockClassifier, cal *mockCalendar, metrics *mockMetrics) assistant.UseCase {
	t.Helper()
	now := fixedNow(t)
	parser, err := datemath.NewParser("Asia/Kolkata")
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	l := &mockLogger{}
	var m assistant.Metrics
	if metrics != nil {
		m = metrics
	}
	return New(
		l,
		cls,
		timeslot.New(l, parser, now.Location(), time.Hour),
		availability.New(l, cal, "primary", now.Location()),
		cal,
		reply.New(now.Location()),
		m,
		Config{
			CalendarID: "primary",
			Timezone:   "Asia/Kolkata",
			Clock:      func() time.Time { return now },
		},
	)
}

func strPtr(s string) *string { return &s }

func classification(intent model.Intent, start, end *string) classifier.Classification {
	data := map[string]any{"intent": string(intent)}
	if start != nil {
		data["start_time"] = *start
	}
	if end != nil {
		data["end_time"] = *end
	}
	return classifier.Classification{
		Intent: intent,
		Slots:  model.RawSlots{Start: start, End: end},
		Data:   data,
	}
}
