package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"booking-assistant/internal/assistant"
	"booking-assistant/internal/model"
	"booking-assistant/pkg/gcalendar"
)

// outcome holds the side-effect results the reply is rendered from.
type outcome struct {
	events    []gcalendar.Event
	cancelled *gcalendar.Event
}

func (uc *implUseCase) Chat(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	started := time.Now()
	defer func() {
		if uc.metrics != nil {
			uc.metrics.ObservePipeline(time.Since(started))
		}
	}()

	message := strings.TrimSpace(input.Message)
	if message == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}
	if len(input.Context) > 0 {
		uc.l.Debugf(ctx, "uc.Chat: client context keys=%d", len(input.Context))
	}

	if _, ok := greetings[strings.ToLower(message)]; ok {
		uc.recordChat(model.IntentGreet)
		return assistant.ChatOutput{
			Reply:  uc.formatter.Greeting(),
			Intent: model.IntentGreet,
			Data:   map[string]any{},
		}, nil
	}

	cls, err := uc.classifier.Classify(ctx, message)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat.Classify: %v", err)
		return assistant.ChatOutput{}, fmt.Errorf("%w: %w", assistant.ErrAssistantUnavailable, err)
	}

	now := uc.cfg.Clock()
	window := uc.extractor.Extract(ctx, cls.Slots, now)
	resolved := window.Resolved()

	free := false
	if needsAvailability(cls.Intent) && resolved {
		free, err = uc.checker.IsFree(ctx, window)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Chat.IsFree: %v", err)
			return assistant.ChatOutput{}, fmt.Errorf("%w: %w", assistant.ErrCalendarUnavailable, err)
		}
	}

	d := decide(cls.Intent, resolved, free)
	out, err := uc.execute(ctx, d.action, window, now)
	if err != nil {
		return assistant.ChatOutput{}, fmt.Errorf("%w: %w", assistant.ErrCalendarUnavailable, err)
	}

	uc.l.Infof(ctx, "uc.Chat: intent=%s resolved=%t free=%t", cls.Intent, resolved, free)
	uc.recordChat(cls.Intent)

	data := cls.Data
	if data == nil {
		data = map[string]any{}
	}
	return assistant.ChatOutput{
		Reply:  uc.render(d.reply, window, free, out),
		Intent: cls.Intent,
		Data:   data,
	}, nil
}

func (uc *implUseCase) execute(ctx context.Context, a action, window model.TimeWindow, now time.Time) (outcome, error) {
	switch a {
	case actionCreateEvent:
		_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID: uc.cfg.CalendarID,
			Summary:    uc.cfg.MeetingSummary,
			StartTime:  window.Start,
			EndTime:    window.End,
			Timezone:   uc.cfg.Timezone,
		})
		uc.recordCalendar(calendarActionCreate, err)
		if err != nil {
			uc.l.Errorf(ctx, "uc.execute.CreateEvent: %v", err)
			return outcome{}, err
		}
		return outcome{}, nil

	case actionListSchedule:
		events, _, err := uc.listUpcoming(ctx, now, uc.cfg.ScheduleDays)
		if err != nil {
			return outcome{}, err
		}
		return outcome{events: events}, nil

	case actionCancelEvent:
		cancelled, err := uc.cancelAt(ctx, window.Start)
		if err != nil {
			return outcome{}, err
		}
		return outcome{cancelled: cancelled}, nil
	}
	return outcome{}, nil
}

func (uc *implUseCase) render(kind replyKind, window model.TimeWindow, free bool, out outcome) string {
	f := uc.formatter
	switch kind {
	case replyGreeting:
		return f.Greeting()
	case replyBooked:
		return f.Booked(window)
	case replySlotUnavailable:
		return f.SlotUnavailable()
	case replyBookNeedsTime:
		return f.BookNeedsTime()
	case replyAvailability:
		return f.Availability(window, free)
	case replyAvailabilityNeedsTime:
		return f.AvailabilityNeedsTime()
	case replySchedule:
		return f.Schedule(out.events)
	case replyCancelResult:
		if out.cancelled == nil {
			return f.CancelNotFound()
		}
		return f.Cancelled(*out.cancelled)
	case replyCancelNeedsTime:
		return f.CancelNeedsTime()
	case replyRescheduleNotImplemented:
		return f.RescheduleNotImplemented()
	default:
		return f.UnknownRequest()
	}
}

func (uc *implUseCase) recordChat(intent model.Intent) {
	if uc.metrics != nil {
		uc.metrics.ChatRequest(intent.String())
	}
}

func (uc *implUseCase) recordCalendar(action string, err error) {
	if uc.metrics == nil {
		return
	}
	result := resultOK
	if err != nil {
		result = resultError
	}
	uc.metrics.CalendarAction(action, result)
}
