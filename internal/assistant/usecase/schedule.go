package usecase

import (
	"context"
	"fmt"
	"time"

	"booking-assistant/internal/assistant"
	"booking-assistant/pkg/gcalendar"
)

func (uc *implUseCase) ExportSchedule(ctx context.Context, input assistant.ExportScheduleInput) (assistant.ExportScheduleOutput, error) {
	days := input.Days
	if days == 0 {
		days = uc.cfg.ScheduleDays
	}
	if days < 1 || days > maxScheduleDays {
		return assistant.ExportScheduleOutput{}, assistant.ErrInvalidDays
	}

	now := uc.cfg.Clock()
	events, to, err := uc.listUpcoming(ctx, now, days)
	if err != nil {
		return assistant.ExportScheduleOutput{}, fmt.Errorf("%w: %w", assistant.ErrCalendarUnavailable, err)
	}
	return assistant.ExportScheduleOutput{From: now, To: to, Events: events}, nil
}

// listUpcoming lists events in [now, now+days), ordered by start.
func (uc *implUseCase) listUpcoming(ctx context.Context, now time.Time, days int) ([]gcalendar.Event, time.Time, error) {
	to := now.AddDate(0, 0, days)
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID:   uc.cfg.CalendarID,
		TimeMin:      now,
		TimeMax:      to,
		MaxResults:   uc.cfg.ScheduleMaxResults,
		OrderBy:      gcalendar.OrderByStartTime,
		SingleEvents: true,
		Location:     uc.cfg.Location,
	})
	uc.recordCalendar(calendarActionList, err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.listUpcoming.ListEvents: %v", err)
		return nil, time.Time{}, err
	}
	return events, to, nil
}
