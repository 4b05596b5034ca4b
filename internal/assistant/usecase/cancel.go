package usecase

import (
	"context"
	"time"

	"booking-assistant/pkg/gcalendar"
)

// cancelAt deletes the first timed event starting within the cancel
// tolerance of start. It returns nil when no event matches.
func (uc *implUseCase) cancelAt(ctx context.Context, start time.Time) (*gcalendar.Event, error) {
	tol := uc.cfg.CancelTolerance

	// TimeMax is exclusive on event start, so widen it by a second to keep
	// an event starting exactly at start+tol.
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID:   uc.cfg.CalendarID,
		TimeMin:      start.Add(-tol),
		TimeMax:      start.Add(tol + time.Second),
		OrderBy:      gcalendar.OrderByStartTime,
		SingleEvents: true,
		Location:     uc.cfg.Location,
	})
	uc.recordCalendar(calendarActionList, err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.cancelAt.ListEvents: %v", err)
		return nil, err
	}

	for i := range events {
		e := events[i]
		if e.AllDay || !withinTolerance(e.StartTime, start, tol) {
			continue
		}
		err := uc.calendar.DeleteEvent(ctx, uc.cfg.CalendarID, e.ID)
		uc.recordCalendar(calendarActionDelete, err)
		if err != nil {
			uc.l.Errorf(ctx, "uc.cancelAt.DeleteEvent %s: %v", e.ID, err)
			return nil, err
		}
		uc.l.Infof(ctx, "uc.cancelAt: deleted event %s", e.ID)
		return &e, nil
	}

	if uc.metrics != nil {
		uc.metrics.CalendarAction(calendarActionDelete, resultNotFound)
	}
	return nil, nil
}

func withinTolerance(a, b time.Time, tol time.Duration) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}
