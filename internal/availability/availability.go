package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booking-assistant/internal/model"
	"booking-assistant/pkg/gcalendar"
	pkgLog "booking-assistant/pkg/log"
)

// ErrWindowUnresolved is returned when IsFree is asked about an incomplete window.
var ErrWindowUnresolved = errors.New("availability: time window is not resolved")

// EventLister is the read side of the calendar collaborator.
type EventLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Checker answers whether a window is free on one calendar.
type Checker struct {
	l          pkgLog.Logger
	calendar   EventLister
	calendarID string
	loc        *time.Location
}

// New creates a Checker. Window bounds are converted to loc before querying.
func New(l pkgLog.Logger, calendar EventLister, calendarID string, loc *time.Location) *Checker {
	if loc == nil {
		loc = time.UTC
	}
	return &Checker{l: l, calendar: calendar, calendarID: calendarID, loc: loc}
}

// IsFree reports whether no event intersects [Start, End).
func (c *Checker) IsFree(ctx context.Context, w model.TimeWindow) (bool, error) {
	if !w.Resolved() {
		return false, ErrWindowUnresolved
	}

	w = w.In(c.loc)
	events, err := c.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID:   c.calendarID,
		TimeMin:      w.Start,
		TimeMax:      w.End,
		SingleEvents: true,
		Location:     c.loc,
	})
	if err != nil {
		return false, fmt.Errorf("availability.IsFree: %w", err)
	}

	c.l.Debugf(ctx, "availability.IsFree: %d event(s) in %s..%s", len(events), w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
	return len(events) == 0, nil
}
