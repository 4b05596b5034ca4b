package reply

import (
	"fmt"
	"strings"
	"time"

	"booking-assistant/internal/model"
	"booking-assistant/pkg/gcalendar"
)

// Formatter renders reply texts. Every timestamp is shown in its civil timezone.
type Formatter struct {
	loc *time.Location
}

// New creates a Formatter for loc.
func New(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{loc: loc}
}

func (f *Formatter) Greeting() string                 { return TextGreeting }
func (f *Formatter) SlotUnavailable() string          { return TextSlotUnavailable }
func (f *Formatter) BookNeedsTime() string            { return TextBookNeedsTime }
func (f *Formatter) AvailabilityNeedsTime() string    { return TextAvailabilityNeedTime }
func (f *Formatter) CancelNotFound() string           { return TextCancelNotFound }
func (f *Formatter) CancelNeedsTime() string          { return TextCancelNeedsTime }
func (f *Formatter) RescheduleNotImplemented() string { return TextRescheduleNotReady }
func (f *Formatter) UnknownRequest() string           { return TextUnknownRequest }

// Booked confirms a created meeting.
func (f *Formatter) Booked(w model.TimeWindow) string {
	w = w.In(f.loc)
	return fmt.Sprintf("📅 Meeting booked on %s from %s to %s.",
		w.Start.Format(dateLayout), w.Start.Format(timeLayout), w.End.Format(timeLayout))
}

// Availability answers a check_availability request.
func (f *Formatter) Availability(w model.TimeWindow, free bool) string {
	w = w.In(f.loc)
	prefix := "❌ You are not available"
	if free {
		prefix = "✅ You are free"
	}
	return fmt.Sprintf("%s on %s from %s to %s.",
		prefix, w.Start.Format(dateLayout), w.Start.Format(timeLayout), w.End.Format(timeLayout))
}

// Schedule lists upcoming events, one bullet per event.
func (f *Formatter) Schedule(events []gcalendar.Event) string {
	if len(events) == 0 {
		return TextNoUpcomingEvents
	}

	var sb strings.Builder
	sb.WriteString(TextScheduleHeader)
	sb.WriteString("\n")
	for _, e := range events {
		start := e.StartTime.In(f.loc)
		if e.AllDay {
			fmt.Fprintf(&sb, "- %s on %s (all day)\n", summary(e), start.Format(dateLayout))
			continue
		}
		fmt.Fprintf(&sb, "- %s on %s at %s\n", summary(e), start.Format(dateLayout), start.Format(timeLayout))
	}
	return sb.String()
}

// Cancelled confirms a deleted event.
func (f *Formatter) Cancelled(e gcalendar.Event) string {
	return fmt.Sprintf("🗑️ Event '%s' at %s cancelled.", summary(e), e.StartTime.In(f.loc).Format(timeLayout))
}

func summary(e gcalendar.Event) string {
	if s := strings.TrimSpace(e.Summary); s != "" {
		return s
	}
	return untitledEvent
}
