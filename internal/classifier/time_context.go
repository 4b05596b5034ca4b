package classifier

import (
	"fmt"
	"time"
)

// buildTimeContext creates the reference-time block for the system prompt.
func buildTimeContext(now time.Time, loc *time.Location) string {
	now = now.In(loc)

	// Week boundaries, Monday to Sunday
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format("2006-01-02T15:04:05"),
		now.Weekday().String(),
		loc.String(),
		now.Format(dateFormatISO),
		now.AddDate(0, 0, 1).Format(dateFormatISO),
		weekStart.Format(dateFormatISO),
		weekEnd.Format(dateFormatISO),
	)
}
