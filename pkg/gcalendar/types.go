package gcalendar

import (
	"errors"
	"time"
)

const (
	DefaultCalendarID = "primary"
	DefaultTokenPath  = "token.json"

	// OrderByStartTime requires single (expanded) events.
	OrderByStartTime = "startTime"

	dateLayout      = "2006-01-02"
	statusCancelled = "cancelled"
)

// ErrEventIDRequired is returned by DeleteEvent for an empty id.
var ErrEventIDRequired = errors.New("gcalendar: event id is required")

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Kolkata"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Location    string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID   string
	TimeMin      time.Time
	TimeMax      time.Time
	MaxResults   int64
	OrderBy      string // "" or OrderByStartTime
	SingleEvents bool   // expand recurring events
	// Location reads all-day dates; nil means the location of TimeMin.
	Location *time.Location
}
