package usecase

import "time"

const (
	defaultScheduleDays       = 3
	maxScheduleDays           = 14
	defaultScheduleMaxResults = 10
	defaultCancelTolerance    = 60 * time.Second
	defaultMeetingSummary     = "Meeting"

	calendarActionCreate = "create"
	calendarActionList   = "list"
	calendarActionDelete = "delete"

	resultOK       = "ok"
	resultError    = "error"
	resultNotFound = "not_found"
)

// greetings short-circuit the pipeline on an exact case-insensitive match.
var greetings = map[string]struct{}{
	"hi":    {},
	"hello": {},
	"heyy":  {},
	"hey":   {},
	"hai":   {},
}
