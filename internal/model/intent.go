package model

import "strings"

// Intent is the classified user goal for one chat message.
type Intent string

const (
	IntentBookMeeting       Intent = "book_meeting"
	IntentCancelMeeting     Intent = "cancel_meeting"
	IntentRescheduleMeeting Intent = "reschedule_meeting"
	IntentCheckAvailability Intent = "check_availability"
	IntentCheckSchedule     Intent = "check_schedule"
	IntentGreet             Intent = "greet"
	IntentUnknown           Intent = "unknown"
)

// ClassifiableIntents are the intents the language model may return.
// Greet is detected before classification and unknown is the fallback.
var ClassifiableIntents = []Intent{
	IntentBookMeeting,
	IntentCancelMeeting,
	IntentRescheduleMeeting,
	IntentCheckAvailability,
	IntentCheckSchedule,
}

// ParseIntent maps s to an Intent. Anything outside the known set is IntentUnknown.
func ParseIntent(s string) Intent {
	switch i := Intent(strings.ToLower(strings.TrimSpace(s))); i {
	case IntentBookMeeting, IntentCancelMeeting, IntentRescheduleMeeting,
		IntentCheckAvailability, IntentCheckSchedule, IntentGreet:
		return i
	default:
		return IntentUnknown
	}
}

func (i Intent) String() string {
	return string(i)
}
