package reply

const (
	dateLayout = "Monday, January 02, 2006"
	timeLayout = "03:04 PM"

	untitledEvent = "(no title)"
)

// Fixed reply texts
const (
	TextGreeting             = "👋 Hello! I'm your AI meeting assistant. You can ask me to *book*, *check*, *cancel* or *reschedule* meetings!"
	TextSlotUnavailable      = "❌ That slot is not available. Please choose another time."
	TextBookNeedsTime        = "❌ Please specify a valid time to book the meeting."
	TextAvailabilityNeedTime = "❌ Couldn't understand the time. Please try again."
	TextScheduleHeader       = "📅 Here are your upcoming meetings:"
	TextNoUpcomingEvents     = "📭 No upcoming events found."
	TextCancelNotFound       = "❌ No meeting found at that time to cancel."
	TextCancelNeedsTime      = "❌ Please specify the time of the meeting to cancel."
	TextRescheduleNotReady   = "🔁 Rescheduling not implemented yet."
	TextUnknownRequest       = "❌ Couldn't understand your request."
)
