package usecase

import "booking-assistant/internal/model"

type action int

const (
	actionNone action = iota
	actionCreateEvent
	actionListSchedule
	actionCancelEvent
)

type replyKind int

const (
	replyUnknown replyKind = iota
	replyGreeting
	replyBooked
	replySlotUnavailable
	replyBookNeedsTime
	replyAvailability
	replyAvailabilityNeedsTime
	replySchedule
	replyCancelResult
	replyCancelNeedsTime
	replyRescheduleNotImplemented
)

type decision struct {
	action action
	reply  replyKind
}

// decide maps (intent, window resolved, slot free) to the side effect and
// reply to produce. free is only meaningful for book and availability.
func decide(intent model.Intent, resolved, free bool) decision {
	switch intent {
	case model.IntentBookMeeting:
		switch {
		case !resolved:
			return decision{action: actionNone, reply: replyBookNeedsTime}
		case free:
			return decision{action: actionCreateEvent, reply: replyBooked}
		default:
			return decision{action: actionNone, reply: replySlotUnavailable}
		}
	case model.IntentCheckAvailability:
		if !resolved {
			return decision{action: actionNone, reply: replyAvailabilityNeedsTime}
		}
		return decision{action: actionNone, reply: replyAvailability}
	case model.IntentCheckSchedule:
		return decision{action: actionListSchedule, reply: replySchedule}
	case model.IntentCancelMeeting:
		if !resolved {
			return decision{action: actionNone, reply: replyCancelNeedsTime}
		}
		return decision{action: actionCancelEvent, reply: replyCancelResult}
	case model.IntentRescheduleMeeting:
		return decision{action: actionNone, reply: replyRescheduleNotImplemented}
	case model.IntentGreet:
		return decision{action: actionNone, reply: replyGreeting}
	default:
		return decision{action: actionNone, reply: replyUnknown}
	}
}

// needsAvailability reports whether the intent consults the free/busy check.
func needsAvailability(intent model.Intent) bool {
	return intent == model.IntentBookMeeting || intent == model.IntentCheckAvailability
}
