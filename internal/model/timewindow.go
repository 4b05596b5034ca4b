package model

import "time"

// RawSlots are the classifier's best-effort, unparsed start/end strings.
// A nil field means the model reported the value as missing.
type RawSlots struct {
	Start *string
	End   *string
}

// TimeWindow is a resolved (start, end) pair. A zero time means absent.
// When both are present Start is strictly before End.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// HasStart reports whether the start timestamp was resolved.
func (w TimeWindow) HasStart() bool {
	return !w.Start.IsZero()
}

// Resolved reports whether both timestamps are present and ordered.
func (w TimeWindow) Resolved() bool {
	return !w.Start.IsZero() && !w.End.IsZero() && w.Start.Before(w.End)
}

// In returns the window with both bounds converted to loc. Absent bounds stay absent.
func (w TimeWindow) In(loc *time.Location) TimeWindow {
	out := TimeWindow{}
	if !w.Start.IsZero() {
		out.Start = w.Start.In(loc)
	}
	if !w.End.IsZero() {
		out.End = w.End.In(loc)
	}
	return out
}

// ConversationContext is the opaque client-owned mapping echoed between turns.
type ConversationContext map[string]any
