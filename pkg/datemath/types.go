package datemath

import (
	"errors"
	"time"
)

// ErrUnparseable is returned when no rule recognises the phrase.
var ErrUnparseable = errors.New("datemath: unparseable date/time phrase")

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// isoLayouts are tried in order. Layouts without an offset are read in the parser's zone.
var isoLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339Nano, true},
	{time.RFC3339, true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02 15:04", false},
	{"2006-01-02", false},
}

// clock is a wall-clock time of day.
type clock struct {
	hour, minute int
}
