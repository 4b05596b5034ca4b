package timeslot

import (
	"context"
	"regexp"
	"strings"
	"time"

	"booking-assistant/internal/model"
	pkgLog "booking-assistant/pkg/log"
)

// DefaultMeetingDuration is applied when only the start could be resolved.
const DefaultMeetingDuration = time.Hour

var spacesRe = regexp.MustCompile(`\s+`)

// phraseTable rewrites colloquial phrases before they reach the date parser.
// Order matters: longer phrases are replaced before their substrings.
var phraseTable = []struct {
	from, to string
}{
	{"next tomorrow", "day after tomorrow"},
	{"day after tmrw", "day after tomorrow"},
	{"day after tmr", "day after tomorrow"},
	{"overmorrow", "day after tomorrow"},
	{"tmrw", "tomorrow"},
	{"tmr", "tomorrow"},
	{"tonight", "today 8pm"},
	{"this evening", "today 6pm"},
	{"this afternoon", "today 3pm"},
	{"this morning", "today 9am"},
	{"o'clock", ""},
}

// DateParser resolves a natural-language phrase against a reference time.
type DateParser interface {
	ParseDateTime(text string, base time.Time) (time.Time, error)
}

// Extractor turns the classifier's raw slots into a TimeWindow.
type Extractor struct {
	l        pkgLog.Logger
	parser   DateParser
	loc      *time.Location
	duration time.Duration
}

// New creates an Extractor. A non-positive duration falls back to DefaultMeetingDuration.
func New(l pkgLog.Logger, parser DateParser, loc *time.Location, duration time.Duration) *Extractor {
	if duration <= 0 {
		duration = DefaultMeetingDuration
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Extractor{l: l, parser: parser, loc: loc, duration: duration}
}

// Extract never fails: an unparseable or missing slot yields an absent bound.
// Start only gives End = Start + duration; an End not after Start is replaced the same way.
// End without Start yields an empty window.
func (e *Extractor) Extract(ctx context.Context, slots model.RawSlots, now time.Time) model.TimeWindow {
	start, okStart := e.parse(ctx, slots.Start, now)
	if !okStart {
		return model.TimeWindow{}
	}

	w := model.TimeWindow{Start: start}
	if end, okEnd := e.parse(ctx, slots.End, now); okEnd && end.After(start) {
		w.End = end
	} else {
		if okEnd {
			e.l.Debugf(ctx, "timeslot.Extract: end %s not after start %s, using default duration", end, start)
		}
		w.End = start.Add(e.duration)
	}
	return w
}

func (e *Extractor) parse(ctx context.Context, raw *string, now time.Time) (time.Time, bool) {
	if raw == nil {
		return time.Time{}, false
	}
	phrase := Normalize(*raw)
	if phrase == "" || phrase == "null" || phrase == "none" {
		return time.Time{}, false
	}

	t, err := e.parser.ParseDateTime(phrase, now.In(e.loc))
	if err != nil {
		e.l.Debugf(ctx, "timeslot.parse: %q unparsed: %v", phrase, err)
		return time.Time{}, false
	}
	return t.In(e.loc), true
}

// Normalize lowercases, trims, collapses whitespace and applies the phrase table.
// ISO-8601 strings are returned trimmed but otherwise untouched.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if looksISO(s) {
		return s
	}

	s = strings.ToLower(s)
	for _, p := range phraseTable {
		s = strings.ReplaceAll(s, p.from, p.to)
	}
	return spacesRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

func looksISO(s string) bool {
	if len(s) < len("2006-01-02") {
		return false
	}
	for i, r := range s[:10] {
		switch i {
		case 4, 7:
			if r != '-' {
				return false
			}
		default:
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}
