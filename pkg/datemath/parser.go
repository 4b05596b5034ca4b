package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	clock12Re    = regexp.MustCompile(`\b(?:at\s+)?(\d{1,2})(?::([0-5]\d))?\s*(am|pm)\b`)
	clock24Re    = regexp.MustCompile(`\b(?:at\s+)?([01]?\d|2[0-3]):([0-5]\d)\b`)
	clockWordRe  = regexp.MustCompile(`\b(?:at\s+)?(noon|midnight)\b`)
	spacesRe     = regexp.MustCompile(`\s+`)
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
	fallback *when.Parser
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	return &Parser{location: loc, fallback: w}, nil
}

// Location returns the civil timezone the parser resolves phrases in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDateTime resolves a phrase that may carry both a day and a clock time,
// e.g. "tomorrow 3pm", "friday at 10:30 am", "2025-06-10T15:00:00+05:30".
// A day without a clock keeps the reference clock time; a clock without a day means today.
func (p *Parser) ParseDateTime(text string, baseTime time.Time) (time.Time, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return time.Time{}, ErrUnparseable
	}

	if t, ok := p.parseISO(raw); ok {
		return t, nil
	}

	phrase := normalize(raw)
	base := baseTime.In(p.location)

	if t, ok := p.parseRelative(phrase, base); ok {
		return t, nil
	}

	r, err := p.fallback.Parse(phrase, base)
	if err != nil || r == nil {
		return time.Time{}, ErrUnparseable
	}
	return r.Time.In(p.location), nil
}

func (p *Parser) parseISO(raw string) (time.Time, bool) {
	for _, l := range isoLayouts {
		if l.zoned {
			if t, err := time.Parse(l.layout, raw); err == nil {
				return t.In(p.location), true
			}
			continue
		}
		if t, err := time.ParseInLocation(l.layout, raw, p.location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseRelative handles "<day phrase> <clock>" in either order.
func (p *Parser) parseRelative(phrase string, base time.Time) (time.Time, bool) {
	c, rest, hasClock := extractClock(phrase)
	rest = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(rest, "on "), " at"))
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "at "))

	var day time.Time
	switch {
	case rest == "":
		if !hasClock {
			return time.Time{}, false
		}
		day = p.startOfDay(base)
	default:
		d, ok, err := p.resolveDay(rest, base)
		if err != nil || !ok {
			if t, isoOK := p.parseISO(rest); isoOK && hasClock {
				d, ok = p.startOfDay(t), true
			} else {
				return time.Time{}, false
			}
		}
		day = d
	}

	if !hasClock {
		c = clock{hour: base.Hour(), minute: base.Minute()}
		return time.Date(day.Year(), day.Month(), day.Day(), c.hour, c.minute, base.Second(), 0, p.location), true
	}
	return time.Date(day.Year(), day.Month(), day.Day(), c.hour, c.minute, 0, 0, p.location), true
}

// resolveDay maps a day phrase to the start of that day. ok is false when the
// phrase is not a day phrase at all; err is set when it looks like one but is malformed.
func (p *Parser) resolveDay(relative string, baseTime time.Time) (time.Time, bool, error) {
	switch relative {
	case "today":
		return p.startOfDay(baseTime), true, nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), true, nil
	case "day after tomorrow", "the day after tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), true, nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), true, nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		t, err := p.parseInDuration(relative, baseTime)
		return t, err == nil, err
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		t, err := p.parseNextWeekday(relative, baseTime)
		return t, err == nil, err
	}

	// "<weekday>" and "this <weekday>" mean the coming occurrence, today included.
	if wd, ok := weekdays[strings.TrimPrefix(relative, "this ")]; ok {
		in := baseTime.In(p.location)
		daysUntil := (int(wd) - int(in.Weekday()) + 7) % 7
		return p.startOfDay(in.AddDate(0, 0, daysUntil)), true, nil
	}

	return time.Time{}, false, nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// extractClock finds the first clock expression and returns it together with
// the phrase with that expression removed.
func extractClock(phrase string) (clock, string, bool) {
	if loc := clock12Re.FindStringSubmatchIndex(phrase); loc != nil {
		hour, _ := strconv.Atoi(phrase[loc[2]:loc[3]])
		minute := 0
		if loc[4] >= 0 {
			minute, _ = strconv.Atoi(phrase[loc[4]:loc[5]])
		}
		if hour >= 1 && hour <= 12 {
			meridiem := phrase[loc[6]:loc[7]]
			hour %= 12
			if meridiem == "pm" {
				hour += 12
			}
			return clock{hour: hour, minute: minute}, cut(phrase, loc[0], loc[1]), true
		}
	}

	if loc := clock24Re.FindStringSubmatchIndex(phrase); loc != nil {
		hour, _ := strconv.Atoi(phrase[loc[2]:loc[3]])
		minute, _ := strconv.Atoi(phrase[loc[4]:loc[5]])
		return clock{hour: hour, minute: minute}, cut(phrase, loc[0], loc[1]), true
	}

	if loc := clockWordRe.FindStringSubmatchIndex(phrase); loc != nil {
		c := clock{hour: 12}
		if phrase[loc[2]:loc[3]] == "midnight" {
			c.hour = 0
		}
		return c, cut(phrase, loc[0], loc[1]), true
	}

	return clock{}, phrase, false
}

func cut(s string, from, to int) string {
	return spacesRe.ReplaceAllString(strings.TrimSpace(s[:from]+" "+s[to:]), " ")
}

func normalize(s string) string {
	return spacesRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}
