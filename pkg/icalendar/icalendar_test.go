package icalendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"

	"booking-assistant/pkg/gcalendar"
)

func TestEncode(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	stamp := time.Date(2025, 6, 9, 5, 30, 0, 0, time.UTC)
	start := time.Date(2025, 6, 10, 15, 0, 0, 0, ist)
	day := time.Date(2025, 6, 11, 0, 0, 0, 0, ist)

	events := []gcalendar.Event{
		{ID: "abc", Summary: "Review", HtmlLink: "https://calendar.google.com/event?eid=abc", StartTime: start, EndTime: start.Add(time.Hour)},
		{ID: "hol", Summary: "Holiday", StartTime: day, EndTime: day.AddDate(0, 0, 1), AllDay: true},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, "", stamp, events); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + DefaultProdID,
		"UID:abc@booking-assistant",
		"DTSTART:20250610T093000Z",
		"DTEND:20250610T103000Z",
		"SUMMARY:Review",
		"DTSTART;VALUE=DATE:20250611",
		"DTEND;VALUE=DATE:20250612",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	cal, err := ical.NewDecoder(strings.NewReader(out)).Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := len(cal.Events()); got != 2 {
		t.Errorf("expected 2 events, got %d", got)
	}
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, "-//test//EN", time.Now(), nil); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), "PRODID:-//test//EN") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestUIDWithoutID(t *testing.T) {
	e := gcalendar.Event{StartTime: time.Unix(1700000000, 0)}
	if got := uid(e); got != "1700000000@booking-assistant" {
		t.Errorf("uid = %q", got)
	}
}
