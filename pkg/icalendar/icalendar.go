// Package icalendar renders calendar events as an RFC 5545 feed.
package icalendar

import (
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/emersion/go-ical"

	"booking-assistant/pkg/gcalendar"
)

const (
	DefaultProdID = "-//booking-assistant//schedule export//EN"
	version       = "2.0"
	uidSuffix     = "@booking-assistant"
)

// Encode writes events as a VCALENDAR to w. stamp is used as DTSTAMP.
// All-day events are written with DATE values.
func Encode(w io.Writer, prodID string, stamp time.Time, events []gcalendar.Event) error {
	if prodID == "" {
		prodID = DefaultProdID
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, version)
	cal.Props.SetText(ical.PropProductID, prodID)

	for _, e := range events {
		cal.Children = append(cal.Children, newEvent(e, stamp).Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("icalendar: encode: %w", err)
	}
	return nil
}

func newEvent(e gcalendar.Event, stamp time.Time) *ical.Event {
	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, uid(e))
	ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())

	if e.AllDay {
		ev.Props.SetDate(ical.PropDateTimeStart, e.StartTime)
		ev.Props.SetDate(ical.PropDateTimeEnd, e.EndTime)
	} else {
		ev.Props.SetDateTime(ical.PropDateTimeStart, e.StartTime.UTC())
		ev.Props.SetDateTime(ical.PropDateTimeEnd, e.EndTime.UTC())
	}

	if e.Summary != "" {
		ev.Props.SetText(ical.PropSummary, e.Summary)
	}
	if e.Description != "" {
		ev.Props.SetText(ical.PropDescription, e.Description)
	}
	if e.Location != "" {
		ev.Props.SetText(ical.PropLocation, e.Location)
	}
	if e.HtmlLink != "" {
		if u, err := url.Parse(e.HtmlLink); err == nil {
			ev.Props.SetURI(ical.PropURL, u)
		}
	}
	return ev
}

// uid derives a stable UID from the calendar event id.
func uid(e gcalendar.Event) string {
	if e.ID != "" {
		return e.ID + uidSuffix
	}
	return fmt.Sprintf("%d%s", e.StartTime.Unix(), uidSuffix)
}
