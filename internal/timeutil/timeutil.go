// Package timeutil provides utility functions and types for working with
// calendar-day keys and timestamps.
package timeutil

import (
	"errors"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const (
	// DayLayout is the layout of the calendar-day keys (mm/dd/yy).
	DayLayout = "01/02/06"
	// StampLayout is the layout of a project's start date.
	StampLayout = "01/02/06 15:04:05"
)

var errParsingDay = errors.New(
	"the day must be in mm/dd/yy format or a relative date like 'yesterday'",
)

// DayKey returns the calendar-day key for t in its own location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// Stamp formats t as a start date.
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}

// ParseStamp reads a start date in local time.
func ParseStamp(s string) (time.Time, error) {
	return time.ParseInLocation(StampLayout, strings.TrimSpace(s), time.Local)
}

// ParseDayKey reads a calendar-day key in local time.
func ParseDayKey(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, strings.TrimSpace(s), time.Local)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// ResolveDay converts user input into a calendar-day key. Exact mm/dd/yy keys
// are returned as is; anything else ("today", "2 days ago", "March 3") is
// parsed relative to now.
func ResolveDay(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errParsingDay
	}

	if t, err := ParseDayKey(input); err == nil {
		return DayKey(t), nil
	}

	cfg := &dps.Configuration{
		CurrentTime: now,
		DateOrder:   dps.MDY,
		Languages:   []string{"en"},
	}

	dt, err := dps.Parse(cfg, input)
	if err != nil || dt.Time.IsZero() {
		return "", errParsingDay
	}

	return DayKey(RoundToStart(dt.Time.In(now.Location()))), nil
}
