// Package models defines the tracked projects and the ephemeral sessions that
// feed them
package models

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/werk-cli/werk/internal/duration"
	"github.com/werk-cli/werk/internal/timeutil"
)

// Project is a named work item accumulating tracked time across days.
type Project struct {
	StartDate time.Time
	// HoursPerDay maps a calendar-day key (mm/dd/yy) to the time tracked on
	// that day
	HoursPerDay map[string]duration.Seconds
	Name        string
	// Repairs lists the fields that could not be read when the project was
	// decoded and were reset to zero
	Repairs   []string
	TotalTime duration.Seconds
}

// DayTotal is the time tracked on a single calendar day.
type DayTotal struct {
	Day  string
	Time duration.Seconds
}

// record is the persisted shape of a project.
type record struct {
	HoursPerDay map[string]string `json:"hours_per_day"`
	// older files used a camel-case key
	HoursPerDayCamel map[string]string `json:"hoursPerDay,omitempty"`
	Name             string            `json:"name"`
	StartDate        string            `json:"start_date"`
	TotalTime        string            `json:"total_time"`
}

// NewProject creates an empty project first started at startDate.
func NewProject(name string, startDate time.Time) *Project {
	return &Project{
		Name:        name,
		StartDate:   startDate.Truncate(time.Second),
		HoursPerDay: make(map[string]duration.Seconds),
	}
}

// EnsureDay records an empty entry for day if none exists yet.
func (p *Project) EnsureDay(day string) {
	if p.HoursPerDay == nil {
		p.HoursPerDay = make(map[string]duration.Seconds)
	}

	if _, ok := p.HoursPerDay[day]; !ok {
		p.HoursPerDay[day] = 0
	}
}

// Fold adds secs earned on day to the day's entry and to the total.
func (p *Project) Fold(day string, secs duration.Seconds) {
	p.EnsureDay(day)
	p.HoursPerDay[day] += secs
	p.TotalTime += secs
}

// Days returns the per-day totals in calendar order. Keys that are not valid
// dates sort last, alphabetically.
func (p *Project) Days() []DayTotal {
	days := make([]DayTotal, 0, len(p.HoursPerDay))

	for day, secs := range p.HoursPerDay {
		days = append(days, DayTotal{Day: day, Time: secs})
	}

	slices.SortFunc(days, func(a, b DayTotal) int {
		ta, errA := timeutil.ParseDayKey(a.Day)
		tb, errB := timeutil.ParseDayKey(b.Day)

		switch {
		case errA == nil && errB == nil:
			if c := ta.Compare(tb); c != 0 {
				return c
			}
		case errA == nil:
			return -1
		case errB == nil:
			return 1
		}

		return strings.Compare(a.Day, b.Day)
	})

	return days
}

// Clone returns a deep copy of the project.
func (p *Project) Clone() Project {
	c := *p
	c.HoursPerDay = maps.Clone(p.HoursPerDay)
	c.Repairs = slices.Clone(p.Repairs)

	if c.HoursPerDay == nil {
		c.HoursPerDay = make(map[string]duration.Seconds)
	}

	return c
}

func (p Project) MarshalJSON() ([]byte, error) {
	r := record{
		Name:        p.Name,
		StartDate:   timeutil.Stamp(p.StartDate),
		TotalTime:   duration.Format(p.TotalTime),
		HoursPerDay: make(map[string]string, len(p.HoursPerDay)),
	}

	for day, secs := range p.HoursPerDay {
		r.HoursPerDay[day] = duration.Format(secs)
	}

	return json.Marshal(r)
}

// UnmarshalJSON decodes a persisted project. Unreadable durations and start
// dates are reset to zero and listed in Repairs instead of failing.
func (p *Project) UnmarshalJSON(b []byte) error {
	var r record

	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}

	hours := r.HoursPerDay
	if hours == nil {
		hours = r.HoursPerDayCamel
	}

	out := Project{
		Name:        r.Name,
		HoursPerDay: make(map[string]duration.Seconds, len(hours)),
	}

	start, err := timeutil.ParseStamp(r.StartDate)
	if err != nil {
		out.Repairs = append(out.Repairs, fmt.Sprintf("start_date %q", r.StartDate))
	} else {
		out.StartDate = start
	}

	var perr error

	out.TotalTime, perr = duration.Parse(r.TotalTime)
	if perr != nil {
		out.Repairs = append(out.Repairs, fmt.Sprintf("total_time %q", r.TotalTime))
	}

	for _, day := range slices.Sorted(maps.Keys(hours)) {
		v := hours[day]

		out.HoursPerDay[day], perr = duration.Parse(v)
		if perr != nil {
			out.Repairs = append(out.Repairs, fmt.Sprintf("hours_per_day[%s] %q", day, v))
		}
	}

	*p = out

	return nil
}

// Session is the ephemeral timer for one contiguous, possibly paused, period
// of work on the active project.
type Session struct {
	StartedAt time.Time
	// Days holds the seconds earned on each calendar day so that a session
	// running past midnight is attributed correctly
	Days    map[string]duration.Seconds
	ID      string
	Elapsed duration.Seconds
	Paused  bool
}

// NewSession returns a running session started at now.
func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: now,
		Days:      make(map[string]duration.Seconds),
	}
}

// Tick adds one second earned on day. Paused sessions are not advanced.
func (s *Session) Tick(day string) bool {
	if s.Paused {
		return false
	}

	s.Elapsed++
	s.Days[day]++

	return true
}

// FormatElapsed returns the elapsed time as "HH:MM:SS".
func (s *Session) FormatElapsed() string {
	return duration.Format(s.Elapsed)
}
