package workouts

import (
	"time"
)

// WeekdayLabels are the pt-BR long weekday names, indexed by time.Weekday.
var WeekdayLabels = [7]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

func WeekdayLabel(d time.Weekday) string {
	return WeekdayLabels[d]
}

// Clock resolves "now" and "today" in the timezone workouts are tracked in.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{loc: loc, now: time.Now}
}

// NewFixedClock always reports now; for tests.
func NewFixedClock(loc *time.Location, now time.Time) *Clock {
	c := NewClock(loc)
	c.now = func() time.Time { return now }
	return c
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now()
}

// Today is the current local calendar date, as midnight UTC (the DATE column form).
func (c *Clock) Today() time.Time {
	return DateOf(c.now(), c.loc)
}

// DateOf returns the calendar date of t in loc, as midnight UTC.
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
