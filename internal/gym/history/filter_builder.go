package history

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/apperr"
	"github.com/2beens/gymtracker/internal/gym/workouts"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// MaxPage keeps the offset and page*limit within int32.
const MaxPage = math.MaxInt32 / MaxLimit

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp,
// and returns the calendar date as midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return workouts.DateOf(t, t.Location()), nil
}

// FilterBuilder composes a workouts.Filter from raw query values,
// collecting every invalid value before Build fails.
type FilterBuilder struct {
	filter workouts.Filter
	v      apperr.Validator
}

func NewFilterBuilder(userID string) *FilterBuilder {
	return &FilterBuilder{
		filter: workouts.Filter{UserID: userID, Order: workouts.DateDesc},
	}
}

// Status applies raw only when it names a known status.
func (b *FilterBuilder) Status(raw string) *FilterBuilder {
	if status, ok := workouts.ParseStatus(strings.TrimSpace(raw)); ok {
		b.filter.Statuses = []workouts.Status{status}
	}
	return b
}

func (b *FilterBuilder) Statuses(statuses ...workouts.Status) *FilterBuilder {
	b.filter.Statuses = statuses
	return b
}

func (b *FilterBuilder) date(field, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := ParseDate(raw)
	b.v.Check(err == nil, field, "invalid_date", "expected a date as YYYY-MM-DD")
	if err != nil {
		return nil
	}
	return &d
}

// DateRange applies each bound that is given.
func (b *FilterBuilder) DateRange(start, end string) *FilterBuilder {
	b.filter.From = b.date("startDate", start)
	b.filter.To = b.date("endDate", end)
	return b
}

// BoundedDateRange applies the range only when both bounds are given.
func (b *FilterBuilder) BoundedDateRange(start, end string) *FilterBuilder {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return b
	}
	return b.DateRange(start, end)
}

func (b *FilterBuilder) Since(from time.Time) *FilterBuilder {
	b.filter.From = &from
	b.filter.To = nil
	return b
}

func (b *FilterBuilder) MuscleGroup(raw string) *FilterBuilder {
	b.filter.MuscleGroup = strings.TrimSpace(raw)
	return b
}

func (b *FilterBuilder) Search(raw string) *FilterBuilder {
	b.filter.Search = strings.TrimSpace(raw)
	return b
}

// ExerciseID keeps workouts with the exercise and only its executions.
func (b *FilterBuilder) ExerciseID(id string) *FilterBuilder {
	b.filter.ExerciseID = strings.TrimSpace(id)
	return b
}

func (b *FilterBuilder) Order(order workouts.SortOrder) *FilterBuilder {
	b.filter.Order = order
	return b
}

func (b *FilterBuilder) positive(field, raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	b.v.Check(err == nil && n >= 1, field, "invalid_number", field+" must be a positive integer")
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Page parses page and limit and returns the values applied. Page is capped at
// MaxPage and limit at MaxLimit.
func (b *FilterBuilder) Page(pageRaw, limitRaw string) (page, limit int) {
	page = min(b.positive("page", pageRaw, DefaultPage), MaxPage)
	limit = min(b.positive("limit", limitRaw, DefaultLimit), MaxLimit)
	b.filter.Limit = limit
	b.filter.Offset = (page - 1) * limit
	return page, limit
}

func (b *FilterBuilder) Build() (workouts.Filter, error) {
	if err := b.v.Err(); err != nil {
		return workouts.Filter{}, err
	}
	return b.filter, nil
}
