package reports

import (
	"fmt"
	"math"
	"sort"
	"time"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Brzycki estimates the one rep max. It reports false for rep counts
// the formula cannot handle.
func Brzycki(weight float64, reps int) (float64, bool) {
	if reps <= 0 || reps >= 37 {
		return 0, false
	}
	if reps == 1 {
		return weight, true
	}
	return weight * 36 / float64(37-reps), true
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// ClassifyTrend compares the mean of the second half of values with the first half.
func ClassifyTrend(values []float64) Trend {
	if len(values) < 2 {
		return TrendStable
	}

	half := len(values) / 2
	first, second := mean(values[:half]), mean(values[half:])
	if first == 0 {
		if second > 0 {
			return TrendUp
		}
		return TrendStable
	}

	change := (second - first) / first * 100
	switch {
	case change > 5:
		return TrendUp
	case change < -5:
		return TrendDown
	}
	return TrendStable
}

const day = 24 * time.Hour

// CurrentStreak counts workout dates walking back from today, a gap of more
// than one day ends the streak.
func CurrentStreak(dates []time.Time, today time.Time) int {
	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].After(sorted[j])
	})

	streak := 0
	cursor := today
	for _, d := range sorted {
		gap := math.Floor(float64(cursor.Sub(d)) / float64(day))
		if gap != 0 && gap != 1 {
			break
		}
		streak++
		cursor = d
	}
	return streak
}

type FrequencyPeriod string

const (
	FrequencyWeek  FrequencyPeriod = "week"
	FrequencyMonth FrequencyPeriod = "month"
	FrequencyYear  FrequencyPeriod = "year"
)

// FrequencyKey buckets a date. Weeks start on Sunday and are numbered by
// ceil(days since Jan 1 of the week start year / 7).
func FrequencyKey(period FrequencyPeriod, date time.Time) string {
	switch period {
	case FrequencyWeek:
		weekStart := date.AddDate(0, 0, -int(date.Weekday()))
		jan1 := time.Date(weekStart.Year(), time.January, 1, 0, 0, 0, 0, weekStart.Location())
		week := math.Ceil(float64(weekStart.Sub(jan1)) / float64(7*day))
		return fmt.Sprintf("%d-W%d", weekStart.Year(), int(week))
	case FrequencyYear:
		return fmt.Sprintf("%d", date.Year())
	}
	return fmt.Sprintf("%d-%02d", date.Year(), int(date.Month()))
}

// percentChange is 0 when there is no base to compare with.
func percentChange(initial, current float64) float64 {
	if initial == 0 {
		return 0
	}
	return (current - initial) / initial * 100
}
