package history

import (
	"slices"
	"sort"

	"github.com/2beens/gymtracker/internal/gym/workouts"
	"github.com/2beens/gymtracker/pkg"
)

const topMuscleGroups = 10

type WorkoutStats struct {
	TotalExercises     int     `json:"totalExercises"`
	CompletedExercises int     `json:"completedExercises"`
	TotalSeries        int     `json:"totalSeries"`
	TotalVolume        float64 `json:"totalVolume"`
	Duration           float64 `json:"duration"`
	CompletionRate     float64 `json:"completionRate"`
}

func StatsOf(w workouts.WorkoutExecution) WorkoutStats {
	stats := WorkoutStats{
		TotalExercises:     len(w.Exercises),
		CompletedExercises: w.CompletedExercises(),
		TotalSeries:        w.TotalSeries(),
		TotalVolume:        pkg.Round(w.TotalVolume(), 0),
		Duration:           pkg.Round(w.DurationMinutes(), 0),
	}
	if stats.TotalExercises > 0 {
		stats.CompletionRate = float64(stats.CompletedExercises) / float64(stats.TotalExercises) * 100
	}
	return stats
}

type DetailStats struct {
	TotalExercises     int     `json:"totalExercises"`
	CompletedExercises int     `json:"completedExercises"`
	TotalSeries        int     `json:"totalSeries"`
	TotalVolume        float64 `json:"totalVolume"`
	AverageWeight      float64 `json:"averageWeight"`
	AverageReps        float64 `json:"averageReps"`
	Duration           float64 `json:"duration"`
}

func DetailStatsOf(w workouts.WorkoutExecution) DetailStats {
	stats := DetailStats{
		TotalExercises:     len(w.Exercises),
		CompletedExercises: w.CompletedExercises(),
		TotalSeries:        w.TotalSeries(),
		TotalVolume:        pkg.Round(w.TotalVolume(), 0),
		Duration:           pkg.Round(w.DurationMinutes(), 0),
	}

	all := w.AllSeries()
	if len(all) > 0 {
		var weights, reps float64
		for _, s := range all {
			weights += s.Weight
			reps += float64(s.Reps)
		}
		stats.AverageWeight = pkg.Round(weights/float64(len(all)), 2)
		stats.AverageReps = pkg.Round(reps/float64(len(all)), 2)
	}
	return stats
}

type OverviewTotals struct {
	Workouts           int     `json:"workouts"`
	CompletedWorkouts  int     `json:"completedWorkouts"`
	CancelledWorkouts  int     `json:"cancelledWorkouts"`
	InProgressWorkouts int     `json:"inProgressWorkouts"`
	Exercises          int     `json:"exercises"`
	Series             int     `json:"series"`
	Volume             float64 `json:"volume"`
	Duration           float64 `json:"duration"`
}

type OverviewAverages struct {
	WorkoutsPerWeek     float64 `json:"workoutsPerWeek"`
	ExercisesPerWorkout float64 `json:"exercisesPerWorkout"`
	SeriesPerWorkout    float64 `json:"seriesPerWorkout"`
	VolumePerWorkout    float64 `json:"volumePerWorkout"`
	DurationPerWorkout  float64 `json:"durationPerWorkout"`
}

type Overview struct {
	Period         string           `json:"period"`
	Totals         OverviewTotals   `json:"totals"`
	Averages       OverviewAverages `json:"averages"`
	CompletionRate float64          `json:"completionRate"`
}

// BuildOverview counts every status, the volume and duration figures
// come from completed workouts only.
func BuildOverview(period Period, ws []workouts.WorkoutExecution) Overview {
	var (
		totals   OverviewTotals
		volume   float64
		duration float64
	)
	totals.Workouts = len(ws)
	for _, w := range ws {
		switch w.Status {
		case workouts.StatusCompleted:
			totals.CompletedWorkouts++
			totals.Exercises += len(w.Exercises)
			totals.Series += w.TotalSeries()
			volume += w.TotalVolume()
			duration += w.DurationMinutes()
		case workouts.StatusCancelled:
			totals.CancelledWorkouts++
		case workouts.StatusInProgress:
			totals.InProgressWorkouts++
		}
	}
	totals.Volume = pkg.Round(volume, 0)
	totals.Duration = pkg.Round(duration, 0)

	overview := Overview{
		Period: string(period),
		Totals: totals,
	}

	completed := float64(totals.CompletedWorkouts)
	if period == PeriodWeek {
		overview.Averages.WorkoutsPerWeek = completed
	} else {
		overview.Averages.WorkoutsPerWeek = completed / 4
	}
	if completed > 0 {
		overview.Averages.ExercisesPerWorkout = float64(totals.Exercises) / completed
		overview.Averages.SeriesPerWorkout = float64(totals.Series) / completed
		overview.Averages.VolumePerWorkout = volume / completed
		overview.Averages.DurationPerWorkout = duration / completed
	}
	if totals.Workouts > 0 {
		overview.CompletionRate = completed / float64(totals.Workouts) * 100
	}
	return overview
}

type WeekdayCount struct {
	DayOfWeek  string  `json:"dayOfWeek"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// WeeklyPattern counts workouts per stored weekday label, always all seven days.
func WeeklyPattern(ws []workouts.WorkoutExecution) []WeekdayCount {
	counts := map[string]int{}
	for _, w := range ws {
		counts[w.DayOfWeek]++
	}

	pattern := make([]WeekdayCount, 0, len(workouts.WeekdayLabels))
	for _, day := range workouts.WeekdayLabels {
		wc := WeekdayCount{DayOfWeek: day, Count: counts[day]}
		if len(ws) > 0 {
			wc.Percentage = float64(wc.Count) / float64(len(ws)) * 100
		}
		pattern = append(pattern, wc)
	}
	return pattern
}

type MuscleGroupCount struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// MuscleGroupCounts returns the ten most trained tags, ties keep first-seen order.
func MuscleGroupCounts(ws []workouts.WorkoutExecution) []MuscleGroupCount {
	var order []string
	counts := map[string]int{}
	for _, w := range ws {
		for _, group := range w.MuscleGroups {
			if _, seen := counts[group]; !seen {
				order = append(order, group)
			}
			counts[group]++
		}
	}

	stats := make([]MuscleGroupCount, 0, len(order))
	for _, group := range order {
		mc := MuscleGroupCount{Name: group, Count: counts[group]}
		if len(ws) > 0 {
			mc.Percentage = float64(mc.Count) / float64(len(ws)) * 100
		}
		stats = append(stats, mc)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return slices.Clip(stats[:min(len(stats), topMuscleGroups)])
}
