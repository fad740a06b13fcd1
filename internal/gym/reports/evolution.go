package reports

import (
	"sort"
	"time"

	"github.com/2beens/gymtracker/internal/gym/workouts"
	"github.com/2beens/gymtracker/pkg"
)

type SeriesMode string

const (
	SeriesMax     SeriesMode = "max"
	SeriesAverage SeriesMode = "average"
	SeriesAll     SeriesMode = "all"
)

type SeriesPoint struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	Volume float64 `json:"volume"`
}

type NumberedSeries struct {
	SeriesNumber int     `json:"seriesNumber"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	Volume       float64 `json:"volume"`
	Difficulty   *int    `json:"difficulty"`
	RestTime     *int    `json:"restTime"`
	Notes        *string `json:"notes"`
}

type SeriesSummary struct {
	TotalSeries   int     `json:"totalSeries"`
	TotalVolume   float64 `json:"totalVolume"`
	AverageWeight float64 `json:"averageWeight"`
	AverageReps   float64 `json:"averageReps"`
}

// EvolutionSession carries the fields of one series mode, the others are omitted.
type EvolutionSession struct {
	Date      time.Time `json:"date"`
	DayOfWeek string    `json:"dayOfWeek"`
	WorkoutID string    `json:"workoutId"`

	MaxWeight  *SeriesPoint `json:"maxWeight,omitempty"`
	MaxReps    *SeriesPoint `json:"maxReps,omitempty"`
	BestVolume *SeriesPoint `json:"bestVolume,omitempty"`

	AverageWeight *float64 `json:"averageWeight,omitempty"`
	AverageReps   *float64 `json:"averageReps,omitempty"`
	AverageVolume *float64 `json:"averageVolume,omitempty"`
	TotalSeries   *int     `json:"totalSeries,omitempty"`

	AllSeries []NumberedSeries `json:"allSeries,omitempty"`
	Summary   *SeriesSummary   `json:"summary,omitempty"`
}

type Progress struct {
	Initial    float64 `json:"initial"`
	Current    float64 `json:"current"`
	Difference float64 `json:"difference"`
	Percentage float64 `json:"percentage"`
}

type EvolutionAnalysis struct {
	Trend            string    `json:"trend,omitempty"`
	Message          string    `json:"message,omitempty"`
	WeightProgress   *Progress `json:"weightProgress,omitempty"`
	RepsProgress     *Progress `json:"repsProgress,omitempty"`
	VolumeProgress   *Progress `json:"volumeProgress,omitempty"`
	OverallTrend     string    `json:"overallTrend,omitempty"`
	SessionsAnalyzed int       `json:"sessionsAnalyzed,omitempty"`
}

type EvolutionPeriod struct {
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	TotalSessions int    `json:"totalSessions"`
}

type Evolution struct {
	ExerciseName string             `json:"exerciseName"`
	ExerciseID   string             `json:"exerciseId,omitempty"`
	SeriesType   SeriesMode         `json:"seriesType,omitempty"`
	Period       *EvolutionPeriod   `json:"period,omitempty"`
	Data         []EvolutionSession `json:"data"`
	Analysis     *EvolutionAnalysis `json:"analysis"`
}

func seriesStats(series []workouts.SeriesExecution) (avgWeight, avgReps, volume float64) {
	var weights, reps float64
	for _, s := range series {
		weights += s.Weight
		reps += float64(s.Reps)
		volume += s.Volume()
	}
	n := float64(len(series))
	return weights / n, reps / n, volume
}

// maxSession picks the first series reaching each maximum.
func maxSession(series []workouts.SeriesExecution) (maxWeight, maxReps, bestVolume SeriesPoint) {
	point := func(s workouts.SeriesExecution) SeriesPoint {
		return SeriesPoint{Weight: s.Weight, Reps: s.Reps, Volume: s.Volume()}
	}

	maxWeight, maxReps, bestVolume = point(series[0]), point(series[0]), point(series[0])
	for _, s := range series[1:] {
		if s.Weight > maxWeight.Weight {
			maxWeight = point(s)
		}
		if s.Reps > maxReps.Reps {
			maxReps = point(s)
		}
		if s.Volume() > bestVolume.Volume {
			bestVolume = point(s)
		}
	}
	return maxWeight, maxReps, bestVolume
}

func evolutionSession(ref executionRef, mode SeriesMode) EvolutionSession {
	series := ref.execution.Series
	session := EvolutionSession{
		Date:      ref.workout.Date,
		DayOfWeek: ref.workout.DayOfWeek,
		WorkoutID: ref.workout.ID,
	}

	switch mode {
	case SeriesAverage:
		avgWeight, avgReps, _ := seriesStats(series)
		avgVolume := avgWeight * avgReps
		total := len(series)
		session.AverageWeight = &avgWeight
		session.AverageReps = &avgReps
		session.AverageVolume = &avgVolume
		session.TotalSeries = &total
	case SeriesAll:
		avgWeight, avgReps, volume := seriesStats(series)
		session.AllSeries = make([]NumberedSeries, 0, len(series))
		for i, s := range series {
			session.AllSeries = append(session.AllSeries, NumberedSeries{
				SeriesNumber: i + 1,
				Weight:       s.Weight,
				Reps:         s.Reps,
				Volume:       s.Volume(),
				Difficulty:   s.Difficulty,
				RestTime:     s.RestTime,
				Notes:        s.Notes,
			})
		}
		session.Summary = &SeriesSummary{
			TotalSeries:   len(series),
			TotalVolume:   volume,
			AverageWeight: avgWeight,
			AverageReps:   avgReps,
		}
	default:
		maxWeight, maxReps, bestVolume := maxSession(series)
		session.MaxWeight = &maxWeight
		session.MaxReps = &maxReps
		session.BestVolume = &bestVolume
	}
	return session
}

func progressOf(initial, current float64) *Progress {
	return &Progress{
		Initial:    initial,
		Current:    current,
		Difference: current - initial,
		Percentage: percentChange(initial, current),
	}
}

func overallTrend(diffs ...float64) string {
	improvements := 0
	for _, d := range diffs {
		if d > 0 {
			improvements++
		}
	}
	switch {
	case improvements >= 2:
		return "improving"
	case improvements == 1:
		return "mixed"
	}
	return "declining"
}

func analyzeEvolution(data []EvolutionSession, mode SeriesMode) *EvolutionAnalysis {
	if len(data) < 2 {
		return &EvolutionAnalysis{
			Trend:   "insufficient_data",
			Message: "at least 2 sessions are needed for the analysis",
		}
	}
	if mode != SeriesMax {
		return &EvolutionAnalysis{Message: "analysis is only available for seriesType max"}
	}

	first, last := data[0], data[len(data)-1]
	analysis := &EvolutionAnalysis{
		WeightProgress:   progressOf(first.MaxWeight.Weight, last.MaxWeight.Weight),
		RepsProgress:     progressOf(float64(first.MaxReps.Reps), float64(last.MaxReps.Reps)),
		VolumeProgress:   progressOf(first.BestVolume.Volume, last.BestVolume.Volume),
		SessionsAnalyzed: len(data),
	}
	analysis.OverallTrend = overallTrend(
		analysis.WeightProgress.Difference,
		analysis.RepsProgress.Difference,
		analysis.VolumeProgress.Difference,
	)
	return analysis
}

// BuildEvolution expects the workouts restricted to one exercise, chronological.
// Executions without series are no session.
func BuildEvolution(exerciseID string, r Range, mode SeriesMode, ws []workouts.WorkoutExecution) Evolution {
	var data []EvolutionSession
	name := ""
	for _, ref := range executionsOf(ws) {
		if len(ref.execution.Series) == 0 {
			continue
		}
		if name == "" {
			name = ref.execution.ExerciseName
		}
		data = append(data, evolutionSession(ref, mode))
	}

	if len(data) == 0 {
		return Evolution{
			ExerciseName: unknownExercise,
			Data:         []EvolutionSession{},
		}
	}

	period := &EvolutionPeriod{
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		TotalSessions: len(data),
	}
	if period.StartDate == "" {
		period.StartDate = data[0].Date.Format(time.RFC3339)
	}
	if period.EndDate == "" {
		period.EndDate = data[len(data)-1].Date.Format(time.RFC3339)
	}

	return Evolution{
		ExerciseName: name,
		ExerciseID:   exerciseID,
		SeriesType:   mode,
		Period:       period,
		Data:         data,
		Analysis:     analyzeEvolution(data, mode),
	}
}

type Improvement struct {
	Difference   float64  `json:"difference"`
	Percentage   float64  `json:"percentage"`
	InitialValue *float64 `json:"initialValue,omitempty"`
	CurrentValue *float64 `json:"currentValue,omitempty"`
}

type ExerciseComparison struct {
	ExerciseID    string            `json:"exerciseId"`
	ExerciseName  string            `json:"exerciseName"`
	TotalSessions int               `json:"totalSessions"`
	LatestData    *EvolutionSession `json:"latestData"`
	FirstData     *EvolutionSession `json:"firstData"`
	Improvement   Improvement       `json:"improvement"`
}

type RankingEntry struct {
	Position     int         `json:"position"`
	ExerciseName string      `json:"exerciseName"`
	Improvement  Improvement `json:"improvement"`
}

type Comparison struct {
	Metric    RecordType           `json:"metric"`
	Period    PeriodLabel          `json:"period"`
	Exercises []ExerciseComparison `json:"exercises"`
	Ranking   []RankingEntry       `json:"ranking"`
}

func metricValue(s EvolutionSession, metric RecordType) float64 {
	switch metric {
	case RecordReps:
		return float64(s.MaxReps.Reps)
	case RecordVolume:
		return s.BestVolume.Volume
	}
	return s.MaxWeight.Weight
}

// ImprovementOf compares the first and last max-mode sessions on metric.
func ImprovementOf(data []EvolutionSession, metric RecordType) Improvement {
	if len(data) < 2 {
		return Improvement{}
	}

	initial := metricValue(data[0], metric)
	current := metricValue(data[len(data)-1], metric)
	return Improvement{
		Difference:   pkg.Round(current-initial, 2),
		Percentage:   pkg.Round(percentChange(initial, current), 2),
		InitialValue: &initial,
		CurrentValue: &current,
	}
}

func compareEntry(exerciseID string, metric RecordType, evolution Evolution) ExerciseComparison {
	entry := ExerciseComparison{
		ExerciseID:   exerciseID,
		ExerciseName: evolution.ExerciseName,
		Improvement:  ImprovementOf(evolution.Data, metric),
	}
	if evolution.Period != nil {
		entry.TotalSessions = evolution.Period.TotalSessions
	}
	if n := len(evolution.Data); n > 0 {
		entry.FirstData = &evolution.Data[0]
		entry.LatestData = &evolution.Data[n-1]
	}
	return entry
}

// BuildComparison ranks the exercises by improvement percentage, ties keep input order.
func BuildComparison(metric RecordType, r Range, entries []ExerciseComparison) Comparison {
	ranked := make([]ExerciseComparison, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Improvement.Percentage > ranked[j].Improvement.Percentage
	})

	ranking := make([]RankingEntry, 0, len(ranked))
	for i, e := range ranked {
		ranking = append(ranking, RankingEntry{
			Position:     i + 1,
			ExerciseName: e.ExerciseName,
			Improvement:  e.Improvement,
		})
	}

	return Comparison{
		Metric:    metric,
		Period:    r.Label(),
		Exercises: entries,
		Ranking:   ranking,
	}
}
