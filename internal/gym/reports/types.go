package reports

import (
	"time"
)

const (
	periodStartLabel = "Início"
	periodEndLabel   = "Hoje"
	noMuscleGroup    = "Nenhum"
	unknownExercise  = "Exercício não encontrado"
)

// Range is the optional inclusive date range of a report, as given by the client.
type Range struct {
	StartDate string
	EndDate   string
}

type PeriodLabel struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (r Range) Label() PeriodLabel {
	label := PeriodLabel{StartDate: r.StartDate, EndDate: r.EndDate}
	if label.StartDate == "" {
		label.StartDate = periodStartLabel
	}
	if label.EndDate == "" {
		label.EndDate = periodEndLabel
	}
	return label
}

type OverviewTotals struct {
	Workouts  int     `json:"workouts"`
	Exercises int     `json:"exercises"`
	Series    int     `json:"series"`
	Volume    float64 `json:"volume"`
}

type OverviewAverages struct {
	ExercisesPerWorkout float64 `json:"exercisesPerWorkout"`
	SeriesPerWorkout    float64 `json:"seriesPerWorkout"`
	DurationMinutes     float64 `json:"durationMinutes"`
}

type Overview struct {
	Period       PeriodLabel      `json:"period"`
	Totals       OverviewTotals   `json:"totals"`
	Averages     OverviewAverages `json:"averages"`
	WorkoutDates []time.Time      `json:"workoutDates"`
}

type SeriesData struct {
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
	Difficulty *int    `json:"difficulty"`
}

type ProgressSession struct {
	Date       time.Time    `json:"date"`
	Series     int          `json:"series"`
	MaxWeight  float64      `json:"maxWeight"`
	MaxReps    int          `json:"maxReps"`
	Volume     float64      `json:"volume"`
	SeriesData []SeriesData `json:"seriesData"`
}

type ProgressTotals struct {
	MaxWeight   float64 `json:"maxWeight"`
	MaxReps     int     `json:"maxReps"`
	MaxVolume   float64 `json:"maxVolume"`
	TotalSeries int     `json:"totalSeries"`
}

type ExerciseProgress struct {
	ExerciseID   *string           `json:"exerciseId"`
	ExerciseName string            `json:"exerciseName"`
	Sessions     []ProgressSession `json:"sessions"`
	Progress     ProgressTotals    `json:"progress"`
}

type FrequencyBucket struct {
	Period string      `json:"period"`
	Count  int         `json:"count"`
	Dates  []time.Time `json:"dates"`
}

type FrequencySummary struct {
	Total   int     `json:"total"`
	Average float64 `json:"average"`
}

type Frequency struct {
	Period  FrequencyPeriod   `json:"period"`
	Data    []FrequencyBucket `json:"data"`
	Summary FrequencySummary  `json:"summary"`
}

type MuscleGroupStats struct {
	Name        string     `json:"name"`
	Workouts    int        `json:"workouts"`
	Exercises   int        `json:"exercises"`
	Series      int        `json:"series"`
	Volume      float64    `json:"volume"`
	LastWorkout *time.Time `json:"lastWorkout"`
}

type MuscleGroups struct {
	MuscleGroups []MuscleGroupStats `json:"muscleGroups"`
	Total        int                `json:"total"`
}

type VolumePoint struct {
	Date         time.Time `json:"date"`
	ExerciseName string    `json:"exerciseName"`
	Volume       float64   `json:"volume"`
	Series       int       `json:"series"`
	AvgWeight    float64   `json:"avgWeight"`
	TotalReps    int       `json:"totalReps"`
}

type VolumeSummary struct {
	TotalVolume   float64 `json:"totalVolume"`
	AverageVolume float64 `json:"averageVolume"`
	MaxVolume     float64 `json:"maxVolume"`
	Trend         Trend   `json:"trend"`
}

type Volume struct {
	Data    []VolumePoint `json:"data"`
	Summary VolumeSummary `json:"summary"`
}

type RecordType string

const (
	RecordWeight RecordType = "weight"
	RecordReps   RecordType = "reps"
	RecordVolume RecordType = "volume"
)

var recordLabels = map[RecordType]string{
	RecordWeight: "Peso máximo",
	RecordReps:   "Repetições máximas",
	RecordVolume: "Volume máximo",
}

// Record is a personal best. Reps is set for weight records, Weight for reps records.
type Record struct {
	Value  float64    `json:"value"`
	Date   *time.Time `json:"date"`
	Reps   *int       `json:"reps,omitempty"`
	Weight *float64   `json:"weight,omitempty"`
}

type PersonalRecord struct {
	ExerciseName string `json:"exerciseName"`
	Record       Record `json:"record"`
	Type         string `json:"type"`
}

type DurationPoint struct {
	Date      time.Time `json:"date"`
	Duration  float64   `json:"duration"`
	DayOfWeek string    `json:"dayOfWeek"`
}

type DurationSummary struct {
	Average  float64 `json:"average"`
	Shortest float64 `json:"shortest"`
	Longest  float64 `json:"longest"`
	Total    float64 `json:"total"`
}

type Duration struct {
	Data    []DurationPoint `json:"data"`
	Summary DurationSummary `json:"summary"`
}

type WeekdayCount struct {
	DayOfWeek  string  `json:"dayOfWeek"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type Consistency struct {
	Data           []WeekdayCount `json:"data"`
	MostActiveDay  WeekdayCount   `json:"mostActiveDay"`
	LeastActiveDay WeekdayCount   `json:"leastActiveDay"`
}
