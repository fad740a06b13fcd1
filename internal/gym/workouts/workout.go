package workouts

import (
	"time"
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	// StatusCancelled is stored and counted, nothing transitions into it.
	StatusCancelled Status = "CANCELLED"
)

var Statuses = []Status{StatusInProgress, StatusCompleted, StatusCancelled}

// ParseStatus accepts only the known status values.
func ParseStatus(s string) (Status, bool) {
	for _, status := range Statuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

type SeriesExecution struct {
	ID                  string    `json:"id"`
	ExerciseExecutionID string    `json:"exerciseExecutionId"`
	SeriesNumber        int       `json:"seriesNumber"`
	Weight              float64   `json:"weight"`
	Reps                int       `json:"reps"`
	RestTime            *int      `json:"restTime"`
	Difficulty          *int      `json:"difficulty"`
	Notes               *string   `json:"notes"`
	CreatedAt           time.Time `json:"createdAt"`
}

func (s SeriesExecution) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

type ExerciseExecution struct {
	ID                 string `json:"id"`
	WorkoutExecutionID string `json:"workoutExecutionId"`
	// ExerciseID is nil once the catalog exercise is deleted; ExerciseName keeps the snapshot.
	ExerciseID      *string           `json:"exerciseId"`
	ExerciseName    string            `json:"exerciseName"`
	Position        int               `json:"order"`
	PlannedSeries   int               `json:"plannedSeries"`
	CompletedSeries int               `json:"completedSeries"`
	IsCompleted     bool              `json:"isCompleted"`
	Series          []SeriesExecution `json:"seriesExecutions"`
}

func (e ExerciseExecution) Volume() float64 {
	var volume float64
	for _, s := range e.Series {
		volume += s.Volume()
	}
	return volume
}

type WorkoutExecution struct {
	ID           string              `json:"id"`
	UserID       string              `json:"userId"`
	Date         time.Time           `json:"date"`
	DayOfWeek    string              `json:"dayOfWeek"`
	MuscleGroups []string            `json:"muscleGroups"`
	StartTime    time.Time           `json:"startTime"`
	EndTime      *time.Time          `json:"endTime"`
	Status       Status              `json:"status"`
	Notes        *string             `json:"notes"`
	CreatedAt    time.Time           `json:"createdAt"`
	Exercises    []ExerciseExecution `json:"exerciseExecutions"`
}

// DurationMinutes is 0 until the workout has an end time.
func (w WorkoutExecution) DurationMinutes() float64 {
	if w.EndTime == nil {
		return 0
	}
	return w.EndTime.Sub(w.StartTime).Minutes()
}

func (w WorkoutExecution) TotalSeries() int {
	total := 0
	for _, e := range w.Exercises {
		total += len(e.Series)
	}
	return total
}

func (w WorkoutExecution) TotalVolume() float64 {
	var volume float64
	for _, e := range w.Exercises {
		volume += e.Volume()
	}
	return volume
}

func (w WorkoutExecution) CompletedExercises() int {
	completed := 0
	for _, e := range w.Exercises {
		if e.IsCompleted {
			completed++
		}
	}
	return completed
}

func (w WorkoutExecution) AllSeries() []SeriesExecution {
	var all []SeriesExecution
	for _, e := range w.Exercises {
		all = append(all, e.Series...)
	}
	return all
}

type StartWorkoutRequest struct {
	MuscleGroups []string `json:"muscleGroups"`
	Notes        *string  `json:"notes,omitempty"`
}

type SelectExercisesRequest struct {
	ExerciseIDs []string `json:"exerciseIds"`
}

type DefineSeriesRequest struct {
	PlannedSeries *int `json:"plannedSeries"`
}

type RegisterSeriesRequest struct {
	Weight     *float64 `json:"weight"`
	Reps       *int     `json:"reps"`
	RestTime   *int     `json:"restTime,omitempty"`
	Difficulty *int     `json:"difficulty,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
}

type FinishWorkoutRequest struct {
	Notes *string `json:"notes,omitempty"`
}
