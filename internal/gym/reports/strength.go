package reports

import (
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/gymtracker/internal/gym/workouts"
	"github.com/2beens/gymtracker/pkg"
)

type CurvePoint struct {
	Date         time.Time `json:"date"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	Estimated1RM float64   `json:"estimated1RM"`
	Volume       float64   `json:"volume"`
}

type LiftRecord struct {
	Weight float64   `json:"weight"`
	Reps   *int      `json:"reps,omitempty"`
	Date   time.Time `json:"date"`
}

type EstimatedMax struct {
	Value   float64   `json:"value"`
	BasedOn string    `json:"basedOn"`
	Date    time.Time `json:"date"`
}

type StrengthRecords struct {
	Heaviest1Rep   *LiftRecord   `json:"heaviest1Rep"`
	Heaviest5Reps  *LiftRecord   `json:"heaviest5Reps"`
	Heaviest10Reps *LiftRecord   `json:"heaviest10Reps"`
	Estimated1RM   *EstimatedMax `json:"estimated1RM"`
}

type ExerciseStrength struct {
	ExerciseName  string          `json:"exerciseName"`
	ExerciseID    *string         `json:"exerciseId"`
	StrengthCurve []CurvePoint    `json:"strengthCurve"`
	Records       StrengthRecords `json:"records"`
}

type StrengthSummary struct {
	TotalExercises       int    `json:"totalExercises"`
	OverallStrengthTrend string `json:"overallStrengthTrend"`
}

type Strength struct {
	Exercises []ExerciseStrength `json:"exercises"`
	Summary   StrengthSummary    `json:"summary"`
}

func formatKg(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func heavier(current *LiftRecord, weight float64) bool {
	return current == nil || weight > current.Weight
}

// BuildStrength expects chronological workouts. Series without a 1RM
// estimate stay out of the curve and the records.
func BuildStrength(ws []workouts.WorkoutExecution) Strength {
	var exercises []*ExerciseStrength
	index := map[string]*ExerciseStrength{}

	for _, ref := range executionsOf(ws) {
		ee := ref.execution
		es, ok := index[ee.ExerciseName]
		if !ok {
			es = &ExerciseStrength{
				ExerciseName:  ee.ExerciseName,
				ExerciseID:    ee.ExerciseID,
				StrengthCurve: []CurvePoint{},
			}
			index[ee.ExerciseName] = es
			exercises = append(exercises, es)
		}

		date := ref.workout.Date
		for _, s := range ee.Series {
			estimate, ok := Brzycki(s.Weight, s.Reps)
			if !ok {
				continue
			}
			estimate = pkg.Round(estimate, 2)

			es.StrengthCurve = append(es.StrengthCurve, CurvePoint{
				Date:         date,
				Weight:       s.Weight,
				Reps:         s.Reps,
				Estimated1RM: estimate,
				Volume:       s.Volume(),
			})

			records := &es.Records
			reps := s.Reps
			if reps == 1 && heavier(records.Heaviest1Rep, s.Weight) {
				records.Heaviest1Rep = &LiftRecord{Weight: s.Weight, Date: date}
			}
			if reps >= 5 && heavier(records.Heaviest5Reps, s.Weight) {
				records.Heaviest5Reps = &LiftRecord{Weight: s.Weight, Reps: &reps, Date: date}
			}
			if reps >= 10 && heavier(records.Heaviest10Reps, s.Weight) {
				records.Heaviest10Reps = &LiftRecord{Weight: s.Weight, Reps: &reps, Date: date}
			}
			if records.Estimated1RM == nil || estimate > records.Estimated1RM.Value {
				records.Estimated1RM = &EstimatedMax{
					Value:   estimate,
					BasedOn: fmt.Sprintf("%skg x %d reps", formatKg(s.Weight), s.Reps),
					Date:    date,
				}
			}
		}
	}

	strength := Strength{Exercises: make([]ExerciseStrength, 0, len(exercises))}
	for _, es := range exercises {
		strength.Exercises = append(strength.Exercises, *es)
	}
	strength.Summary = StrengthSummary{
		TotalExercises:       len(strength.Exercises),
		OverallStrengthTrend: overallStrengthTrend(strength.Exercises),
	}
	return strength
}

// overallStrengthTrend averages the first to last 1RM change of every exercise curve.
func overallStrengthTrend(exercises []ExerciseStrength) string {
	if len(exercises) == 0 {
		return "no_data"
	}

	deltas := make([]float64, 0, len(exercises))
	for _, es := range exercises {
		curve := es.StrengthCurve
		if len(curve) < 2 {
			deltas = append(deltas, 0)
			continue
		}
		deltas = append(deltas, curve[len(curve)-1].Estimated1RM-curve[0].Estimated1RM)
	}

	avg := mean(deltas)
	switch {
	case avg > 5:
		return "strong_improvement"
	case avg > 0:
		return "improvement"
	case avg > -5:
		return "stable"
	}
	return "decline"
}
