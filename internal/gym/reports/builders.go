package reports

import (
	"math"
	"time"

	"github.com/2beens/gymtracker/internal/gym/workouts"
	"github.com/2beens/gymtracker/pkg"
)

// executionRef is an exercise execution together with its workout.
type executionRef struct {
	workout   *workouts.WorkoutExecution
	execution *workouts.ExerciseExecution
}

// executionsOf flattens the workouts in their order, exercises by position.
func executionsOf(ws []workouts.WorkoutExecution) []executionRef {
	var refs []executionRef
	for i := range ws {
		for j := range ws[i].Exercises {
			refs = append(refs, executionRef{workout: &ws[i], execution: &ws[i].Exercises[j]})
		}
	}
	return refs
}

func BuildOverview(r Range, ws []workouts.WorkoutExecution) Overview {
	overview := Overview{
		Period:       r.Label(),
		WorkoutDates: make([]time.Time, 0, len(ws)),
	}

	var (
		volume    float64
		durations []float64
	)
	for _, w := range ws {
		overview.Totals.Exercises += len(w.Exercises)
		overview.Totals.Series += w.TotalSeries()
		volume += w.TotalVolume()
		if w.EndTime != nil {
			durations = append(durations, w.DurationMinutes())
		}
		overview.WorkoutDates = append(overview.WorkoutDates, w.Date)
	}

	overview.Totals.Workouts = len(ws)
	overview.Totals.Volume = pkg.Round(volume, 0)
	if len(ws) > 0 {
		overview.Averages.ExercisesPerWorkout = float64(overview.Totals.Exercises) / float64(len(ws))
		overview.Averages.SeriesPerWorkout = float64(overview.Totals.Series) / float64(len(ws))
	}
	overview.Averages.DurationMinutes = pkg.Round(mean(durations), 0)
	return overview
}

// BuildProgress groups executions by exercise name in first-seen order.
func BuildProgress(ws []workouts.WorkoutExecution) []ExerciseProgress {
	progress := []ExerciseProgress{}
	index := map[string]int{}

	for _, ref := range executionsOf(ws) {
		ee := ref.execution
		i, ok := index[ee.ExerciseName]
		if !ok {
			progress = append(progress, ExerciseProgress{
				ExerciseID:   ee.ExerciseID,
				ExerciseName: ee.ExerciseName,
				Sessions:     []ProgressSession{},
			})
			i = len(progress) - 1
			index[ee.ExerciseName] = i
		}

		session := ProgressSession{
			Date:       ref.workout.Date,
			Series:     len(ee.Series),
			Volume:     ee.Volume(),
			SeriesData: make([]SeriesData, 0, len(ee.Series)),
		}
		for _, s := range ee.Series {
			session.MaxWeight = math.Max(session.MaxWeight, s.Weight)
			session.MaxReps = max(session.MaxReps, s.Reps)
			session.SeriesData = append(session.SeriesData, SeriesData{
				Weight:     s.Weight,
				Reps:       s.Reps,
				Difficulty: s.Difficulty,
			})
		}

		p := &progress[i]
		p.Sessions = append(p.Sessions, session)
		p.Progress.MaxWeight = math.Max(p.Progress.MaxWeight, session.MaxWeight)
		p.Progress.MaxReps = max(p.Progress.MaxReps, session.MaxReps)
		p.Progress.MaxVolume = math.Max(p.Progress.MaxVolume, session.Volume)
		p.Progress.TotalSeries += session.Series
	}

	return progress
}

// BuildFrequency expects ws in chronological order.
func BuildFrequency(period FrequencyPeriod, ws []workouts.WorkoutExecution) Frequency {
	frequency := Frequency{
		Period: period,
		Data:   []FrequencyBucket{},
	}

	index := map[string]int{}
	for _, w := range ws {
		key := FrequencyKey(period, w.Date)
		i, ok := index[key]
		if !ok {
			frequency.Data = append(frequency.Data, FrequencyBucket{Period: key, Dates: []time.Time{}})
			i = len(frequency.Data) - 1
			index[key] = i
		}
		frequency.Data[i].Count++
		frequency.Data[i].Dates = append(frequency.Data[i].Dates, w.Date)
	}

	frequency.Summary.Total = len(ws)
	if len(frequency.Data) > 0 {
		frequency.Summary.Average = float64(len(ws)) / float64(len(frequency.Data))
	}
	return frequency
}

func BuildMuscleGroups(ws []workouts.WorkoutExecution) MuscleGroups {
	result := MuscleGroups{
		MuscleGroups: []MuscleGroupStats{},
		Total:        len(ws),
	}

	index := map[string]int{}
	for _, w := range ws {
		for _, group := range w.MuscleGroups {
			i, ok := index[group]
			if !ok {
				result.MuscleGroups = append(result.MuscleGroups, MuscleGroupStats{Name: group})
				i = len(result.MuscleGroups) - 1
				index[group] = i
			}

			stats := &result.MuscleGroups[i]
			stats.Workouts++
			stats.Exercises += len(w.Exercises)
			stats.Series += w.TotalSeries()
			stats.Volume += w.TotalVolume()
			if stats.LastWorkout == nil || w.Date.After(*stats.LastWorkout) {
				date := w.Date
				stats.LastWorkout = &date
			}
		}
	}
	return result
}

func BuildVolume(ws []workouts.WorkoutExecution) Volume {
	volume := Volume{Data: []VolumePoint{}}

	var values []float64
	for _, ref := range executionsOf(ws) {
		ee := ref.execution
		point := VolumePoint{
			Date:         ref.workout.Date,
			ExerciseName: ee.ExerciseName,
			Volume:       ee.Volume(),
			Series:       len(ee.Series),
		}
		var weights float64
		for _, s := range ee.Series {
			weights += s.Weight
			point.TotalReps += s.Reps
		}
		if len(ee.Series) > 0 {
			point.AvgWeight = weights / float64(len(ee.Series))
		}

		volume.Data = append(volume.Data, point)
		values = append(values, point.Volume)
		volume.Summary.TotalVolume += point.Volume
		volume.Summary.MaxVolume = math.Max(volume.Summary.MaxVolume, point.Volume)
	}

	volume.Summary.AverageVolume = mean(values)
	volume.Summary.Trend = ClassifyTrend(values)
	return volume
}

type exerciseRecords struct {
	name      string
	maxWeight Record
	maxReps   Record
	maxVolume Record
}

// BuildPersonalRecords keeps the first series that strictly beats the running best.
func BuildPersonalRecords(ws []workouts.WorkoutExecution, recordType RecordType) []PersonalRecord {
	var all []*exerciseRecords
	index := map[string]*exerciseRecords{}

	for _, ref := range executionsOf(ws) {
		ee := ref.execution
		recs, ok := index[ee.ExerciseName]
		if !ok {
			zeroReps, zeroWeight := 0, 0.0
			recs = &exerciseRecords{
				name:      ee.ExerciseName,
				maxWeight: Record{Reps: &zeroReps},
				maxReps:   Record{Weight: &zeroWeight},
			}
			index[ee.ExerciseName] = recs
			all = append(all, recs)
		}

		date := ref.workout.Date
		for _, s := range ee.Series {
			if s.Weight > recs.maxWeight.Value {
				reps := s.Reps
				recs.maxWeight = Record{Value: s.Weight, Date: &date, Reps: &reps}
			}
			if float64(s.Reps) > recs.maxReps.Value {
				weight := s.Weight
				recs.maxReps = Record{Value: float64(s.Reps), Date: &date, Weight: &weight}
			}
			if s.Volume() > recs.maxVolume.Value {
				recs.maxVolume = Record{Value: s.Volume(), Date: &date}
			}
		}
	}

	records := make([]PersonalRecord, 0, len(all))
	for _, recs := range all {
		pr := PersonalRecord{ExerciseName: recs.name, Type: recordLabels[recordType]}
		switch recordType {
		case RecordReps:
			pr.Record = recs.maxReps
		case RecordVolume:
			pr.Record = recs.maxVolume
		default:
			pr.Record = recs.maxWeight
		}
		records = append(records, pr)
	}
	return records
}

// BuildDuration only looks at workouts with an end time.
func BuildDuration(ws []workouts.WorkoutExecution) Duration {
	duration := Duration{Data: []DurationPoint{}}

	var values []float64
	for _, w := range ws {
		if w.EndTime == nil {
			continue
		}
		minutes := pkg.Round(w.DurationMinutes(), 0)
		duration.Data = append(duration.Data, DurationPoint{
			Date:      w.Date,
			Duration:  minutes,
			DayOfWeek: w.DayOfWeek,
		})
		values = append(values, minutes)
		duration.Summary.Total += minutes
		duration.Summary.Shortest = math.Min(duration.Summary.Shortest, minutes)
		duration.Summary.Longest = math.Max(duration.Summary.Longest, minutes)
	}

	duration.Summary.Average = pkg.Round(mean(values), 0)
	return duration
}

func BuildConsistency(ws []workouts.WorkoutExecution) Consistency {
	counts := map[string]int{}
	for _, w := range ws {
		counts[w.DayOfWeek]++
	}

	consistency := Consistency{Data: make([]WeekdayCount, 0, len(workouts.WeekdayLabels))}
	for _, label := range workouts.WeekdayLabels {
		wc := WeekdayCount{DayOfWeek: label, Count: counts[label]}
		if len(ws) > 0 {
			wc.Percentage = float64(wc.Count) / float64(len(ws)) * 100
		}
		consistency.Data = append(consistency.Data, wc)
	}

	consistency.MostActiveDay = consistency.Data[0]
	consistency.LeastActiveDay = consistency.Data[0]
	for _, wc := range consistency.Data[1:] {
		if wc.Count > consistency.MostActiveDay.Count {
			consistency.MostActiveDay = wc
		}
		if wc.Count < consistency.LeastActiveDay.Count {
			consistency.LeastActiveDay = wc
		}
	}
	return consistency
}

// ConsistencyScore is the share of weekdays with at least one workout.
func (c Consistency) ConsistencyScore() float64 {
	active := 0
	for _, wc := range c.Data {
		if wc.Count > 0 {
			active++
		}
	}
	return float64(active) / 7 * 100
}

// TopMuscleGroup is the group with most workouts, the first one wins ties.
func (m MuscleGroups) TopMuscleGroup() string {
	if len(m.MuscleGroups) == 0 {
		return noMuscleGroup
	}
	top := m.MuscleGroups[0]
	for _, g := range m.MuscleGroups[1:] {
		if g.Workouts > top.Workouts {
			top = g
		}
	}
	return top.Name
}
