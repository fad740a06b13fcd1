package workouts

import (
	"strconv"
	"strings"
	"time"
)

type SortOrder int

const (
	DateDesc SortOrder = iota
	DateAsc
)

// Filter selects the workouts read by FindWorkouts and CountWorkouts.
// Zero values mean "no restriction", UserID is always applied.
type Filter struct {
	UserID    string
	WorkoutID string
	Statuses  []Status
	// From and To are inclusive calendar dates.
	From        *time.Time
	To          *time.Time
	MuscleGroup string
	// Search is a case insensitive substring over notes, muscle group tags and exercise names.
	Search string
	// ExerciseID keeps workouts that executed the exercise, and restricts
	// the nested exercise executions to it.
	ExerciseID string
	Order      SortOrder
	Limit      int
	Offset     int
}

type whereBuilder struct {
	conds []string
	args  []any
}

// add appends a condition, every "?" in it refers to the same new argument.
func (b *whereBuilder) add(cond string, arg any) {
	b.args = append(b.args, arg)
	placeholder := "$" + strconv.Itoa(len(b.args))
	b.conds = append(b.conds, strings.ReplaceAll(cond, "?", placeholder))
}

func (b *whereBuilder) sql() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// escapeLike escapes the LIKE wildcards, backslash is the default escape character.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (f Filter) where() (string, []any) {
	b := &whereBuilder{}
	b.add("w.user_id = ?", f.UserID)
	if f.WorkoutID != "" {
		b.add("w.id::text = ?", f.WorkoutID)
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			statuses = append(statuses, string(s))
		}
		b.add("w.status = ANY(?::text[])", statuses)
	}
	if f.From != nil {
		b.add("w.date >= ?::date", *f.From)
	}
	if f.To != nil {
		b.add("w.date <= ?::date", *f.To)
	}
	if f.MuscleGroup != "" {
		b.add("?::text = ANY(w.muscle_groups)", f.MuscleGroup)
	}
	if f.Search != "" {
		b.add(`(
			w.notes ILIKE ?
			OR EXISTS (SELECT 1 FROM unnest(w.muscle_groups) mg WHERE mg ILIKE ?)
			OR EXISTS (
				SELECT 1 FROM exercise_execution se
				WHERE se.workout_execution_id = w.id AND se.exercise_name ILIKE ?
			)
		)`, "%"+escapeLike(f.Search)+"%")
	}
	if f.ExerciseID != "" {
		b.add(`EXISTS (
			SELECT 1 FROM exercise_execution fe
			WHERE fe.workout_execution_id = w.id AND fe.exercise_id::text = ?
		)`, f.ExerciseID)
	}
	return b.sql(), b.args
}

func (f Filter) selectSQL() (string, []any) {
	where, args := f.where()
	query := `SELECT ` + workoutColumns + ` FROM workout_execution w` + where
	if f.Order == DateAsc {
		query += ` ORDER BY w.date ASC, w.start_time ASC`
	} else {
		query += ` ORDER BY w.date DESC, w.start_time DESC`
	}
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}
	return query, args
}

func (f Filter) countSQL() (string, []any) {
	where, args := f.where()
	return `SELECT count(*) FROM workout_execution w` + where, args
}
