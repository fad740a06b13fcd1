package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound           = errors.New("workout not found")
	ErrWorkoutExists             = errors.New("workout already exists for date")
	ErrWorkoutInProgress         = errors.New("workout in progress")
	ErrExerciseExecutionNotFound = errors.New("exercise execution not found")
	ErrUnknownExercise           = errors.New("unknown exercise")
)

const (
	workoutColumns = `w.id, w.user_id, w.date, w.day_of_week, w.muscle_groups,
		w.start_time, w.end_time, w.status, w.notes, w.created_at`
	exerciseExecutionColumns = `ee.id, ee.workout_execution_id, ee.exercise_id, ee.exercise_name,
		ee.position, ee.planned_series, ee.completed_series, ee.is_completed`
	seriesColumns = `s.id, s.exercise_execution_id, s.series_number, s.weight, s.reps,
		s.rest_time, s.difficulty, s.notes, s.created_at`

	// join condition for statements touching an exercise execution of an active workout
	activeExerciseExecution = `
		ee.workout_execution_id = w.id
		AND ee.id::text = $3
		AND w.id::text = $2
		AND w.user_id = $1
		AND w.status = 'IN_PROGRESS'`
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanWorkout(row pgx.Row) (WorkoutExecution, error) {
	var w WorkoutExecution
	err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Date,
		&w.DayOfWeek,
		&w.MuscleGroups,
		&w.StartTime,
		&w.EndTime,
		&w.Status,
		&w.Notes,
		&w.CreatedAt,
	)
	w.Exercises = []ExerciseExecution{}
	return w, err
}

func scanExerciseExecution(row pgx.Row) (ExerciseExecution, error) {
	var ee ExerciseExecution
	err := row.Scan(
		&ee.ID,
		&ee.WorkoutExecutionID,
		&ee.ExerciseID,
		&ee.ExerciseName,
		&ee.Position,
		&ee.PlannedSeries,
		&ee.CompletedSeries,
		&ee.IsCompleted,
	)
	ee.Series = []SeriesExecution{}
	return ee, err
}

func seriesScanTargets(s *SeriesExecution) []any {
	return []any{
		&s.ID,
		&s.ExerciseExecutionID,
		&s.SeriesNumber,
		&s.Weight,
		&s.Reps,
		&s.RestTime,
		&s.Difficulty,
		&s.Notes,
		&s.CreatedAt,
	}
}

func insertWorkout(ctx context.Context, q querier, w WorkoutExecution) error {
	_, err := q.Exec(
		ctx,
		`
			INSERT INTO workout_execution
			    (id, user_id, date, day_of_week, muscle_groups, start_time, end_time, status, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`,
		w.ID,
		w.UserID,
		w.Date,
		w.DayOfWeek,
		w.MuscleGroups,
		w.StartTime,
		w.EndTime,
		string(w.Status),
		w.Notes,
		w.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationOf(err, "workout_execution_user_id_date_key") {
			return ErrWorkoutExists
		}
		return fmt.Errorf("insert workout: %w", err)
	}
	return nil
}

func existsOnDate(ctx context.Context, q querier, userID string, date time.Time) (bool, error) {
	var exists bool
	err := q.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM workout_execution WHERE user_id = $1 AND date = $2::date)`,
		userID, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("workout exists [query row]: %w", err)
	}
	return exists, nil
}

func (r *Repo) ExistsOnDate(ctx context.Context, userID string, date time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.existsOnDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return existsOnDate(ctx, r.db, userID, date)
}

func (r *Repo) Create(ctx context.Context, w WorkoutExecution) (_ *WorkoutExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := insertWorkout(ctx, r.db, w); err != nil {
		return nil, err
	}
	w.Exercises = []ExerciseExecution{}
	return &w, nil
}

func (r *Repo) Get(ctx context.Context, userID, id string) (_ *WorkoutExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	found, err := findWorkouts(ctx, r.db, Filter{UserID: userID, WorkoutID: id})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrWorkoutNotFound
	}
	return &found[0], nil
}

// FindWorkouts returns the matching workouts with their exercise and series executions,
// exercises ordered by position and series by number.
func (r *Repo) FindWorkouts(ctx context.Context, f Filter) (_ []WorkoutExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.find")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("filter.limit", f.Limit),
		attribute.Int("filter.offset", f.Offset),
		attribute.String("filter.exerciseId", f.ExerciseID),
	)

	return findWorkouts(ctx, r.db, f)
}

func (r *Repo) CountWorkouts(ctx context.Context, f Filter) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query, args := f.countSQL()
	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count workouts [query row]: %w", err)
	}
	return count, nil
}

func findWorkouts(ctx context.Context, q querier, f Filter) ([]WorkoutExecution, error) {
	query, args := f.selectSQL()
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("workouts [query]: %w", err)
	}
	defer rows.Close()

	workouts := []WorkoutExecution{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("workouts [rows scan]: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workouts [rows error]: %w", err)
	}

	if err := loadExecutions(ctx, q, workouts, f.ExerciseID); err != nil {
		return nil, err
	}
	return workouts, nil
}

// loadExecutions fills the nested executions with two queries for the whole page.
func loadExecutions(ctx context.Context, q querier, workouts []WorkoutExecution, exerciseID string) error {
	if len(workouts) == 0 {
		return nil
	}

	workoutIDs := make([]string, 0, len(workouts))
	workoutIdx := make(map[string]int, len(workouts))
	for i, w := range workouts {
		workoutIDs = append(workoutIDs, w.ID)
		workoutIdx[w.ID] = i
	}

	rows, err := q.Query(
		ctx,
		`
			SELECT `+exerciseExecutionColumns+`
			FROM exercise_execution ee
			WHERE ee.workout_execution_id = ANY($1::uuid[])
			  AND ($2::text = '' OR ee.exercise_id::text = $2)
			ORDER BY ee.workout_execution_id, ee.position ASC
		`,
		workoutIDs, exerciseID,
	)
	if err != nil {
		return fmt.Errorf("exercise executions [query]: %w", err)
	}

	type eeRef struct{ workout, exercise int }
	eeRefs := map[string]eeRef{}
	var eeIDs []string
	for rows.Next() {
		ee, err := scanExerciseExecution(rows)
		if err != nil {
			rows.Close()
			return fmt.Errorf("exercise executions [rows scan]: %w", err)
		}
		wi := workoutIdx[ee.WorkoutExecutionID]
		workouts[wi].Exercises = append(workouts[wi].Exercises, ee)
		eeRefs[ee.ID] = eeRef{workout: wi, exercise: len(workouts[wi].Exercises) - 1}
		eeIDs = append(eeIDs, ee.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("exercise executions [rows error]: %w", err)
	}
	if len(eeIDs) == 0 {
		return nil
	}

	seriesRows, err := q.Query(
		ctx,
		`
			SELECT `+seriesColumns+`
			FROM series_execution s
			WHERE s.exercise_execution_id = ANY($1::uuid[])
			ORDER BY s.exercise_execution_id, s.series_number ASC
		`,
		eeIDs,
	)
	if err != nil {
		return fmt.Errorf("series executions [query]: %w", err)
	}
	defer seriesRows.Close()

	for seriesRows.Next() {
		var s SeriesExecution
		if err := seriesRows.Scan(seriesScanTargets(&s)...); err != nil {
			return fmt.Errorf("series executions [rows scan]: %w", err)
		}
		ref := eeRefs[s.ExerciseExecutionID]
		ee := &workouts[ref.workout].Exercises[ref.exercise]
		ee.Series = append(ee.Series, s)
	}
	if err := seriesRows.Err(); err != nil {
		return fmt.Errorf("series executions [rows error]: %w", err)
	}

	return nil
}

// SelectExercises adds one execution per exercise id to an IN_PROGRESS workout,
// all or nothing.
func (r *Repo) SelectExercises(
	ctx context.Context,
	userID, workoutID string,
	exerciseIDs []string,
) (_ []ExerciseExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.selectExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID), attribute.Int("exercises.count", len(exerciseIDs)))

	var created []ExerciseExecution
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var lockedID string
		err := tx.QueryRow(
			ctx,
			`
				SELECT id FROM workout_execution
				WHERE id::text = $1 AND user_id = $2 AND status = 'IN_PROGRESS'
				FOR UPDATE
			`,
			workoutID, userID,
		).Scan(&lockedID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrWorkoutNotFound
			}
			return fmt.Errorf("lock workout [query row]: %w", err)
		}

		rows, err := tx.Query(
			ctx,
			`SELECT id::text, name FROM exercise WHERE user_id = $1 AND id::text = ANY($2::text[])`,
			userID, exerciseIDs,
		)
		if err != nil {
			return fmt.Errorf("exercises [query]: %w", err)
		}
		names := map[string]string{}
		for rows.Next() {
			var id, name string
			if err := rows.Scan(&id, &name); err != nil {
				rows.Close()
				return fmt.Errorf("exercises [rows scan]: %w", err)
			}
			names[id] = name
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("exercises [rows error]: %w", err)
		}

		for _, id := range exerciseIDs {
			if _, ok := names[id]; !ok {
				return fmt.Errorf("%w: %s", ErrUnknownExercise, id)
			}
		}

		for i, id := range exerciseIDs {
			exerciseID := id
			ee := ExerciseExecution{
				ID:                 uuid.NewString(),
				WorkoutExecutionID: lockedID,
				ExerciseID:         &exerciseID,
				ExerciseName:       names[id],
				Position:           i + 1,
				Series:             []SeriesExecution{},
			}
			if _, err := tx.Exec(
				ctx,
				`
					INSERT INTO exercise_execution
					    (id, workout_execution_id, exercise_id, exercise_name, position, planned_series, completed_series, is_completed)
					VALUES ($1, $2, $3, $4, $5, 0, 0, FALSE)
				`,
				ee.ID, ee.WorkoutExecutionID, exerciseID, ee.ExerciseName, ee.Position,
			); err != nil {
				if pkg.IsForeignKeyViolationError(err) {
					return fmt.Errorf("%w: %s", ErrUnknownExercise, id)
				}
				return fmt.Errorf("insert exercise execution: %w", err)
			}
			created = append(created, ee)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *Repo) DefineSeries(
	ctx context.Context,
	userID, workoutID, exerciseExecutionID string,
	plannedSeries int,
) (_ *ExerciseExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.defineSeries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ee, err := scanExerciseExecution(r.db.QueryRow(
		ctx,
		`
			UPDATE exercise_execution ee
			SET planned_series = $4
			FROM workout_execution w
			WHERE `+activeExerciseExecution+`
			RETURNING `+exerciseExecutionColumns,
		userID, workoutID, exerciseExecutionID, plannedSeries,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseExecutionNotFound
		}
		return nil, fmt.Errorf("define series [query row]: %w", err)
	}
	return &ee, nil
}

func (r *Repo) CompleteExercise(
	ctx context.Context,
	userID, workoutID, exerciseExecutionID string,
) (_ *ExerciseExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completeExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ee, err := scanExerciseExecution(r.db.QueryRow(
		ctx,
		`
			UPDATE exercise_execution ee
			SET is_completed = TRUE
			FROM workout_execution w
			WHERE `+activeExerciseExecution+`
			RETURNING `+exerciseExecutionColumns,
		userID, workoutID, exerciseExecutionID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseExecutionNotFound
		}
		return nil, fmt.Errorf("complete exercise [query row]: %w", err)
	}
	return &ee, nil
}

// RegisterSeries upserts the series keyed on (exercise execution, series number).
// created reports whether the row is new, only then completed_series moves.
func (r *Repo) RegisterSeries(
	ctx context.Context,
	userID, workoutID string,
	series SeriesExecution,
) (_ *SeriesExecution, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.registerSeries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("series.number", series.SeriesNumber))

	var stored SeriesExecution
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var eeID string
		err := tx.QueryRow(
			ctx,
			`
				SELECT ee.id FROM exercise_execution ee, workout_execution w
				WHERE `+activeExerciseExecution+`
				FOR UPDATE OF ee
			`,
			userID, workoutID, series.ExerciseExecutionID,
		).Scan(&eeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrExerciseExecutionNotFound
			}
			return fmt.Errorf("lock exercise execution [query row]: %w", err)
		}

		targets := append(seriesScanTargets(&stored), &created)
		if err := tx.QueryRow(
			ctx,
			`
				INSERT INTO series_execution AS s
				    (id, exercise_execution_id, series_number, weight, reps, rest_time, difficulty, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				ON CONFLICT (exercise_execution_id, series_number) DO UPDATE
				SET weight = EXCLUDED.weight,
				    reps = EXCLUDED.reps,
				    rest_time = EXCLUDED.rest_time,
				    difficulty = EXCLUDED.difficulty,
				    notes = EXCLUDED.notes
				RETURNING `+seriesColumns+`, (xmax = 0) AS inserted
			`,
			series.ID,
			eeID,
			series.SeriesNumber,
			series.Weight,
			series.Reps,
			series.RestTime,
			series.Difficulty,
			series.Notes,
			series.CreatedAt,
		).Scan(targets...); err != nil {
			return fmt.Errorf("upsert series [query row]: %w", err)
		}

		if !created {
			return nil
		}
		if _, err := tx.Exec(
			ctx,
			`UPDATE exercise_execution SET completed_series = completed_series + 1 WHERE id = $1`,
			eeID,
		); err != nil {
			return fmt.Errorf("increment completed series: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &stored, created, nil
}

// Finish completes an IN_PROGRESS workout, an empty notes value keeps the stored notes.
func (r *Repo) Finish(
	ctx context.Context,
	userID, workoutID, notes string,
	endTime time.Time,
) (_ *WorkoutExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := scanWorkout(r.db.QueryRow(
		ctx,
		`
			UPDATE workout_execution w
			SET status = 'COMPLETED', end_time = $3, notes = COALESCE(NULLIF($4::text, ''), w.notes)
			WHERE w.id::text = $1 AND w.user_id = $2 AND w.status = 'IN_PROGRESS'
			RETURNING `+workoutColumns,
		workoutID, userID, endTime, notes,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("finish workout [query row]: %w", err)
	}
	return &w, nil
}

// Delete removes the workout with its executions. With keepInProgress an
// IN_PROGRESS workout is left untouched and ErrWorkoutInProgress returned.
func (r *Repo) Delete(ctx context.Context, userID, workoutID string, keepInProgress bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID))

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var status Status
		err := tx.QueryRow(
			ctx,
			`SELECT status FROM workout_execution WHERE id::text = $1 AND user_id = $2 FOR UPDATE`,
			workoutID, userID,
		).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrWorkoutNotFound
			}
			return fmt.Errorf("lock workout [query row]: %w", err)
		}
		if keepInProgress && status == StatusInProgress {
			return ErrWorkoutInProgress
		}

		if _, err := tx.Exec(
			ctx,
			`DELETE FROM workout_execution WHERE id::text = $1 AND user_id = $2`,
			workoutID, userID,
		); err != nil {
			return fmt.Errorf("delete workout: %w", err)
		}
		return nil
	})
}

// WorkoutBuilder derives a new workout from an existing one.
type WorkoutBuilder func(source WorkoutExecution) WorkoutExecution

// Duplicate creates the workout returned by build from the source workout,
// unless the user already has a workout on the new date.
func (r *Repo) Duplicate(
	ctx context.Context,
	userID, sourceID string,
	build WorkoutBuilder,
) (_ *WorkoutExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.duplicate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.sourceId", sourceID))

	var duplicate WorkoutExecution
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		source, err := scanWorkout(tx.QueryRow(
			ctx,
			`SELECT `+workoutColumns+` FROM workout_execution w WHERE w.id::text = $1 AND w.user_id = $2`,
			sourceID, userID,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrWorkoutNotFound
			}
			return fmt.Errorf("source workout [query row]: %w", err)
		}

		duplicate = build(source)
		exists, err := existsOnDate(ctx, tx, userID, duplicate.Date)
		if err != nil {
			return err
		}
		if exists {
			return ErrWorkoutExists
		}

		return insertWorkout(ctx, tx, duplicate)
	})
	if err != nil {
		return nil, err
	}

	duplicate.Exercises = []ExerciseExecution{}
	return &duplicate, nil
}
