package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/apperr"
	"github.com/2beens/gymtracker/internal/gym/exercises"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const maxSeriesWeight = 99999.99

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	ExistsOnDate(ctx context.Context, userID string, date time.Time) (_ bool, err error)
	Create(ctx context.Context, w WorkoutExecution) (_ *WorkoutExecution, err error)
	Get(ctx context.Context, userID, id string) (_ *WorkoutExecution, err error)
	FindWorkouts(ctx context.Context, f Filter) (_ []WorkoutExecution, err error)
	SelectExercises(ctx context.Context, userID, workoutID string, exerciseIDs []string) (_ []ExerciseExecution, err error)
	DefineSeries(ctx context.Context, userID, workoutID, exerciseExecutionID string, plannedSeries int) (_ *ExerciseExecution, err error)
	CompleteExercise(ctx context.Context, userID, workoutID, exerciseExecutionID string) (_ *ExerciseExecution, err error)
	RegisterSeries(ctx context.Context, userID, workoutID string, series SeriesExecution) (_ *SeriesExecution, created bool, err error)
	Finish(ctx context.Context, userID, workoutID, notes string, endTime time.Time) (_ *WorkoutExecution, err error)
	Delete(ctx context.Context, userID, workoutID string, keepInProgress bool) (err error)
}

type exercisesLister interface {
	List(ctx context.Context, params exercises.ListParams) (_ []exercises.Exercise, err error)
}

type Service struct {
	repo           workoutsRepo
	exercises      exercisesLister
	clock          *Clock
	metricsManager *metrics.Manager
}

func NewService(
	repo workoutsRepo,
	exercisesLister exercisesLister,
	clock *Clock,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		exercises:      exercisesLister,
		clock:          clock,
		metricsManager: metricsManager,
	}
}

func notFound(err error) error {
	switch {
	case errors.Is(err, ErrWorkoutNotFound):
		return apperr.Wrap(apperr.KindNotFound, "workout not found", err)
	case errors.Is(err, ErrExerciseExecutionNotFound):
		return apperr.Wrap(apperr.KindNotFound, "exercise execution not found", err)
	}
	return err
}

func (s *Service) StartWorkout(ctx context.Context, userID string, req StartWorkoutRequest) (_ *WorkoutExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	v := &apperr.Validator{}
	v.Check(len(req.MuscleGroups) > 0, "muscleGroups", "required", "select at least one muscle group")
	for i, group := range req.MuscleGroups {
		v.Check(strings.TrimSpace(group) != "", fmt.Sprintf("muscleGroups[%d]", i), "required", "muscle group must not be empty")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	today := s.clock.Today()
	exists, err := s.repo.ExistsOnDate(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("check today workout: %w", err)
	}
	if exists {
		return nil, apperr.NewConflict("a workout already exists for today")
	}

	now := s.clock.Now()
	workout, err := s.repo.Create(ctx, WorkoutExecution{
		ID:           uuid.NewString(),
		UserID:       userID,
		Date:         today,
		DayOfWeek:    WeekdayLabel(today.Weekday()),
		MuscleGroups: req.MuscleGroups,
		StartTime:    now,
		Status:       StatusInProgress,
		Notes:        req.Notes,
		CreatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, ErrWorkoutExists) {
			return nil, apperr.Wrap(apperr.KindConflict, "a workout already exists for today", err)
		}
		return nil, fmt.Errorf("create workout: %w", err)
	}

	s.metricsManager.CounterWorkoutsStarted.Inc()
	return workout, nil
}

// AvailableExercises lists the user's exercises sharing a muscle group with the workout.
func (s *Service) AvailableExercises(ctx context.Context, userID, workoutID string) (_ []exercises.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.availableExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workout, err := s.repo.Get(ctx, userID, workoutID)
	if err != nil {
		return nil, notFound(err)
	}

	return s.exercises.List(ctx, exercises.ListParams{
		UserID:       userID,
		MuscleGroups: workout.MuscleGroups,
	})
}

func (s *Service) SelectExercises(
	ctx context.Context,
	userID, workoutID string,
	req SelectExercisesRequest,
) (_ []ExerciseExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.selectExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	v := &apperr.Validator{}
	v.Check(len(req.ExerciseIDs) > 0, "exerciseIds", "required", "select at least one exercise")
	for i, id := range req.ExerciseIDs {
		v.Check(strings.TrimSpace(id) != "", fmt.Sprintf("exerciseIds[%d]", i), "required", "exercise id must not be empty")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	executions, err := s.repo.SelectExercises(ctx, userID, workoutID, req.ExerciseIDs)
	if err != nil {
		if errors.Is(err, ErrUnknownExercise) {
			return nil, apperr.Wrap(apperr.KindInvalidInput, "one or more exercises were not found", err)
		}
		return nil, notFound(err)
	}
	return executions, nil
}

func (s *Service) DefineSeries(
	ctx context.Context,
	userID, workoutID, exerciseExecutionID string,
	req DefineSeriesRequest,
) (_ *ExerciseExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.defineSeries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	v := &apperr.Validator{}
	v.Check(req.PlannedSeries != nil, "plannedSeries", "required", "planned series is required")
	v.Check(req.PlannedSeries == nil || *req.PlannedSeries >= 0, "plannedSeries", "too_small", "planned series must not be negative")
	if err := v.Err(); err != nil {
		return nil, err
	}

	ee, err := s.repo.DefineSeries(ctx, userID, workoutID, exerciseExecutionID, *req.PlannedSeries)
	if err != nil {
		return nil, notFound(err)
	}
	return ee, nil
}

func validateSeries(seriesNumber int, req RegisterSeriesRequest) error {
	v := &apperr.Validator{}
	v.Check(seriesNumber >= 1, "seriesNumber", "too_small", "series number must be at least 1")
	v.Check(req.Weight != nil, "weight", "required", "weight is required")
	if req.Weight != nil {
		v.Check(*req.Weight >= 0, "weight", "too_small", "weight must not be negative")
		v.Check(*req.Weight <= maxSeriesWeight, "weight", "too_big", "weight is too big")
	}
	v.Check(req.Reps != nil, "reps", "required", "reps is required")
	v.Check(req.Reps == nil || *req.Reps >= 0, "reps", "too_small", "reps must not be negative")
	v.Check(req.RestTime == nil || *req.RestTime >= 0, "restTime", "too_small", "rest time must not be negative")
	v.Check(req.Difficulty == nil || (*req.Difficulty >= 1 && *req.Difficulty <= 5), "difficulty", "out_of_range",
		"difficulty must be between 1 and 5")
	return v.Err()
}

func (s *Service) RegisterSeries(
	ctx context.Context,
	userID, workoutID, exerciseExecutionID string,
	seriesNumber int,
	req RegisterSeriesRequest,
) (_ *SeriesExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.registerSeries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateSeries(seriesNumber, req); err != nil {
		return nil, err
	}

	series, created, err := s.repo.RegisterSeries(ctx, userID, workoutID, SeriesExecution{
		ID:                  uuid.NewString(),
		ExerciseExecutionID: exerciseExecutionID,
		SeriesNumber:        seriesNumber,
		Weight:              *req.Weight,
		Reps:                *req.Reps,
		RestTime:            req.RestTime,
		Difficulty:          req.Difficulty,
		Notes:               req.Notes,
		CreatedAt:           s.clock.Now(),
	})
	if err != nil {
		return nil, notFound(err)
	}

	span.SetAttributes(attribute.Bool("series.created", created))
	if created {
		s.metricsManager.CounterSeriesRegistered.Inc()
	}
	return series, nil
}

func (s *Service) CompleteExercise(
	ctx context.Context,
	userID, workoutID, exerciseExecutionID string,
) (_ *ExerciseExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.completeExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ee, err := s.repo.CompleteExercise(ctx, userID, workoutID, exerciseExecutionID)
	if err != nil {
		return nil, notFound(err)
	}
	return ee, nil
}

func (s *Service) FinishWorkout(
	ctx context.Context,
	userID, workoutID string,
	req FinishWorkoutRequest,
) (_ *WorkoutExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	notes := ""
	if req.Notes != nil {
		notes = strings.TrimSpace(*req.Notes)
	}

	workout, err := s.repo.Finish(ctx, userID, workoutID, notes, s.clock.Now())
	if err != nil {
		return nil, notFound(err)
	}

	s.metricsManager.CounterWorkoutsFinished.Inc()
	return workout, nil
}

func (s *Service) GetWorkout(ctx context.Context, userID, workoutID string) (_ *WorkoutExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workout, err := s.repo.Get(ctx, userID, workoutID)
	if err != nil {
		return nil, notFound(err)
	}
	return workout, nil
}

func (s *Service) ListWorkouts(ctx context.Context, userID string) (_ []WorkoutExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.FindWorkouts(ctx, Filter{UserID: userID, Order: DateDesc})
}

// DeleteWorkout deletes regardless of status.
func (s *Service) DeleteWorkout(ctx context.Context, userID, workoutID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, userID, workoutID, false); err != nil {
		return notFound(err)
	}
	return nil
}
