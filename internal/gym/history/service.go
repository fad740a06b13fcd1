package history

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/gymtracker/internal/apperr"
	"github.com/2beens/gymtracker/internal/gym/workouts"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/google/uuid"
)

type Period string

const (
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodYear   Period = "year"
	PeriodAll    Period = "all"
	PeriodCustom Period = "custom"
)

var periodWindows = map[Period]time.Duration{
	PeriodWeek:  7 * 24 * time.Hour,
	PeriodMonth: 30 * 24 * time.Hour,
	PeriodYear:  365 * 24 * time.Hour,
}

func ParsePeriod(raw string) (Period, error) {
	switch p := Period(raw); p {
	case "":
		return PeriodMonth, nil
	case PeriodWeek, PeriodMonth, PeriodYear, PeriodAll, PeriodCustom:
		return p, nil
	}
	return "", apperr.NewInvalidInput(fmt.Sprintf("invalid period %q, expected week, month, year, all or custom", raw))
}

// Query carries the raw history query values.
type Query struct {
	Page        string
	Limit       string
	Status      string
	StartDate   string
	EndDate     string
	MuscleGroup string
	Search      string
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

func NewPagination(page, limit, total int) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		HasNext:    page*limit < total,
		HasPrev:    page > 1,
	}
}

type WorkoutWithStats struct {
	workouts.WorkoutExecution
	Stats WorkoutStats `json:"stats"`
}

type Page struct {
	Data       []WorkoutWithStats `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

type WorkoutDetails struct {
	workouts.WorkoutExecution
	Stats DetailStats `json:"stats"`
}

type DuplicateResponse struct {
	ID         string                     `json:"id"`
	Message    string                     `json:"message"`
	NewWorkout *workouts.WorkoutExecution `json:"newWorkout"`
}

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=history_test

type historyRepo interface {
	FindWorkouts(ctx context.Context, f workouts.Filter) (_ []workouts.WorkoutExecution, err error)
	CountWorkouts(ctx context.Context, f workouts.Filter) (_ int, err error)
	Get(ctx context.Context, userID, id string) (_ *workouts.WorkoutExecution, err error)
	Delete(ctx context.Context, userID, workoutID string, keepInProgress bool) (err error)
	Duplicate(ctx context.Context, userID, sourceID string, build workouts.WorkoutBuilder) (_ *workouts.WorkoutExecution, err error)
}

type Service struct {
	repo  historyRepo
	clock *workouts.Clock
}

func NewService(repo historyRepo, clock *workouts.Clock) *Service {
	return &Service{
		repo:  repo,
		clock: clock,
	}
}

func (s *Service) History(ctx context.Context, userID string, q Query) (_ *Page, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	b := NewFilterBuilder(userID).
		Status(q.Status).
		DateRange(q.StartDate, q.EndDate).
		MuscleGroup(q.MuscleGroup).
		Search(q.Search)
	page, limit := b.Page(q.Page, q.Limit)
	filter, err := b.Build()
	if err != nil {
		return nil, err
	}

	found, err := s.repo.FindWorkouts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find workouts: %w", err)
	}
	total, err := s.repo.CountWorkouts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count workouts: %w", err)
	}

	data := make([]WorkoutWithStats, 0, len(found))
	for _, w := range found {
		data = append(data, WorkoutWithStats{WorkoutExecution: w, Stats: StatsOf(w)})
	}

	return &Page{
		Data:       data,
		Pagination: NewPagination(page, limit, total),
	}, nil
}

func (s *Service) Details(ctx context.Context, userID, workoutID string) (_ *WorkoutDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.details")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := s.repo.Get(ctx, userID, workoutID)
	if err != nil {
		if errors.Is(err, workouts.ErrWorkoutNotFound) {
			return nil, apperr.Wrap(apperr.KindNotFound, "workout not found", err)
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}

	return &WorkoutDetails{WorkoutExecution: *w, Stats: DetailStatsOf(*w)}, nil
}

// Stats summarizes the workouts of a rolling window (week, month, year), or of
// an explicit range when period is all or custom.
func (s *Service) Stats(ctx context.Context, userID string, period Period, startDate, endDate string) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	b := NewFilterBuilder(userID)
	if window, ok := periodWindows[period]; ok {
		b.Since(workouts.DateOf(s.clock.Now().Add(-window), s.clock.Location()))
	} else {
		b.BoundedDateRange(startDate, endDate)
	}
	filter, err := b.Build()
	if err != nil {
		return nil, err
	}

	found, err := s.repo.FindWorkouts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find workouts: %w", err)
	}

	overview := BuildOverview(period, found)
	return &overview, nil
}

func (s *Service) completedInRange(ctx context.Context, userID, startDate, endDate string) ([]workouts.WorkoutExecution, error) {
	filter, err := NewFilterBuilder(userID).
		Statuses(workouts.StatusCompleted).
		BoundedDateRange(startDate, endDate).
		Build()
	if err != nil {
		return nil, err
	}

	found, err := s.repo.FindWorkouts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find workouts: %w", err)
	}
	return found, nil
}

func (s *Service) WeeklyPattern(ctx context.Context, userID, startDate, endDate string) (_ []WeekdayCount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.weeklyPattern")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	found, err := s.completedInRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return WeeklyPattern(found), nil
}

func (s *Service) MuscleGroups(ctx context.Context, userID, startDate, endDate string) (_ []MuscleGroupCount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.muscleGroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	found, err := s.completedInRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return MuscleGroupCounts(found), nil
}

// Delete refuses to remove a workout that is still in progress.
func (s *Service) Delete(ctx context.Context, userID, workoutID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = s.repo.Delete(ctx, userID, workoutID, true)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, workouts.ErrWorkoutNotFound):
		return apperr.Wrap(apperr.KindNotFound, "workout not found", err)
	case errors.Is(err, workouts.ErrWorkoutInProgress):
		return apperr.Wrap(apperr.KindStateConflict, "cannot delete a workout in progress", err)
	}
	return fmt.Errorf("delete workout: %w", err)
}

// Duplicate starts a workout for today with the muscle groups of the source workout.
func (s *Service) Duplicate(ctx context.Context, userID, workoutID string) (_ *DuplicateResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.duplicate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := s.clock.Today()
	now := s.clock.Now()
	created, err := s.repo.Duplicate(ctx, userID, workoutID, func(source workouts.WorkoutExecution) workouts.WorkoutExecution {
		notes := "Baseado no treino de " + source.Date.Format("02/01/2006")
		return workouts.WorkoutExecution{
			ID:           uuid.NewString(),
			UserID:       userID,
			Date:         today,
			DayOfWeek:    workouts.WeekdayLabel(today.Weekday()),
			MuscleGroups: source.MuscleGroups,
			StartTime:    now,
			Status:       workouts.StatusInProgress,
			Notes:        &notes,
			CreatedAt:    now,
		}
	})
	switch {
	case errors.Is(err, workouts.ErrWorkoutNotFound):
		return nil, apperr.Wrap(apperr.KindNotFound, "workout not found", err)
	case errors.Is(err, workouts.ErrWorkoutExists):
		return nil, apperr.Wrap(apperr.KindConflict, "a workout already exists for today", err)
	case err != nil:
		return nil, fmt.Errorf("duplicate workout: %w", err)
	}

	return &DuplicateResponse{
		ID:         created.ID,
		Message:    "workout duplicated",
		NewWorkout: created,
	}, nil
}
