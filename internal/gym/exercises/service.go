package exercises

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/apperr"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/google/uuid"
)

const minNameLength = 3

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error)
	Get(ctx context.Context, userID, id string) (_ *Exercise, err error)
	List(ctx context.Context, params ListParams) (_ []Exercise, err error)
}

type Service struct {
	repo    exercisesRepo
	nowFunc func() time.Time
}

func NewService(repo exercisesRepo) *Service {
	return &Service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

func validateCreate(req CreateExerciseRequest) error {
	v := &apperr.Validator{}
	v.Check(len([]rune(req.Name)) >= minNameLength, "name", "min_length",
		fmt.Sprintf("name must have at least %d characters", minNameLength))
	v.Check(len(req.MuscleGroups) > 0, "muscleGroups", "required", "select at least one muscle group")
	for i, group := range req.MuscleGroups {
		v.Check(IsMuscleGroup(group), fmt.Sprintf("muscleGroups[%d]", i), "invalid_enum_value",
			fmt.Sprintf("invalid muscle group %q, expected one of: %s", group, strings.Join(MuscleGroups, ", ")))
	}
	return v.Err()
}

func (s *Service) Create(ctx context.Context, userID string, req CreateExerciseRequest) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateCreate(req); err != nil {
		return nil, err
	}

	exercise, err := s.repo.Add(ctx, Exercise{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		MuscleGroups: req.MuscleGroups,
		Equipment:    req.Equipment,
		Instructions: req.Instructions,
		CreatedAt:    s.nowFunc(),
	})
	if err != nil {
		if errors.Is(err, ErrExerciseExists) {
			return nil, apperr.Wrap(apperr.KindConflict, "exercise already exists", err)
		}
		return nil, fmt.Errorf("add exercise: %w", err)
	}

	return exercise, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			return nil, apperr.NewNotFound("exercise not found")
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return exercise, nil
}

func (s *Service) List(ctx context.Context, params ListParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.List(ctx, params)
}
