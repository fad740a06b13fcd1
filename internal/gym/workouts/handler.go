package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/2beens/gymtracker/internal/apperr"
	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/gym/exercises"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	StartWorkout(ctx context.Context, userID string, req StartWorkoutRequest) (_ *WorkoutExecution, err error)
	AvailableExercises(ctx context.Context, userID, workoutID string) (_ []exercises.Exercise, err error)
	SelectExercises(ctx context.Context, userID, workoutID string, req SelectExercisesRequest) (_ []ExerciseExecution, err error)
	DefineSeries(ctx context.Context, userID, workoutID, exerciseExecutionID string, req DefineSeriesRequest) (_ *ExerciseExecution, err error)
	RegisterSeries(ctx context.Context, userID, workoutID, exerciseExecutionID string, seriesNumber int, req RegisterSeriesRequest) (_ *SeriesExecution, err error)
	CompleteExercise(ctx context.Context, userID, workoutID, exerciseExecutionID string) (_ *ExerciseExecution, err error)
	FinishWorkout(ctx context.Context, userID, workoutID string, req FinishWorkoutRequest) (_ *WorkoutExecution, err error)
	GetWorkout(ctx context.Context, userID, workoutID string) (_ *WorkoutExecution, err error)
	ListWorkouts(ctx context.Context, userID string) (_ []WorkoutExecution, err error)
	DeleteWorkout(ctx context.Context, userID, workoutID string) (err error)
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	sub := r.PathPrefix("/workout-executions").Subrouter()
	sub.HandleFunc("/start", h.HandleStart).Methods("POST", "OPTIONS").Name("start-workout")
	sub.HandleFunc("", h.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	sub.HandleFunc("/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	sub.HandleFunc("/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	sub.HandleFunc("/{id}/available-exercises", h.HandleAvailableExercises).Methods("GET", "OPTIONS").Name("available-exercises")
	sub.HandleFunc("/{id}/select-exercises", h.HandleSelectExercises).Methods("POST", "OPTIONS").Name("select-exercises")
	sub.HandleFunc("/{id}/exercises/{eeId}/series-count", h.HandleDefineSeries).Methods("PUT", "OPTIONS").Name("define-series")
	sub.HandleFunc("/{id}/exercises/{eeId}/series/{n}", h.HandleRegisterSeries).Methods("POST", "OPTIONS").Name("register-series")
	sub.HandleFunc("/{id}/exercises/{eeId}/complete", h.HandleCompleteExercise).Methods("PUT", "OPTIONS").Name("complete-exercise")
	sub.HandleFunc("/{id}/finish", h.HandleFinish).Methods("POST", "OPTIONS").Name("finish-workout")
}

// DecodeBody decodes a JSON body into v. An empty body is accepted when allowEmpty is set.
func DecodeBody(r *http.Request, v any, allowEmpty bool) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.Wrap(apperr.KindInvalidInput, "invalid request body", err)
	}
	return nil
}

func identityOrUnauthorized(w http.ResponseWriter, ctx context.Context) (auth.Identity, bool) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		apperr.WriteHTTP(w, apperr.NewUnauthorized("missing session"))
	}
	return identity, ok
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.start")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	var req StartWorkoutRequest
	if err := DecodeBody(r, &req, false); err != nil {
		apperr.Handle(w, "decode start workout", err)
		return
	}

	workout, err := h.service.StartWorkout(ctx, identity.UserID, req)
	if err != nil {
		apperr.Handle(w, "start workout", err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (h *Handler) HandleAvailableExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.availableExercises")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	available, err := h.service.AvailableExercises(ctx, identity.UserID, mux.Vars(r)["id"])
	if err != nil {
		apperr.Handle(w, "list available exercises", err)
		return
	}

	pkg.WriteJSON(w, available, http.StatusOK)
}

func (h *Handler) HandleSelectExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.selectExercises")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	var req SelectExercisesRequest
	if err := DecodeBody(r, &req, false); err != nil {
		apperr.Handle(w, "decode select exercises", err)
		return
	}

	executions, err := h.service.SelectExercises(ctx, identity.UserID, mux.Vars(r)["id"], req)
	if err != nil {
		apperr.Handle(w, "select exercises", err)
		return
	}

	pkg.WriteJSON(w, executions, http.StatusCreated)
}

func (h *Handler) HandleDefineSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.defineSeries")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	var req DefineSeriesRequest
	if err := DecodeBody(r, &req, false); err != nil {
		apperr.Handle(w, "decode define series", err)
		return
	}

	vars := mux.Vars(r)
	ee, err := h.service.DefineSeries(ctx, identity.UserID, vars["id"], vars["eeId"], req)
	if err != nil {
		apperr.Handle(w, "define series", err)
		return
	}

	pkg.WriteJSON(w, ee, http.StatusOK)
}

func (h *Handler) HandleRegisterSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.registerSeries")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	seriesNumber, err := strconv.Atoi(vars["n"])
	if err != nil {
		apperr.Handle(w, "parse series number", apperr.Wrap(apperr.KindInvalidInput, "invalid series number", err))
		return
	}

	var req RegisterSeriesRequest
	if err := DecodeBody(r, &req, false); err != nil {
		apperr.Handle(w, "decode register series", err)
		return
	}

	series, err := h.service.RegisterSeries(ctx, identity.UserID, vars["id"], vars["eeId"], seriesNumber, req)
	if err != nil {
		apperr.Handle(w, "register series", err)
		return
	}

	pkg.WriteJSON(w, series, http.StatusOK)
}

func (h *Handler) HandleCompleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.completeExercise")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	ee, err := h.service.CompleteExercise(ctx, identity.UserID, vars["id"], vars["eeId"])
	if err != nil {
		apperr.Handle(w, "complete exercise", err)
		return
	}

	pkg.WriteJSON(w, ee, http.StatusOK)
}

func (h *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.finish")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	var req FinishWorkoutRequest
	if err := DecodeBody(r, &req, true); err != nil {
		apperr.Handle(w, "decode finish workout", err)
		return
	}

	workout, err := h.service.FinishWorkout(ctx, identity.UserID, mux.Vars(r)["id"], req)
	if err != nil {
		apperr.Handle(w, "finish workout", err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	workout, err := h.service.GetWorkout(ctx, identity.UserID, mux.Vars(r)["id"])
	if err != nil {
		apperr.Handle(w, "get workout", err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	list, err := h.service.ListWorkouts(ctx, identity.UserID)
	if err != nil {
		apperr.Handle(w, "list workouts", err)
		return
	}

	pkg.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	if err := h.service.DeleteWorkout(ctx, identity.UserID, mux.Vars(r)["id"]); err != nil {
		apperr.Handle(w, "delete workout", err)
		return
	}

	pkg.WriteJSON(w, map[string]string{"message": "workout deleted"}, http.StatusOK)
}
