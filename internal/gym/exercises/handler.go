package exercises

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/2beens/gymtracker/internal/apperr"
	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesService interface {
	Create(ctx context.Context, userID string, req CreateExerciseRequest) (_ *Exercise, err error)
	Get(ctx context.Context, userID, id string) (_ *Exercise, err error)
	List(ctx context.Context, params ListParams) (_ []Exercise, err error)
}

type Handler struct {
	service exercisesService
}

func NewHandler(service exercisesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises", h.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
}

// ParseMuscleGroups splits a comma separated query value, dropping blanks.
func ParseMuscleGroups(raw string) []string {
	var groups []string
	for _, g := range strings.Split(raw, ",") {
		if g = strings.TrimSpace(g); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		apperr.WriteHTTP(w, apperr.NewUnauthorized("missing session"))
		return
	}

	var req CreateExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Handle(w, "decode new exercise", apperr.Wrap(apperr.KindInvalidInput, "invalid request body", err))
		return
	}

	exercise, err := h.service.Create(ctx, identity.UserID, req)
	if err != nil {
		apperr.Handle(w, "create exercise", err)
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		apperr.WriteHTTP(w, apperr.NewUnauthorized("missing session"))
		return
	}

	exercises, err := h.service.List(ctx, ListParams{
		UserID:       identity.UserID,
		MuscleGroups: ParseMuscleGroups(r.URL.Query().Get("muscleGroups")),
	})
	if err != nil {
		apperr.Handle(w, "list exercises", err)
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		apperr.WriteHTTP(w, apperr.NewUnauthorized("missing session"))
		return
	}

	exercise, err := h.service.Get(ctx, identity.UserID, mux.Vars(r)["id"])
	if err != nil {
		apperr.Handle(w, "get exercise", err)
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}
