package history

import (
	"context"
	"net/http"

	"github.com/2beens/gymtracker/internal/apperr"
	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=history_test

type historyService interface {
	History(ctx context.Context, userID string, q Query) (_ *Page, err error)
	Details(ctx context.Context, userID, workoutID string) (_ *WorkoutDetails, err error)
	Stats(ctx context.Context, userID string, period Period, startDate, endDate string) (_ *Overview, err error)
	WeeklyPattern(ctx context.Context, userID, startDate, endDate string) (_ []WeekdayCount, err error)
	MuscleGroups(ctx context.Context, userID, startDate, endDate string) (_ []MuscleGroupCount, err error)
	Delete(ctx context.Context, userID, workoutID string) (err error)
	Duplicate(ctx context.Context, userID, workoutID string) (_ *DuplicateResponse, err error)
}

type Handler struct {
	service historyService
}

func NewHandler(service historyService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	sub := r.PathPrefix("/history").Subrouter()
	sub.HandleFunc("", h.HandleList).Methods("GET", "OPTIONS").Name("history")
	// stats routes go before /{id}
	sub.HandleFunc("/stats/overview", h.HandleStats).Methods("GET", "OPTIONS").Name("history-stats")
	sub.HandleFunc("/stats/weekly-pattern", h.HandleWeeklyPattern).Methods("GET", "OPTIONS").Name("history-weekly-pattern")
	sub.HandleFunc("/stats/muscle-groups", h.HandleMuscleGroups).Methods("GET", "OPTIONS").Name("history-muscle-groups")
	sub.HandleFunc("/{id}", h.HandleDetails).Methods("GET", "OPTIONS").Name("history-details")
	sub.HandleFunc("/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("history-delete")
	sub.HandleFunc("/{id}/duplicate", h.HandleDuplicate).Methods("GET", "OPTIONS").Name("history-duplicate")
}

func userOrUnauthorized(w http.ResponseWriter, ctx context.Context) (string, bool) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		apperr.WriteHTTP(w, apperr.NewUnauthorized("missing session"))
		return "", false
	}
	return identity.UserID, true
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.list")
	defer span.End()

	userID, ok := userOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	params := r.URL.Query()
	page, err := h.service.History(ctx, userID, Query{
		Page:        params.Get("page"),
		Limit:       params.Get("limit"),
		Status:      params.Get("status"),
		StartDate:   params.Get("startDate"),
		EndDate:     params.Get("endDate"),
		MuscleGroup: params.Get("muscleGroup"),
		Search:      params.Get("search"),
	})
	if err != nil {
		apperr.Handle(w, "get workout history", err)
		return
	}

	pkg.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.details")
	defer span.End()

	userID, ok := userOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	details, err := h.service.Details(ctx, userID, mux.Vars(r)["id"])
	if err != nil {
		apperr.Handle(w, "get workout details", err)
		return
	}

	pkg.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.stats")
	defer span.End()

	userID, ok := userOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	params := r.URL.Query()
	period, err := ParsePeriod(params.Get("period"))
	if err != nil {
		apperr.Handle(w, "parse period", err)
		return
	}

	overview, err := h.service.Stats(ctx, userID, period, params.Get("startDate"), params.Get("endDate"))
	if err != nil {
		apperr.Handle(w, "get history stats", err)
		return
	}

	pkg.WriteJSON(w, overview, http.StatusOK)
}

func (h *Handler) HandleWeeklyPattern(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.weeklyPattern")
	defer span.End()

	userID, ok := userOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	params := r.URL.Query()
	pattern, err := h.service.WeeklyPattern(ctx, userID, params.Get("startDate"), params.Get("endDate"))
	if err != nil {
		apperr.Handle(w, "get weekly pattern", err)
		return
	}

	pkg.WriteJSON(w, pattern, http.StatusOK)
}

func (h *Handler) HandleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.muscleGroups")
	defer span.End()

	userID, ok := userOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	params := r.URL.Query()
	groups, err := h.service.MuscleGroups(ctx, userID, params.Get("startDate"), params.Get("endDate"))
	if err != nil {
		apperr.Handle(w, "get muscle group stats", err)
		return
	}

	pkg.WriteJSON(w, groups, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.delete")
	defer span.End()

	userID, ok := userOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, userID, mux.Vars(r)["id"]); err != nil {
		apperr.Handle(w, "delete workout", err)
		return
	}

	pkg.WriteJSON(w, map[string]string{"message": "workout deleted"}, http.StatusOK)
}

func (h *Handler) HandleDuplicate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.duplicate")
	defer span.End()

	userID, ok := userOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	resp, err := h.service.Duplicate(ctx, userID, mux.Vars(r)["id"])
	if err != nil {
		apperr.Handle(w, "duplicate workout", err)
		return
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}
