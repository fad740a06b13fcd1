package reports

import (
	"context"
	"net/http"
	"net/url"

	"github.com/2beens/gymtracker/internal/apperr"
	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=reports_test

type reportsService interface {
	Overview(ctx context.Context, userID string, r Range) (_ *Overview, err error)
	ExerciseProgress(ctx context.Context, userID, exerciseID string, r Range) (_ []ExerciseProgress, err error)
	Frequency(ctx context.Context, userID string, period FrequencyPeriod, r Range) (_ *Frequency, err error)
	MuscleGroups(ctx context.Context, userID string, r Range) (_ *MuscleGroups, err error)
	Volume(ctx context.Context, userID, exerciseID string, r Range) (_ *Volume, err error)
	PersonalRecords(ctx context.Context, userID, exerciseID string, recordType RecordType) (_ []PersonalRecord, err error)
	Duration(ctx context.Context, userID string, r Range) (_ *Duration, err error)
	Consistency(ctx context.Context, userID string, r Range) (_ *Consistency, err error)
	Evolution(ctx context.Context, userID, exerciseID string, mode SeriesMode, r Range) (_ *Evolution, err error)
	CompareExercises(ctx context.Context, userID string, exerciseIDs []string, metric RecordType, r Range) (_ *Comparison, err error)
	StrengthAnalysis(ctx context.Context, userID, exerciseID string, r Range) (_ *Strength, err error)
	CompleteReport(ctx context.Context, userID string, format Format, r Range) (_ any, err error)
}

type Handler struct {
	service reportsService
}

func NewHandler(service reportsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	sub := r.PathPrefix("/reports").Subrouter()
	sub.HandleFunc("/overview", h.HandleOverview).Methods("GET", "OPTIONS").Name("reports-overview")
	sub.HandleFunc("/exercise-progress", h.HandleExerciseProgress).Methods("GET", "OPTIONS").Name("reports-exercise-progress")
	sub.HandleFunc("/frequency", h.HandleFrequency).Methods("GET", "OPTIONS").Name("reports-frequency")
	sub.HandleFunc("/muscle-groups", h.HandleMuscleGroups).Methods("GET", "OPTIONS").Name("reports-muscle-groups")
	sub.HandleFunc("/volume", h.HandleVolume).Methods("GET", "OPTIONS").Name("reports-volume")
	sub.HandleFunc("/personal-records", h.HandlePersonalRecords).Methods("GET", "OPTIONS").Name("reports-personal-records")
	sub.HandleFunc("/duration", h.HandleDuration).Methods("GET", "OPTIONS").Name("reports-duration")
	sub.HandleFunc("/consistency", h.HandleConsistency).Methods("GET", "OPTIONS").Name("reports-consistency")
	sub.HandleFunc("/evolution", h.HandleEvolution).Methods("GET", "OPTIONS").Name("reports-evolution")
	sub.HandleFunc("/compare-exercises", h.HandleCompareExercises).Methods("GET", "OPTIONS").Name("reports-compare-exercises")
	sub.HandleFunc("/strength-analysis", h.HandleStrengthAnalysis).Methods("GET", "OPTIONS").Name("reports-strength-analysis")
	sub.HandleFunc("/complete", h.HandleComplete).Methods("GET", "OPTIONS").Name("reports-complete")
}

func rangeOf(params url.Values) Range {
	return Range{
		StartDate: params.Get("startDate"),
		EndDate:   params.Get("endDate"),
	}
}

// respond writes the report or the error of the named operation.
func respond[T any](w http.ResponseWriter, op string, report T, err error) {
	if err != nil {
		apperr.Handle(w, op, err)
		return
	}
	pkg.WriteJSON(w, report, http.StatusOK)
}

// start opens the handler span and resolves the acting user.
func start(w http.ResponseWriter, r *http.Request, name string) (context.Context, func(), string, bool) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), name)
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		apperr.WriteHTTP(w, apperr.NewUnauthorized("missing session"))
		span.End()
		return nil, nil, "", false
	}
	return ctx, func() { span.End() }, identity.UserID, true
}

func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, end, userID, ok := start(w, r, "handler.reports.overview")
	if !ok {
		return
	}
	defer end()

	report, err := h.service.Overview(ctx, userID, rangeOf(r.URL.Query()))
	respond(w, "get overview report", report, err)
}

func (h *Handler) HandleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	ctx, end, userID, ok := start(w, r, "handler.reports.exerciseProgress")
	if !ok {
		return
	}
	defer end()

	params := r.URL.Query()
	report, err := h.service.ExerciseProgress(ctx, userID, params.Get("exerciseId"), rangeOf(params))
	respond(w, "get exercise progress report", report, err)
}

func (h *Handler) HandleFrequency(w http.ResponseWriter, r *http.Request) {
	ctx, end, userID, ok := start(w, r, "handler.reports.frequency")
	if !ok {
		return
	}
	defer end()

	params := r.URL.Query()
	period, err := ParseFrequencyPeriod(params.Get("period"))
	if err != nil {
		apperr.Handle(w, "parse frequency period", err)
		return
	}

	report, err := h.service.Frequency(ctx, userID, period, rangeOf(params))
	respond(w, "get frequency report", report, err)
}

func (h *Handler) HandleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, end, userID, ok := start(w, r, "handler.reports.muscleGroups")
	if !ok {
		return
	}
	defer end()

	report, err := h.service.MuscleGroups(ctx, userID, rangeOf(r.URL.Query()))
	respond(w, "get muscle groups report", report, err)
}

func (h *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, end, userID, ok := start(w, r, "handler.reports.volume")
	if !ok {
		return
	}
	defer end()

	params := r.URL.Query()
	report, err := h.service.Volume(ctx, userID, params.Get("exerciseId"), rangeOf(params))
	respond(w, "get volume report", report, err)
}

func (h *Handler) HandlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, end, userID, ok := start(w, r, "handler.reports.personalRecords")
	if !ok {
		return
	}
	defer end()

	params := r.URL.Query()
	recordType, err := ParseRecordType(params.Get("type"))
	if err != nil {
		apperr.Handle(w, "parse record type", err)
		return
	}

	report, err := h.service.PersonalRecords(ctx, userID, params.Get("exerciseId"), recordType)
	respond(w, "get personal records", report, err)
}

func (h *Handler) HandleDuration(w http.ResponseWriter, r *http.Request) {
	ctx, end, userID, ok := start(w, r, "handler.reports.duration")
	if !ok {
		return
	}
	defer end()

	report, err := h.service.Duration(ctx, userID, rangeOf(r.URL.Query()))
	respond(w, "get duration report", report, err)
}

func (h *Handler) HandleConsistency(w http.ResponseWriter, r *http.Request) {
	ctx, end, userID, ok := start(w, r, "handler.reports.consistency")
	if !ok {
		return
	}
	defer end()

	report, err := h.service.Consistency(ctx, userID, rangeOf(r.URL.Query()))
	respond(w, "get consistency report", report, err)
}

func (h *Handler) HandleEvolution(w http.ResponseWriter, r *http.Request) {
	ctx, end, userID, ok := start(w, r, "handler.reports.evolution")
	if !ok {
		return
	}
	defer end()

	params := r.URL.Query()
	mode, err := ParseSeriesMode(params.Get("seriesType"))
	if err != nil {
		apperr.Handle(w, "parse series type", err)
		return
	}

	report, err := h.service.Evolution(ctx, userID, params.Get("exerciseId"), mode, rangeOf(params))
	respond(w, "get evolution report", report, err)
}

func (h *Handler) HandleCompareExercises(w http.ResponseWriter, r *http.Request) {
	ctx, end, userID, ok := start(w, r, "handler.reports.compareExercises")
	if !ok {
		return
	}
	defer end()

	params := r.URL.Query()
	ids, err := ParseExerciseIDs(params.Get("exerciseIds"))
	if err != nil {
		apperr.Handle(w, "parse exercise ids", err)
		return
	}
	metric, err := ParseRecordType(params.Get("metric"))
	if err != nil {
		apperr.Handle(w, "parse metric", err)
		return
	}

	report, err := h.service.CompareExercises(ctx, userID, ids, metric, rangeOf(params))
	respond(w, "compare exercises", report, err)
}

func (h *Handler) HandleStrengthAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, end, userID, ok := start(w, r, "handler.reports.strengthAnalysis")
	if !ok {
		return
	}
	defer end()

	params := r.URL.Query()
	report, err := h.service.StrengthAnalysis(ctx, userID, params.Get("exerciseId"), rangeOf(params))
	respond(w, "get strength analysis", report, err)
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, end, userID, ok := start(w, r, "handler.reports.complete")
	if !ok {
		return
	}
	defer end()

	params := r.URL.Query()
	format, err := ParseFormat(params.Get("format"))
	if err != nil {
		apperr.Handle(w, "parse report format", err)
		return
	}

	report, err := h.service.CompleteReport(ctx, userID, format, rangeOf(params))
	respond(w, "get complete report", report, err)
}
