package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/apperr"
	"github.com/2beens/gymtracker/internal/gym/history"
	"github.com/2beens/gymtracker/internal/gym/workouts"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"golang.org/x/sync/errgroup"
)

type Format string

const (
	FormatSummary Format = "summary"
	FormatJSON    Format = "json"
)

const summaryRecordsLimit = 5

func ParseFrequencyPeriod(raw string) (FrequencyPeriod, error) {
	switch p := FrequencyPeriod(raw); p {
	case "":
		return FrequencyMonth, nil
	case FrequencyWeek, FrequencyMonth, FrequencyYear:
		return p, nil
	}
	return "", apperr.NewInvalidInput(fmt.Sprintf("invalid period %q, expected week, month or year", raw))
}

func ParseRecordType(raw string) (RecordType, error) {
	switch t := RecordType(raw); t {
	case "":
		return RecordWeight, nil
	case RecordWeight, RecordReps, RecordVolume:
		return t, nil
	}
	return "", apperr.NewInvalidInput(fmt.Sprintf("invalid type %q, expected weight, reps or volume", raw))
}

func ParseSeriesMode(raw string) (SeriesMode, error) {
	switch m := SeriesMode(raw); m {
	case "":
		return SeriesMax, nil
	case SeriesMax, SeriesAverage, SeriesAll:
		return m, nil
	}
	return "", apperr.NewInvalidInput(fmt.Sprintf("invalid seriesType %q, expected max, average or all", raw))
}

func ParseFormat(raw string) (Format, error) {
	switch f := Format(raw); f {
	case "":
		return FormatSummary, nil
	case FormatSummary, FormatJSON:
		return f, nil
	}
	return "", apperr.NewInvalidInput(fmt.Sprintf("invalid format %q, expected summary or json", raw))
}

// ParseExerciseIDs splits a comma separated id list, skipping blanks.
func ParseExerciseIDs(raw string) ([]string, error) {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, apperr.NewInvalidInput("exerciseIds is required")
	}
	return ids, nil
}

type CompleteSummary struct {
	TotalWorkouts   int     `json:"totalWorkouts"`
	TotalVolume     float64 `json:"totalVolume"`
	AverageDuration float64 `json:"averageDuration"`
	MostActiveDay   string  `json:"mostActiveDay"`
	TopMuscleGroup  string  `json:"topMuscleGroup"`
	CurrentStreak   int     `json:"currentStreak"`
}

type Highlights struct {
	PersonalRecords  []PersonalRecord `json:"personalRecords"`
	VolumeTrend      Trend            `json:"volumeTrend"`
	ConsistencyScore float64          `json:"consistencyScore"`
}

type SummaryReport struct {
	Period     PeriodLabel     `json:"period"`
	Summary    CompleteSummary `json:"summary"`
	Highlights Highlights      `json:"highlights"`
}

type FullReport struct {
	Overview        Overview           `json:"overview"`
	Progress        []ExerciseProgress `json:"exerciseProgress"`
	Frequency       Frequency          `json:"frequency"`
	MuscleGroups    MuscleGroups       `json:"muscleGroups"`
	Volume          Volume             `json:"volume"`
	PersonalRecords []PersonalRecord   `json:"records"`
	Duration        Duration           `json:"duration"`
	Consistency     Consistency        `json:"consistency"`
	GeneratedAt     time.Time          `json:"generatedAt"`
}

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=reports_test

type workoutsFinder interface {
	FindWorkouts(ctx context.Context, f workouts.Filter) (_ []workouts.WorkoutExecution, err error)
}

type Service struct {
	repo           workoutsFinder
	clock          *workouts.Clock
	metricsManager *metrics.Manager
}

func NewService(
	repo workoutsFinder,
	clock *workouts.Clock,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		clock:          clock,
		metricsManager: metricsManager,
	}
}

// completed loads the completed workouts of the range, oldest first.
func (s *Service) completed(ctx context.Context, userID, exerciseID string, r Range) ([]workouts.WorkoutExecution, error) {
	filter, err := history.NewFilterBuilder(userID).
		Statuses(workouts.StatusCompleted).
		DateRange(r.StartDate, r.EndDate).
		ExerciseID(exerciseID).
		Order(workouts.DateAsc).
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

func (s *Service) generated(report string) {
	s.metricsManager.CounterReportsGenerated.WithLabelValues(report).Inc()
}

func (s *Service) Overview(ctx context.Context, userID string, r Range) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	found, err := s.completed(ctx, userID, "", r)
	if err != nil {
		return nil, err
	}

	s.generated("overview")
	overview := BuildOverview(r, found)
	return &overview, nil
}

func (s *Service) ExerciseProgress(ctx context.Context, userID, exerciseID string, r Range) (_ []ExerciseProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.exerciseProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	found, err := s.completed(ctx, userID, exerciseID, r)
	if err != nil {
		return nil, err
	}

	s.generated("exercise-progress")
	return BuildProgress(found), nil
}

func (s *Service) Frequency(ctx context.Context, userID string, period FrequencyPeriod, r Range) (_ *Frequency, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.frequency")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	found, err := s.completed(ctx, userID, "", r)
	if err != nil {
		return nil, err
	}

	s.generated("frequency")
	frequency := BuildFrequency(period, found)
	return &frequency, nil
}

func (s *Service) MuscleGroups(ctx context.Context, userID string, r Range) (_ *MuscleGroups, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.muscleGroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	found, err := s.completed(ctx, userID, "", r)
	if err != nil {
		return nil, err
	}

	s.generated("muscle-groups")
	groups := BuildMuscleGroups(found)
	return &groups, nil
}

func (s *Service) Volume(ctx context.Context, userID, exerciseID string, r Range) (_ *Volume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.volume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	found, err := s.completed(ctx, userID, exerciseID, r)
	if err != nil {
		return nil, err
	}

	s.generated("volume")
	volume := BuildVolume(found)
	return &volume, nil
}

// PersonalRecords looks at the whole history of the user.
func (s *Service) PersonalRecords(ctx context.Context, userID, exerciseID string, recordType RecordType) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.personalRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	found, err := s.completed(ctx, userID, exerciseID, Range{})
	if err != nil {
		return nil, err
	}

	s.generated("personal-records")
	return BuildPersonalRecords(found, recordType), nil
}

func (s *Service) Duration(ctx context.Context, userID string, r Range) (_ *Duration, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.duration")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	found, err := s.completed(ctx, userID, "", r)
	if err != nil {
		return nil, err
	}

	s.generated("duration")
	duration := BuildDuration(found)
	return &duration, nil
}

func (s *Service) Consistency(ctx context.Context, userID string, r Range) (_ *Consistency, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.consistency")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	found, err := s.completed(ctx, userID, "", r)
	if err != nil {
		return nil, err
	}

	s.generated("consistency")
	consistency := BuildConsistency(found)
	return &consistency, nil
}

func (s *Service) evolution(ctx context.Context, userID, exerciseID string, mode SeriesMode, r Range) (*Evolution, error) {
	if exerciseID == "" {
		return nil, apperr.NewInvalidInput("exerciseId is required")
	}

	found, err := s.completed(ctx, userID, exerciseID, r)
	if err != nil {
		return nil, err
	}

	evolution := BuildEvolution(exerciseID, r, mode, found)
	return &evolution, nil
}

func (s *Service) Evolution(ctx context.Context, userID, exerciseID string, mode SeriesMode, r Range) (_ *Evolution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.evolution")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	evolution, err := s.evolution(ctx, userID, exerciseID, mode, r)
	if err != nil {
		return nil, err
	}

	s.generated("evolution")
	return evolution, nil
}

// CompareExercises loads the max evolution of every exercise concurrently.
func (s *Service) CompareExercises(ctx context.Context, userID string, exerciseIDs []string, metric RecordType, r Range) (_ *Comparison, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.compareExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(exerciseIDs) == 0 {
		return nil, apperr.NewInvalidInput("exerciseIds is required")
	}

	entries := make([]ExerciseComparison, len(exerciseIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range exerciseIDs {
		g.Go(func() error {
			evolution, err := s.evolution(gctx, userID, id, SeriesMax, r)
			if err != nil {
				return fmt.Errorf("evolution of %s: %w", id, err)
			}
			entries[i] = compareEntry(id, metric, *evolution)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.generated("compare-exercises")
	comparison := BuildComparison(metric, r, entries)
	return &comparison, nil
}

func (s *Service) StrengthAnalysis(ctx context.Context, userID, exerciseID string, r Range) (_ *Strength, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.strengthAnalysis")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	found, err := s.completed(ctx, userID, exerciseID, r)
	if err != nil {
		return nil, err
	}

	s.generated("strength-analysis")
	strength := BuildStrength(found)
	return &strength, nil
}

// CompleteReport fans out every report read. The first failing read cancels the rest.
func (s *Service) CompleteReport(ctx context.Context, userID string, format Format, r Range) (_ any, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		report FullReport
		g, gctx = errgroup.WithContext(ctx)
	)
	load := func(exerciseID string, r Range, build func([]workouts.WorkoutExecution)) {
		g.Go(func() error {
			found, err := s.completed(gctx, userID, exerciseID, r)
			if err != nil {
				return err
			}
			build(found)
			return nil
		})
	}

	load("", r, func(ws []workouts.WorkoutExecution) { report.Overview = BuildOverview(r, ws) })
	load("", r, func(ws []workouts.WorkoutExecution) { report.Progress = BuildProgress(ws) })
	load("", r, func(ws []workouts.WorkoutExecution) { report.Frequency = BuildFrequency(FrequencyMonth, ws) })
	load("", r, func(ws []workouts.WorkoutExecution) { report.MuscleGroups = BuildMuscleGroups(ws) })
	load("", r, func(ws []workouts.WorkoutExecution) { report.Volume = BuildVolume(ws) })
	load("", Range{}, func(ws []workouts.WorkoutExecution) { report.PersonalRecords = BuildPersonalRecords(ws, RecordWeight) })
	load("", r, func(ws []workouts.WorkoutExecution) { report.Duration = BuildDuration(ws) })
	load("", r, func(ws []workouts.WorkoutExecution) { report.Consistency = BuildConsistency(ws) })

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("complete report: %w", err)
	}

	s.generated("complete")
	if format == FormatJSON {
		report.GeneratedAt = s.clock.Now()
		return &report, nil
	}
	return summaryOf(report, s.clock.Today()), nil
}

func summaryOf(report FullReport, today time.Time) *SummaryReport {
	records := report.PersonalRecords
	if len(records) > summaryRecordsLimit {
		records = records[:summaryRecordsLimit]
	}

	return &SummaryReport{
		Period: report.Overview.Period,
		Summary: CompleteSummary{
			TotalWorkouts:   report.Overview.Totals.Workouts,
			TotalVolume:     report.Overview.Totals.Volume,
			AverageDuration: report.Duration.Summary.Average,
			MostActiveDay:   report.Consistency.MostActiveDay.DayOfWeek,
			TopMuscleGroup:  report.MuscleGroups.TopMuscleGroup(),
			CurrentStreak:   CurrentStreak(report.Overview.WorkoutDates, today),
		},
		Highlights: Highlights{
			PersonalRecords:  records,
			VolumeTrend:      report.Volume.Summary.Trend,
			ConsistencyScore: report.Consistency.ConsistencyScore(),
		},
	}
}
