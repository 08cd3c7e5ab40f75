package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/cache"
	"github.com/2beens/gymlog/internal/caldate"
	"github.com/2beens/gymlog/internal/gymlog/catalog"
	"github.com/2beens/gymlog/internal/gymlog/workouts"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=stats_test

const (
	summaryMonth     = "month"
	summaryAnalytics = "analytics"
	aggregateHistory = "exercise_history"
)

type daysLister interface {
	ListDays(ctx context.Context, ownerID int64, filter workouts.DayFilter) ([]workouts.DayWorkout, error)
}

type exerciseGetter interface {
	GetExercise(ctx context.Context, ownerID, id int64) (*catalog.Exercise, error)
}

type summaryCache interface {
	GetOwner(ctx context.Context, ownerID int64, key string) ([]byte, error)
	GenerationOwner(ctx context.Context, ownerID int64, tags ...cache.Tag) (cache.Generation, error)
	SetOwnerIfCurrent(ctx context.Context, ownerID int64, key string, value []byte, ttl time.Duration, gen cache.Generation) (bool, error)
}

type AnalyzerParams struct {
	Days           daysLister
	Exercises      exerciseGetter
	SummaryCache   summaryCache
	SummaryTTL     time.Duration
	MetricsManager *metrics.Manager
}

// Analyzer computes month, analytics and exercise history views from stored days.
// Month and analytics results are cached per owner until a day save invalidates them.
type Analyzer struct {
	days           daysLister
	exercises      exerciseGetter
	summaryCache   summaryCache
	summaryTTL     time.Duration
	metricsManager *metrics.Manager
}

func NewAnalyzer(params AnalyzerParams) *Analyzer {
	return &Analyzer{
		days:           params.Days,
		exercises:      params.Exercises,
		summaryCache:   params.SummaryCache,
		summaryTTL:     params.SummaryTTL,
		metricsManager: params.MetricsManager,
	}
}

func MonthCacheKey(year int, month time.Month) string {
	return fmt.Sprintf("month/%04d-%02d", year, int(month))
}

func AnalyticsCacheKey() string {
	return "analytics"
}

func (a *Analyzer) Month(ctx context.Context, ownerID int64, year int, month time.Month) (_ *MonthResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.month")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("year", year), attribute.Int("month", int(month)))

	key := MonthCacheKey(year, month)
	var resp MonthResponse
	if a.lookup(ctx, ownerID, summaryMonth, key, &resp) {
		return &resp, nil
	}
	gen, genOK := a.generation(ctx, ownerID, cache.MonthTag(year, month))

	from := caldate.FirstOfMonth(year, month)
	to := caldate.LastOfMonth(year, month)
	days, err := a.days.ListDays(ctx, ownerID, workouts.DayFilter{From: &from, To: &to})
	if err != nil {
		return nil, fmt.Errorf("list days of %04d-%02d: %w", year, int(month), err)
	}

	start := time.Now()
	resp = NewMonthResponse(BuildMonthSummary(year, month, days))
	a.observeAggregate(summaryMonth, start)

	if genOK {
		a.store(ctx, ownerID, key, resp, gen)
	}
	return &resp, nil
}

func (a *Analyzer) Analytics(ctx context.Context, ownerID int64) (_ *AnalyticsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.analytics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := AnalyticsCacheKey()
	var resp AnalyticsResponse
	if a.lookup(ctx, ownerID, summaryAnalytics, key, &resp) {
		return &resp, nil
	}
	gen, genOK := a.generation(ctx, ownerID, cache.AnalyticsTag())

	days, err := a.days.ListDays(ctx, ownerID, workouts.DayFilter{})
	if err != nil {
		return nil, fmt.Errorf("list all days: %w", err)
	}
	span.SetAttributes(attribute.Int("days.count", len(days)))

	start := time.Now()
	resp = NewAnalyticsResponse(BuildAnalyticsSummary(days))
	a.observeAggregate(summaryAnalytics, start)

	if genOK {
		a.store(ctx, ownerID, key, resp, gen)
	}
	return &resp, nil
}

// ExerciseHistory is never served from the summary cache. It returns
// catalog.ErrExerciseNotFound when the owner cannot see the exercise.
func (a *Analyzer) ExerciseHistory(ctx context.Context, ownerID, exerciseID int64) (_ *ExerciseHistoryResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.exerciseHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("exercise.id", exerciseID))

	exercise, err := a.exercises.GetExercise(ctx, ownerID, exerciseID)
	if err != nil {
		return nil, err
	}

	days, err := a.days.ListDays(ctx, ownerID, workouts.DayFilter{ExerciseID: &exerciseID})
	if err != nil {
		return nil, fmt.Errorf("list days of exercise %d: %w", exerciseID, err)
	}

	start := time.Now()
	resp := NewExerciseHistoryResponse(BuildExerciseHistory(*exercise, days))
	a.observeAggregate(aggregateHistory, start)

	return &resp, nil
}

// lookup reports whether dst was filled from the cache. Cache failures count as a miss.
func (a *Analyzer) lookup(ctx context.Context, ownerID int64, summary, key string, dst any) bool {
	if a.summaryCache == nil {
		return false
	}

	cached, err := a.summaryCache.GetOwner(ctx, ownerID, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Warnf("summary cache get %s for user %d: %s", key, ownerID, err)
		}
		a.countLookup(summary, metrics.CacheMiss)
		return false
	}

	if err := json.Unmarshal(cached, dst); err != nil {
		log.Warnf("summary cache entry %s for user %d is corrupt: %s", key, ownerID, err)
		a.countLookup(summary, metrics.CacheMiss)
		return false
	}

	a.countLookup(summary, metrics.CacheHit)
	return true
}

// generation is taken before the days are listed; a summary computed from
// them is only cached when no save invalidated its tags in the meantime.
func (a *Analyzer) generation(ctx context.Context, ownerID int64, tags ...cache.Tag) (cache.Generation, bool) {
	if a.summaryCache == nil {
		return cache.Generation{}, false
	}

	gen, err := a.summaryCache.GenerationOwner(ctx, ownerID, tags...)
	if err != nil {
		log.Warnf("summary cache generation for user %d: %s", ownerID, err)
		return cache.Generation{}, false
	}
	return gen, true
}

func (a *Analyzer) store(ctx context.Context, ownerID int64, key string, value any, gen cache.Generation) {
	valueJson, err := json.Marshal(value)
	if err != nil {
		log.Errorf("marshal summary %s: %s", key, err)
		return
	}

	stored, err := a.summaryCache.SetOwnerIfCurrent(ctx, ownerID, key, valueJson, a.summaryTTL, gen)
	if err != nil {
		log.Warnf("summary cache set %s for user %d: %s", key, ownerID, err)
		return
	}
	if !stored {
		log.Debugf("summary %s for user %d outdated by a save, not cached", key, ownerID)
	}
}

func (a *Analyzer) countLookup(summary, result string) {
	if a.metricsManager == nil {
		return
	}
	a.metricsManager.CounterSummaryCache.WithLabelValues(summary, result).Inc()
}

func (a *Analyzer) observeAggregate(aggregate string, start time.Time) {
	if a.metricsManager == nil {
		return
	}
	a.metricsManager.HistogramAggregateDuration.WithLabelValues(aggregate).Observe(time.Since(start).Seconds())
}
