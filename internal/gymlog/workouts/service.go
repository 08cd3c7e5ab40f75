package workouts

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/cache"
	"github.com/2beens/gymlog/internal/caldate"
	"github.com/2beens/gymlog/internal/gymlog/catalog"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type dayRepo interface {
	ReplaceDay(ctx context.Context, ownerID int64, draft DayDraft) (*ReplaceResult, error)
	GetDay(ctx context.Context, ownerID int64, date caldate.Date) (*DayWorkout, error)
}

type refResolver interface {
	ResolveExercises(ctx context.Context, ownerID int64, ids []int64) (map[int64]catalog.Exercise, error)
	ResolveCardioTypes(ctx context.Context, ownerID int64, ids []int64) (map[int64]catalog.CardioType, error)
}

type summaryCache interface {
	InvalidateOwner(ctx context.Context, ownerID int64, tags ...cache.Tag) (int, error)
}

type SaveResult struct {
	Day     DayWorkout
	Created bool
	// Dropped counts entries removed for a missing or inaccessible reference.
	Dropped int
}

type ServiceParams struct {
	Repo             dayRepo
	Resolver         refResolver
	SummaryCache     summaryCache
	MetricsManager   *metrics.Manager
	StrictReferences bool
}

type Service struct {
	repo             dayRepo
	resolver         refResolver
	summaryCache     summaryCache
	metricsManager   *metrics.Manager
	strictReferences bool

	// saves of the same owner and date never interleave
	locksMutex sync.Mutex
	dayLocks   map[dayKey]*dayLock
}

type dayKey struct {
	ownerID int64
	date    caldate.Date
}

type dayLock struct {
	mutex sync.Mutex
	users int
}

func NewService(params ServiceParams) *Service {
	return &Service{
		repo:             params.Repo,
		resolver:         params.Resolver,
		summaryCache:     params.SummaryCache,
		metricsManager:   params.MetricsManager,
		strictReferences: params.StrictReferences,
		dayLocks:         map[dayKey]*dayLock{},
	}
}

func (s *Service) GetDay(ctx context.Context, ownerID int64, date caldate.Date) (_ *DayWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.getDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day, err := s.repo.GetDay(ctx, ownerID, date)
	if err != nil {
		if errors.Is(err, ErrDayNotFound) {
			empty := EmptyDay(ownerID, date)
			return &empty, nil
		}
		return nil, &StorageError{Op: "get day", Err: err}
	}
	return day, nil
}

// SaveDay replaces everything stored for the request date with the request content.
func (s *Service) SaveDay(ctx context.Context, ownerID int64, req SaveDayRequest) (_ *SaveResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.saveDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	draft, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("date", draft.Date.String()))

	dropped, err := s.resolveRefs(ctx, ownerID, &draft)
	if err != nil {
		return nil, err
	}

	unlock := s.lockDay(ownerID, draft.Date)
	defer unlock()

	replaced, err := s.repo.ReplaceDay(ctx, ownerID, draft)
	if err != nil {
		return nil, &StorageError{Op: "replace day", Err: err}
	}

	s.invalidateSummaries(ctx, ownerID, draft.Date)
	s.countSave(replaced)

	result := &SaveResult{
		Created: replaced.Created && !replaced.Deleted,
		Dropped: dropped,
	}

	if replaced.Deleted {
		result.Day = EmptyDay(ownerID, draft.Date)
		return result, nil
	}

	day, err := s.repo.GetDay(ctx, ownerID, draft.Date)
	if err != nil {
		return nil, &StorageError{Op: "reload day", Err: err}
	}
	result.Day = *day

	return result, nil
}

// resolveRefs filters draft entries down to the catalog items the owner may use.
// Strict mode rejects the save instead of dropping.
func (s *Service) resolveRefs(ctx context.Context, ownerID int64, draft *DayDraft) (int, error) {
	exercises, err := s.resolver.ResolveExercises(ctx, ownerID, draft.ExerciseIDs())
	if err != nil {
		return 0, &StorageError{Op: "resolve exercises", Err: err}
	}
	cardioTypes, err := s.resolver.ResolveCardioTypes(ctx, ownerID, draft.CardioTypeIDs())
	if err != nil {
		return 0, &StorageError{Op: "resolve cardio types", Err: err}
	}

	var refErrs []EntryRefError
	keptStrength := make([]StrengthDraft, 0, len(draft.Entries))
	for i, e := range draft.Entries {
		if _, ok := exercises[e.ExerciseID]; !ok {
			refErrs = append(refErrs, EntryRefError{Kind: "entries", Index: i, RefID: e.ExerciseID})
			continue
		}
		keptStrength = append(keptStrength, e)
	}

	droppedStrength := len(draft.Entries) - len(keptStrength)

	keptCardio := make([]CardioDraft, 0, len(draft.CardioEntries))
	for i, c := range draft.CardioEntries {
		if _, ok := cardioTypes[c.CardioTypeID]; !ok {
			refErrs = append(refErrs, EntryRefError{Kind: "cardio_entries", Index: i, RefID: c.CardioTypeID})
			continue
		}
		keptCardio = append(keptCardio, c)
	}

	droppedCardio := len(draft.CardioEntries) - len(keptCardio)

	if len(refErrs) > 0 && s.strictReferences {
		return 0, &ReferenceError{Entries: refErrs}
	}

	if s.metricsManager != nil {
		if droppedStrength > 0 {
			s.metricsManager.CounterDroppedEntries.WithLabelValues("strength").Add(float64(droppedStrength))
		}
		if droppedCardio > 0 {
			s.metricsManager.CounterDroppedEntries.WithLabelValues("cardio").Add(float64(droppedCardio))
		}
	}
	if len(refErrs) > 0 {
		log.Debugf("save day %s for user %d: dropping %d entries with unknown refs", draft.Date, ownerID, len(refErrs))
	}

	draft.Entries = keptStrength
	draft.CardioEntries = keptCardio

	return draft.DroppedNoRef + len(refErrs), nil
}

func (s *Service) invalidateSummaries(ctx context.Context, ownerID int64, date caldate.Date) {
	if s.summaryCache == nil {
		return
	}
	// the save is already committed, a stale summary is only logged
	if _, err := s.summaryCache.InvalidateOwner(ctx, ownerID, cache.SaveDayTags(date)...); err != nil {
		log.Errorf("invalidate summaries after saving %s for user %d: %s", date, ownerID, err)
	}
}

func (s *Service) countSave(replaced *ReplaceResult) {
	if s.metricsManager == nil {
		return
	}
	outcome := metrics.DaySaveUpdated
	switch {
	case replaced.Deleted:
		outcome = metrics.DaySaveCleared
	case replaced.Created:
		outcome = metrics.DaySaveCreated
	}
	s.metricsManager.CounterDaySaves.WithLabelValues(outcome).Inc()
}

func (s *Service) lockDay(ownerID int64, date caldate.Date) func() {
	key := dayKey{ownerID: ownerID, date: date}

	s.locksMutex.Lock()
	lock, ok := s.dayLocks[key]
	if !ok {
		lock = &dayLock{}
		s.dayLocks[key] = lock
	}
	lock.users++
	s.locksMutex.Unlock()

	lock.mutex.Lock()

	return func() {
		lock.mutex.Unlock()

		s.locksMutex.Lock()
		lock.users--
		if lock.users == 0 {
			delete(s.dayLocks, key)
		}
		s.locksMutex.Unlock()
	}
}
