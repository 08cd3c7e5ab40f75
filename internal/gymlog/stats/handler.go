package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/caldate"
	"github.com/2beens/gymlog/internal/gymlog/catalog"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type statsProvider interface {
	Month(ctx context.Context, ownerID int64, year int, month time.Month) (*MonthResponse, error)
	Analytics(ctx context.Context, ownerID int64) (*AnalyticsResponse, error)
	ExerciseHistory(ctx context.Context, ownerID, exerciseID int64) (*ExerciseHistoryResponse, error)
}

type Handler struct {
	stats   statsProvider
	minYear int
	maxYear int
}

func NewHandler(stats statsProvider, minYear, maxYear int) *Handler {
	return &Handler{
		stats:   stats,
		minYear: minYear,
		maxYear: maxYear,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts/month/", handler.HandleMonth).Methods("GET", "OPTIONS").Name("month")
	r.HandleFunc("/analytics/summary/", handler.HandleAnalytics).Methods("GET", "OPTIONS").Name("analytics-summary")
	r.HandleFunc("/analytics/exercise-history/", handler.HandleExerciseHistory).Methods("GET", "OPTIONS").Name("exercise-history")
}

func (handler *Handler) HandleMonth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.month")
	defer span.End()

	ownerID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	today := caldate.Today()
	year, err := intParam(r, "year", today.Year)
	if err != nil {
		http.Error(w, "error, invalid year or month parameter", http.StatusBadRequest)
		return
	}
	month, err := intParam(r, "month", int(today.Month))
	if err != nil {
		http.Error(w, "error, invalid year or month parameter", http.StatusBadRequest)
		return
	}

	if year < handler.minYear || year > handler.maxYear {
		http.Error(w, fmt.Sprintf("error, year must be between %d and %d", handler.minYear, handler.maxYear), http.StatusBadRequest)
		return
	}
	if month < 1 || month > 12 {
		http.Error(w, "error, month must be between 1 and 12", http.StatusBadRequest)
		return
	}

	resp, err := handler.stats.Month(ctx, ownerID, year, time.Month(month))
	if err != nil {
		log.Errorf("month %04d-%02d for user %d: %s", year, month, ownerID, err)
		http.Error(w, "error, failed to get month", http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.analytics")
	defer span.End()

	ownerID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	resp, err := handler.stats.Analytics(ctx, ownerID)
	if err != nil {
		log.Errorf("analytics for user %d: %s", ownerID, err)
		http.Error(w, "error, failed to get analytics", http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.exerciseHistory")
	defer span.End()

	ownerID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseIDParam := r.URL.Query().Get("exercise_id")
	if exerciseIDParam == "" {
		http.Error(w, "error, exercise_id parameter is required", http.StatusBadRequest)
		return
	}
	exerciseID, err := strconv.ParseInt(exerciseIDParam, 10, 64)
	if err != nil {
		http.Error(w, "error, exercise_id must be a valid integer", http.StatusBadRequest)
		return
	}

	resp, err := handler.stats.ExerciseHistory(ctx, ownerID, exerciseID)
	if err != nil {
		if errors.Is(err, catalog.ErrExerciseNotFound) {
			http.Error(w, "error, exercise not found or not accessible", http.StatusNotFound)
			return
		}
		log.Errorf("exercise %d history for user %d: %s", exerciseID, ownerID, err)
		http.Error(w, "error, failed to get exercise history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp, http.StatusOK)
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal stats response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
