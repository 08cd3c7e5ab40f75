package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/caldate"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type dayService interface {
	GetDay(ctx context.Context, ownerID int64, date caldate.Date) (*DayWorkout, error)
	SaveDay(ctx context.Context, ownerID int64, req SaveDayRequest) (*SaveResult, error)
}

type errorResponse struct {
	Error   string          `json:"error"`
	Field   string          `json:"field,omitempty"`
	Entries []EntryRefError `json:"entries,omitempty"`
}

type Handler struct {
	service dayService
}

func NewHandler(service dayService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts/day/", handler.HandleGetDay).Methods("GET", "OPTIONS").Name("get-day")
	r.HandleFunc("/workouts/day/", handler.HandleSaveDay).Methods("POST").Name("save-day")
}

func (handler *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.getDay")
	defer span.End()

	ownerID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		writeError(w, &ValidationError{Field: "date", Reason: "missing"}, http.StatusBadRequest)
		return
	}
	date, err := caldate.Parse(dateParam)
	if err != nil {
		writeError(w, &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}, http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("date", date.String()))

	day, err := handler.service.GetDay(ctx, ownerID, date)
	if err != nil {
		log.Errorf("get day %s for user %d: %s", date, ownerID, err)
		http.Error(w, "error, failed to get workout day", http.StatusInternalServerError)
		return
	}

	writeDay(w, *day, http.StatusOK)
}

func (handler *Handler) HandleSaveDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.saveDay")
	defer span.End()

	ownerID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SaveDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("save day, unmarshal json params: %s", err)
		writeError(w, &ValidationError{Field: "body", Reason: "malformed json"}, http.StatusBadRequest)
		return
	}

	result, err := handler.service.SaveDay(ctx, ownerID, req)
	if err != nil {
		var validationErr *ValidationError
		var refErr *ReferenceError
		switch {
		case errors.As(err, &validationErr):
			writeError(w, validationErr, http.StatusBadRequest)
		case errors.As(err, &refErr):
			writeError(w, refErr, http.StatusBadRequest)
		default:
			log.Errorf("save day %s for user %d: %s", req.Date, ownerID, err)
			http.Error(w, "error, failed to save workout day", http.StatusInternalServerError)
		}
		return
	}

	span.SetAttributes(
		attribute.Bool("day.created", result.Created),
		attribute.Int("entries.dropped", result.Dropped),
	)

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeDay(w, result.Day, status)
}

func writeDay(w http.ResponseWriter, day DayWorkout, status int) {
	dayJson, err := json.Marshal(NewDayResponse(day))
	if err != nil {
		log.Errorf("failed to marshal day %s: %s", day.Date, err)
		http.Error(w, "failed to marshal workout day", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dayJson, status)
}

func writeError(w http.ResponseWriter, err error, status int) {
	resp := errorResponse{Error: err.Error()}

	var validationErr *ValidationError
	var refErr *ReferenceError
	switch {
	case errors.As(err, &validationErr):
		resp.Field = validationErr.Field
	case errors.As(err, &refErr):
		resp.Entries = refErr.Entries
	}

	respJson, mErr := json.Marshal(resp)
	if mErr != nil {
		http.Error(w, err.Error(), status)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
