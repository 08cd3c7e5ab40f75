package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

type catalogRepo interface {
	ListExercises(ctx context.Context, ownerID int64) ([]Exercise, error)
	AddExercise(ctx context.Context, ownerID int64, ex NewExercise) (*Exercise, error)
	ListCardioTypes(ctx context.Context, ownerID int64) ([]CardioType, error)
	AddCardioType(ctx context.Context, ownerID int64, ct NewCardioType) (*CardioType, error)
}

type Handler struct {
	repo catalogRepo
}

func NewHandler(repo catalogRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises/", handler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/", handler.HandleAddExercise).Methods("POST").Name("new-exercise")
	r.HandleFunc("/cardio-types/", handler.HandleListCardioTypes).Methods("GET", "OPTIONS").Name("list-cardio-types")
	r.HandleFunc("/cardio-types/", handler.HandleAddCardioType).Methods("POST").Name("new-cardio-type")
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.listExercises")
	defer span.End()

	ownerID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exercises, err := handler.repo.ListExercises(ctx, ownerID)
	if err != nil {
		log.Errorf("list exercises for user %d: %s", ownerID, err)
		http.Error(w, "error, failed to list exercises", http.StatusInternalServerError)
		return
	}

	writeJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.addExercise")
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

	var newExercise NewExercise
	if err := json.NewDecoder(r.Body).Decode(&newExercise); err != nil {
		log.Tracef("new exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	newExercise, err := newExercise.Normalize()
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.repo.AddExercise(ctx, ownerID, newExercise)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			http.Error(w, "error, you already have an exercise with this name", http.StatusBadRequest)
			return
		}
		log.Errorf("add exercise [%s] for user %d: %s", newExercise.Name, ownerID, err)
		http.Error(w, "error, failed to add new exercise", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int64("exercise.id", added.ID))
	log.Debugf("new exercise added: %d [%s]", added.ID, added.Name)
	writeJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleListCardioTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.listCardioTypes")
	defer span.End()

	ownerID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	cardioTypes, err := handler.repo.ListCardioTypes(ctx, ownerID)
	if err != nil {
		log.Errorf("list cardio types for user %d: %s", ownerID, err)
		http.Error(w, "error, failed to list cardio types", http.StatusInternalServerError)
		return
	}

	writeJSON(w, cardioTypes, http.StatusOK)
}

func (handler *Handler) HandleAddCardioType(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.addCardioType")
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

	var newCardioType NewCardioType
	if err := json.NewDecoder(r.Body).Decode(&newCardioType); err != nil {
		log.Tracef("new cardio type, unmarshal json params: %s", err)
		http.Error(w, "add cardio type failed", http.StatusBadRequest)
		return
	}

	newCardioType, err := newCardioType.Normalize()
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.repo.AddCardioType(ctx, ownerID, newCardioType)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			http.Error(w, "error, you already have a cardio type with this name", http.StatusBadRequest)
			return
		}
		log.Errorf("add cardio type [%s] for user %d: %s", newCardioType.Name, ownerID, err)
		http.Error(w, "error, failed to add new cardio type", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int64("cardio_type.id", added.ID))
	writeJSON(w, added, http.StatusCreated)
}

func writeJSON(w http.ResponseWriter, v any, statusCode int) {
	respBytes, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal catalog response: %s", err)
		http.Error(w, "error, failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, statusCode)
}
