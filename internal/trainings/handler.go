package trainings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/uteam-club/uteam/internal/telemetry/tracing"
	"github.com/uteam-club/uteam/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trainings_test

type trainingsRepo interface {
	Get(ctx context.Context, id string) (*Training, error)
	ListWithResponses(ctx context.Context, params ListParams) ([]Training, error)
}

type Handler struct {
	repo trainingsRepo
}

func NewHandler(repo trainingsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/teams/{teamId}/trainings", handler.HandleList).Methods("GET", "OPTIONS").Name("list-trainings")
	r.HandleFunc("/trainings/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-training")
}

// HandleList serves the trainings of a team in a date range. With
// with_responses=true only trainings that already have at least one
// completed RPE response are returned (that is what the analysis
// selector shows).
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.list")
	defer span.End()

	vars := mux.Vars(r)
	teamID := vars["teamId"]
	if teamID == "" {
		http.Error(w, "error, team id empty", http.StatusBadRequest)
		return
	}

	onlyWithResponses := false
	if withRespStr := r.URL.Query().Get("with_responses"); withRespStr != "" {
		var err error
		onlyWithResponses, err = strconv.ParseBool(withRespStr)
		if err != nil {
			http.Error(w, "failed to parse with_responses param", http.StatusBadRequest)
			return
		}
	}

	trainings, err := handler.repo.ListWithResponses(ctx, ListParams{
		TeamID:   teamID,
		FromDate: r.URL.Query().Get("from_date"),
		ToDate:   r.URL.Query().Get("to_date"),
	})
	if err != nil {
		log.Errorf("list trainings for team %s: %s", teamID, err)
		http.Error(w, "failed to get trainings", http.StatusInternalServerError)
		return
	}

	if onlyWithResponses {
		filtered := make([]Training, 0, len(trainings))
		for _, t := range trainings {
			if t.ResponsesCount > 0 {
				filtered = append(filtered, t)
			}
		}
		trainings = filtered
	}

	trainingsJson, err := json.Marshal(trainings)
	if err != nil {
		log.Errorf("marshal trainings error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trainingsJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	training, err := handler.repo.Get(ctx, id)
	if err != nil && !errors.Is(err, ErrTrainingNotFound) {
		log.Errorf("failed to get training %s: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrTrainingNotFound) {
		http.Error(w, "training not found", http.StatusNotFound)
		return
	}

	trainingJson, err := json.Marshal(training)
	if err != nil {
		log.Errorf("failed to marshal training: %s", err)
		http.Error(w, "failed to marshal training", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trainingJson, http.StatusOK)
}
