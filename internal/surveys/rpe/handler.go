package rpe

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/uteam-club/uteam/internal/teams"
	"github.com/uteam-club/uteam/internal/telemetry/tracing"
	"github.com/uteam-club/uteam/internal/trainings"
	"github.com/uteam-club/uteam/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=rpe_test

type overviewAnalyzer interface {
	TrainingOverview(ctx context.Context, teamID, trainingID, playerID string) (*Overview, error)
}

type Handler struct {
	analyzer overviewAnalyzer
}

func NewHandler(analyzer overviewAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc(
		"/teams/{teamId}/trainings/{trainingId}/load",
		handler.HandleTrainingOverview,
	).Methods("GET", "OPTIONS").Name("training-load-overview")
}

// HandleTrainingOverview serves the load overview of one training.
// An optional "player" query parameter narrows all series to that
// player.
func (handler *Handler) HandleTrainingOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rpe.trainingOverview")
	defer span.End()

	vars := mux.Vars(r)
	teamID := vars["teamId"]
	trainingID := vars["trainingId"]
	if teamID == "" || trainingID == "" {
		http.Error(w, "error, team or training id empty", http.StatusBadRequest)
		return
	}

	overview, err := handler.analyzer.TrainingOverview(ctx, teamID, trainingID, r.URL.Query().Get("player"))
	switch {
	case errors.Is(err, teams.ErrTeamNotFound):
		http.Error(w, "team not found", http.StatusNotFound)
		return
	case errors.Is(err, trainings.ErrTrainingNotFound):
		http.Error(w, "training not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("training overview [team %s, training %s]: %s", teamID, trainingID, err)
		http.Error(w, "failed to compute load overview", http.StatusInternalServerError)
		return
	}

	overviewJson, err := json.Marshal(overview)
	if err != nil {
		log.Errorf("marshal load overview: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, overviewJson, http.StatusOK)
}
