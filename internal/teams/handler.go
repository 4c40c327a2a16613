package teams

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/uteam-club/uteam/internal/telemetry/tracing"
	"github.com/uteam-club/uteam/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=teams_test

type teamsRepo interface {
	List(ctx context.Context, clubID string) ([]Team, error)
	Get(ctx context.Context, id string) (*Team, error)
	Players(ctx context.Context, teamID string) ([]Player, error)
}

type Handler struct {
	repo teamsRepo
}

func NewHandler(repo teamsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/teams", handler.HandleList).Methods("GET", "OPTIONS").Name("list-teams")
	r.HandleFunc("/teams/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-team")
	r.HandleFunc("/teams/{id}/players", handler.HandlePlayers).Methods("GET", "OPTIONS").Name("team-players")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.teams.list")
	defer span.End()

	teams, err := handler.repo.List(ctx, r.URL.Query().Get("club_id"))
	if err != nil {
		log.Errorf("list teams error: %s", err)
		http.Error(w, "failed to get teams", http.StatusInternalServerError)
		return
	}

	teamsJson, err := json.Marshal(teams)
	if err != nil {
		log.Errorf("marshal teams error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, teamsJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.teams.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	team, err := handler.repo.Get(ctx, id)
	if err != nil && !errors.Is(err, ErrTeamNotFound) {
		log.Errorf("failed to get team %s: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrTeamNotFound) {
		http.Error(w, "team not found", http.StatusNotFound)
		return
	}

	teamJson, err := json.Marshal(team)
	if err != nil {
		log.Errorf("failed to marshal team: %s", err)
		http.Error(w, "failed to marshal team", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, teamJson, http.StatusOK)
}

func (handler *Handler) HandlePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.teams.players")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	players, err := handler.repo.Players(ctx, id)
	if err != nil {
		log.Errorf("failed to get players of team %s: %s", id, err)
		http.Error(w, "failed to get players", http.StatusInternalServerError)
		return
	}

	playersJson, err := json.Marshal(players)
	if err != nil {
		log.Errorf("failed to marshal players: %s", err)
		http.Error(w, "failed to marshal players", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, playersJson, http.StatusOK)
}
