package surveys

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/uteam-club/uteam/internal/teams"
	"github.com/uteam-club/uteam/internal/telemetry/metrics"
	"github.com/uteam-club/uteam/internal/telemetry/tracing"
	"github.com/uteam-club/uteam/internal/trainings"
	"github.com/uteam-club/uteam/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=surveys_test

// surveyCreateGuardTTL is how long a training's survey creation is
// locked after a successful run. Guards against schedule double
// fires, not against malice.
const surveyCreateGuardTTL = 30 * time.Second

type surveysRepo interface {
	ResponsesForTraining(ctx context.Context, trainingID string) ([]Response, error)
	CreateForTraining(ctx context.Context, trainingID string, playerIDs []string) ([]string, error)
	SetDuration(ctx context.Context, trainingID string, playerIDs []string, minutes int) (int64, error)
	Schedules(ctx context.Context, teamID string) ([]Schedule, error)
	UpsertSchedule(ctx context.Context, schedule Schedule) error
}

type rosterRepo interface {
	Players(ctx context.Context, teamID string) ([]teams.Player, error)
}

type trainingGetter interface {
	Get(ctx context.Context, id string) (*trainings.Training, error)
}

type Handler struct {
	repo      surveysRepo
	roster    rosterRepo
	trainings trainingGetter
	rdb       redis.Cmdable
	metrics   *metrics.Manager
}

func NewHandler(
	repo surveysRepo,
	roster rosterRepo,
	trainingsRepo trainingGetter,
	rdb redis.Cmdable,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:      repo,
		roster:    roster,
		trainings: trainingsRepo,
		rdb:       rdb,
		metrics:   metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/trainings/{id}/survey", handler.HandleTrainingSummary).Methods("GET", "OPTIONS").Name("training-survey-summary")
	r.HandleFunc("/trainings/{id}/survey", handler.HandleCreateSurvey).Methods("POST", "OPTIONS").Name("create-survey")
	r.HandleFunc("/trainings/{id}/survey/duration", handler.HandleSetDuration).Methods("PUT", "OPTIONS").Name("set-survey-duration")
	r.HandleFunc("/teams/{teamId}/survey-schedules", handler.HandleSchedules).Methods("GET", "OPTIONS").Name("survey-schedules")
	r.HandleFunc("/teams/{teamId}/survey-schedules", handler.HandleUpsertSchedule).Methods("PUT", "OPTIONS").Name("upsert-survey-schedule")
}

// PlayerSurveyRow is one roster player's state in a training summary.
// Players who never got or never finished a survey still appear, with
// the completed flag down and no workload.
type PlayerSurveyRow struct {
	Player          teams.Player `json:"player"`
	Surveyed        bool         `json:"surveyed"`
	Completed       bool         `json:"completed"`
	RPEScore        int          `json:"rpeScore,omitempty"`
	DurationMinutes *int         `json:"durationMinutes,omitempty"`
	Workload        *float64     `json:"workload,omitempty"`
}

// TrainingSummary is the per-training survey roster view.
type TrainingSummary struct {
	TrainingID  string            `json:"trainingId"`
	Rows        []PlayerSurveyRow `json:"rows"`
	Completed   int               `json:"completed"`
	AvgRPE      float64           `json:"avgRpe"`
	AvgDuration float64           `json:"avgDuration"`
	AvgWorkload float64           `json:"avgWorkload"`
}

func (handler *Handler) HandleTrainingSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.surveys.trainingSummary")
	defer span.End()

	trainingID := mux.Vars(r)["id"]
	if trainingID == "" {
		http.Error(w, "error, training id empty", http.StatusBadRequest)
		return
	}

	training, err := handler.trainings.Get(ctx, trainingID)
	if err != nil && !errors.Is(err, trainings.ErrTrainingNotFound) {
		log.Errorf("survey summary, get training %s: %s", trainingID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, trainings.ErrTrainingNotFound) {
		http.Error(w, "training not found", http.StatusNotFound)
		return
	}

	roster, err := handler.roster.Players(ctx, training.TeamID)
	if err != nil {
		log.Errorf("survey summary, get roster of team %s: %s", training.TeamID, err)
		http.Error(w, "failed to get players", http.StatusInternalServerError)
		return
	}

	responses, err := handler.repo.ResponsesForTraining(ctx, trainingID)
	if err != nil {
		log.Errorf("survey summary, get responses of training %s: %s", trainingID, err)
		http.Error(w, "failed to get survey responses", http.StatusInternalServerError)
		return
	}
	handler.metrics.CounterResponsesFetched.Add(float64(len(responses)))

	summary := buildTrainingSummary(trainingID, roster, responses)

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal survey summary: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}

func buildTrainingSummary(trainingID string, roster []teams.Player, responses []Response) TrainingSummary {
	byPlayer := make(map[string]Response, len(responses))
	for _, resp := range responses {
		byPlayer[resp.PlayerID] = resp
	}

	summary := TrainingSummary{
		TrainingID: trainingID,
		Rows:       make([]PlayerSurveyRow, 0, len(roster)),
	}

	var rpeSum, durationSum, workloadSum float64
	for _, player := range roster {
		row := PlayerSurveyRow{Player: player}
		if resp, ok := byPlayer[player.ID]; ok {
			row.Surveyed = true
			row.Completed = resp.Completed()
			row.RPEScore = resp.RPEScore
			row.DurationMinutes = resp.DurationMinutes
			if load, ok := resp.Workload(); ok {
				row.Workload = &load
			}
			if row.Completed {
				summary.Completed++
				rpeSum += float64(resp.RPEScore)
				if resp.DurationMinutes != nil {
					durationSum += float64(*resp.DurationMinutes)
				}
				if row.Workload != nil {
					workloadSum += *row.Workload
				}
			}
		}
		summary.Rows = append(summary.Rows, row)
	}

	if summary.Completed > 0 {
		n := float64(summary.Completed)
		summary.AvgRPE = round2(rpeSum / n)
		summary.AvgDuration = round2(durationSum / n)
		summary.AvgWorkload = round2(workloadSum / n)
	}
	return summary
}

type createSurveyResponse struct {
	TrainingID string   `json:"trainingId"`
	Created    []string `json:"created"`
	AlreadyRan bool     `json:"alreadyRan,omitempty"`
}

// HandleCreateSurvey inserts pending survey responses for the roster
// of the training's team, skipping players who already have one. A
// short lived redis guard keeps a double fired schedule from running
// the creation twice back to back.
func (handler *Handler) HandleCreateSurvey(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.surveys.createSurvey")
	defer span.End()

	trainingID := mux.Vars(r)["id"]
	if trainingID == "" {
		http.Error(w, "error, training id empty", http.StatusBadRequest)
		return
	}

	guardKey := fmt.Sprintf("survey-create::%s", trainingID)
	acquired, err := handler.rdb.SetNX(ctx, guardKey, "1", surveyCreateGuardTTL).Result()
	if err != nil {
		// redis being down must not block survey creation
		log.Errorf("survey create guard for training %s: %s", trainingID, err)
		acquired = true
	}
	if !acquired {
		log.Warnf("survey creation for training %s already ran, skipping", trainingID)
		resp, _ := json.Marshal(createSurveyResponse{TrainingID: trainingID, AlreadyRan: true})
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, http.StatusOK)
		return
	}

	training, err := handler.trainings.Get(ctx, trainingID)
	if err != nil && !errors.Is(err, trainings.ErrTrainingNotFound) {
		log.Errorf("survey create, get training %s: %s", trainingID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, trainings.ErrTrainingNotFound) {
		http.Error(w, "training not found", http.StatusNotFound)
		return
	}

	roster, err := handler.roster.Players(ctx, training.TeamID)
	if err != nil {
		log.Errorf("survey create, get roster of team %s: %s", training.TeamID, err)
		http.Error(w, "failed to get players", http.StatusInternalServerError)
		return
	}

	playerIDs := make([]string, 0, len(roster))
	for _, p := range roster {
		playerIDs = append(playerIDs, p.ID)
	}

	created, err := handler.repo.CreateForTraining(ctx, trainingID, playerIDs)
	if err != nil {
		log.Errorf("survey create for training %s: %s", trainingID, err)
		http.Error(w, "failed to create surveys", http.StatusInternalServerError)
		return
	}
	handler.metrics.CounterSurveysCreated.Add(float64(len(created)))
	log.Debugf("survey create for training %s: %d new responses", trainingID, len(created))

	resp, err := json.Marshal(createSurveyResponse{TrainingID: trainingID, Created: created})
	if err != nil {
		log.Errorf("marshal survey create response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, http.StatusCreated)
}

type setDurationRequest struct {
	Minutes   int      `json:"minutes"`
	PlayerIDs []string `json:"playerIds"`
}

// HandleSetDuration sets the session duration on a training's survey
// responses. An empty playerIds list targets the whole training.
func (handler *Handler) HandleSetDuration(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.surveys.setDuration")
	defer span.End()

	trainingID := mux.Vars(r)["id"]
	if trainingID == "" {
		http.Error(w, "error, training id empty", http.StatusBadRequest)
		return
	}

	var req setDurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Minutes <= 0 {
		http.Error(w, "error, minutes must be positive", http.StatusBadRequest)
		return
	}

	updated, err := handler.repo.SetDuration(ctx, trainingID, req.PlayerIDs, req.Minutes)
	if err != nil {
		if errors.Is(err, ErrResponseNotFound) {
			http.Error(w, "no responses to update", http.StatusNotFound)
			return
		}
		log.Errorf("set duration for training %s: %s", trainingID, err)
		http.Error(w, "failed to set duration", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"updated":%d}`, updated))
}

func (handler *Handler) HandleSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.surveys.schedules")
	defer span.End()

	teamID := mux.Vars(r)["teamId"]
	if teamID == "" {
		http.Error(w, "error, team id empty", http.StatusBadRequest)
		return
	}

	schedules, err := handler.repo.Schedules(ctx, teamID)
	if err != nil {
		log.Errorf("get survey schedules of team %s: %s", teamID, err)
		http.Error(w, "failed to get schedules", http.StatusInternalServerError)
		return
	}

	schedulesJson, err := json.Marshal(schedules)
	if err != nil {
		log.Errorf("marshal survey schedules: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, schedulesJson, http.StatusOK)
}

func (handler *Handler) HandleUpsertSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.surveys.upsertSchedule")
	defer span.End()

	teamID := mux.Vars(r)["teamId"]
	if teamID == "" {
		http.Error(w, "error, team id empty", http.StatusBadRequest)
		return
	}

	var schedule Schedule
	if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	schedule.TeamID = teamID
	if schedule.SurveyType == "" || schedule.SendTime == "" {
		http.Error(w, "error, survey type and send time required", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpsertSchedule(ctx, schedule); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "team not found", http.StatusNotFound)
			return
		}
		log.Errorf("upsert survey schedule for team %s: %s", teamID, err)
		http.Error(w, "failed to save schedule", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"saved":true}`)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
