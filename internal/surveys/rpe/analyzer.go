package rpe

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/uteam-club/uteam/internal/surveys"
	"github.com/uteam-club/uteam/internal/teams"
	"github.com/uteam-club/uteam/internal/teamtime"
	"github.com/uteam-club/uteam/internal/telemetry/metrics"
	"github.com/uteam-club/uteam/internal/telemetry/tracing"
	"github.com/uteam-club/uteam/internal/trainings"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=rpe_test

const (
	// historyDays is how far back the analyzer loads responses for an
	// overview. 8 trend weeks plus the 4 chronic ACWR weeks behind the
	// oldest trend anchor.
	historyDays = 84

	teamCacheExpireSeconds = 5 * 60
	teamCacheSize          = 256 * 1024
)

type responsesRepo interface {
	ResponsesForTeam(ctx context.Context, teamID string, from, to time.Time) ([]surveys.Response, error)
}

type teamsRepo interface {
	Get(ctx context.Context, id string) (*teams.Team, error)
	Players(ctx context.Context, teamID string) ([]teams.Player, error)
}

type trainingGetter interface {
	Get(ctx context.Context, id string) (*trainings.Training, error)
}

// Overview is the full training load picture served for one training
// of one team, optionally narrowed to a single player. All series are
// anchored at the training's day and computed on the fly from the raw
// response history.
type Overview struct {
	TeamID    string `json:"teamId"`
	PlayerID  string `json:"playerId,omitempty"`
	AnchorDay string `json:"anchorDay"`

	Players []teams.Player `json:"players,omitempty"`

	WeeklyLoadTrend []TrendPoint  `json:"weeklyLoadTrend"`
	ACWRTrend       []SpreadPoint `json:"acwrTrend"`
	StrainTrend     []StrainPoint `json:"strainTrend"`
	WeekProfile     WeekProfile   `json:"weekProfile"`
	Heatmap         Heatmap       `json:"heatmap"`
}

// Analyzer computes training load overviews. Team metadata and
// rosters are cached briefly, computed metrics never are: the history
// window shifts with every anchor and recomputing the fold is cheap.
type Analyzer struct {
	responses responsesRepo
	teams     teamsRepo
	trainings trainingGetter
	cache     *freecache.Cache
	metrics   *metrics.Manager
}

func NewAnalyzer(
	responses responsesRepo,
	teamsRepo teamsRepo,
	trainings trainingGetter,
	metricsManager *metrics.Manager,
) *Analyzer {
	return &Analyzer{
		responses: responses,
		teams:     teamsRepo,
		trainings: trainings,
		cache:     freecache.NewCache(teamCacheSize),
		metrics:   metricsManager,
	}
}

// TrainingOverview assembles all load series for the given training.
// With a non-empty playerID the load series are the player's own,
// otherwise they aggregate the whole team. A missing anchor, or a
// history fetch failure, degrades to empty series rather than an
// error: the overview page must render even when the data is not
// there yet.
func (a *Analyzer) TrainingOverview(ctx context.Context, teamID, trainingID, playerID string) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "rpe.analyzer.trainingOverview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	a.metrics.CounterAnalysisRequests.Inc()
	timer := a.metrics.AnalysisTimer()
	defer timer.ObserveDuration()

	team, err := a.cachedTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}

	overview := &Overview{
		TeamID:   teamID,
		PlayerID: playerID,
	}

	training, err := a.trainings.Get(ctx, trainingID)
	if err != nil {
		return nil, fmt.Errorf("get training: %w", err)
	}
	if training.Date == "" {
		log.Warnf("rpe overview: training %s has no date, serving empty overview", trainingID)
		return overview, nil
	}
	overview.AnchorDay = training.Date

	loc := teamtime.Location(team.Timezone)
	daily, sessions := a.loadHistory(ctx, teamID, training.Date, loc)

	roster, err := a.cachedRoster(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get roster: %w", err)
	}
	overview.Players = roster

	var loads DayLoads
	if playerID == "" {
		loads = daily.TeamTotal()
		overview.ACWRTrend = TeamACWRTrend(daily, training.Date)
	} else {
		loads = daily.Player(playerID)
		overview.ACWRTrend = PlayerACWRTrend(loads, training.Date)
	}

	overview.WeeklyLoadTrend = WeeklyLoadTrend(loads, training.Date)
	overview.StrainTrend = StrainTrend(loads, training.Date)
	overview.WeekProfile = BuildWeekProfile(loads, training.Date)
	overview.Heatmap = BuildHeatmap(daily, sessions, training.Date, heatmapPlayers(roster, playerID))

	return overview, nil
}

// loadHistory fetches and folds the response history ending at the
// anchor day. On fetch failure it logs and returns empty maps.
func (a *Analyzer) loadHistory(ctx context.Context, teamID, anchorDay string, loc *time.Location) (DailyLoad, SessionCount) {
	anchor, err := teamtime.ParseDayKey(anchorDay)
	if err != nil {
		log.Errorf("rpe overview: invalid anchor day %q: %s", anchorDay, err)
		return DailyLoad{}, SessionCount{}
	}

	from := anchor.AddDate(0, 0, -historyDays)
	to := anchor.AddDate(0, 0, 1)
	responses, err := a.responses.ResponsesForTeam(ctx, teamID, from, to)
	if err != nil {
		log.Errorf("rpe overview: fetch responses for team %s: %s", teamID, err)
		return DailyLoad{}, SessionCount{}
	}
	a.metrics.CounterResponsesFetched.Add(float64(len(responses)))

	var invalid int
	for _, resp := range responses {
		if _, ok := resp.Workload(); !ok {
			invalid++
		}
	}
	if invalid > 0 {
		a.metrics.CounterInvalidResponses.Add(float64(invalid))
	}

	return BuildDailyLoad(responses, loc)
}

func (a *Analyzer) cachedTeam(ctx context.Context, teamID string) (*teams.Team, error) {
	key := []byte("team::" + teamID)
	if cached, err := a.cache.Get(key); err == nil {
		var team teams.Team
		if err := json.Unmarshal(cached, &team); err == nil {
			return &team, nil
		}
	}

	team, err := a.teams.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if encoded, err := json.Marshal(team); err == nil {
		if err := a.cache.Set(key, encoded, teamCacheExpireSeconds); err != nil {
			log.Warnf("cache team %s: %s", teamID, err)
		}
	}
	return team, nil
}

func (a *Analyzer) cachedRoster(ctx context.Context, teamID string) ([]teams.Player, error) {
	key := []byte("players::" + teamID)
	if cached, err := a.cache.Get(key); err == nil {
		var players []teams.Player
		if err := json.Unmarshal(cached, &players); err == nil {
			return players, nil
		}
	}

	players, err := a.teams.Players(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if encoded, err := json.Marshal(players); err == nil {
		if err := a.cache.Set(key, encoded, teamCacheExpireSeconds); err != nil {
			log.Warnf("cache roster %s: %s", teamID, err)
		}
	}
	return players, nil
}

func heatmapPlayers(roster []teams.Player, playerID string) []string {
	if playerID != "" {
		return []string{playerID}
	}
	ids := make([]string, 0, len(roster))
	for _, p := range roster {
		ids = append(ids, p.ID)
	}
	return ids
}
