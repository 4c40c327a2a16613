package rpe

import (
	"time"

	"github.com/uteam-club/uteam/internal/surveys"
	"github.com/uteam-club/uteam/internal/teamtime"
)

// DayLoads maps a team-local day key (YYYY-MM-DD) to the training
// load of that day in AU (arbitrary units, RPE x minutes).
type DayLoads map[string]float64

// DaySessions maps a day key to the number of valid sessions that day.
type DaySessions map[string]int

// DailyLoad holds the per-player daily load maps of a whole team.
type DailyLoad map[string]DayLoads

// SessionCount holds the per-player daily session counts. It feeds
// the heatmap dot indicators only and never participates in metric
// math.
type SessionCount map[string]DaySessions

// BuildDailyLoad folds a flat response history into per-player,
// per-day load and session-count maps. A response is bucketed into
// the day of its linked training when it has one, otherwise into the
// team-local day of its creation timestamp. Responses without a score
// or without a duration carry no load and are skipped, not zeroed:
// half-filled survey rows are an everyday occurrence, not an error.
//
// The fold is pure: running it twice over the same responses yields
// identical maps.
func BuildDailyLoad(responses []surveys.Response, loc *time.Location) (DailyLoad, SessionCount) {
	daily := make(DailyLoad)
	sessions := make(SessionCount)

	for _, resp := range responses {
		load, ok := resp.Workload()
		if !ok {
			continue
		}

		day := resp.TrainingDate
		if day == "" {
			day = teamtime.DayKey(resp.CreatedAt, loc)
		}

		if daily[resp.PlayerID] == nil {
			daily[resp.PlayerID] = make(DayLoads)
			sessions[resp.PlayerID] = make(DaySessions)
		}
		daily[resp.PlayerID][day] += load
		sessions[resp.PlayerID][day]++
	}

	return daily, sessions
}

// Player returns one player's day loads, never nil.
func (d DailyLoad) Player(playerID string) DayLoads {
	if loads, ok := d[playerID]; ok {
		return loads
	}
	return DayLoads{}
}

// TeamTotal sums the daily loads of all players into a single
// team-level day-load map.
func (d DailyLoad) TeamTotal() DayLoads {
	total := make(DayLoads)
	for _, loads := range d {
		for day, load := range loads {
			total[day] += load
		}
	}
	return total
}
