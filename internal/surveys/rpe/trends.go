package rpe

import (
	"math"

	"github.com/uteam-club/uteam/internal/teamtime"
)

const (
	trendWeeks   = 8
	heatmapDays  = 28
	weekDays     = 7
	trendDayStep = 7
)

// TrendPoint is one weekly load sample of a trend, anchored at Day.
type TrendPoint struct {
	Day  string  `json:"day"`
	Load float64 `json:"load"`
	Band Band    `json:"band"`
}

// SpreadPoint is one ACWR trend sample. For a team the three values
// summarize the per-player ratios of that week, for a single player
// they all equal the player's own ratio.
type SpreadPoint struct {
	Day string  `json:"day"`
	Avg float64 `json:"avg"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// StrainPoint is one strain trend sample.
type StrainPoint struct {
	Day        string  `json:"day"`
	WeeklyLoad float64 `json:"weeklyLoad"`
	Monotony   float64 `json:"monotony"`
	Strain     float64 `json:"strain"`
	Band       Band    `json:"band"`
}

// WeekProfile is the 7-day daily load profile of the anchor week.
type WeekProfile struct {
	Days     []string  `json:"days"`
	Loads    []float64 `json:"loads"`
	Bands    []Band    `json:"bands"`
	Monotony float64   `json:"monotony"`
}

// HeatmapCell is the load of one player on one day.
type HeatmapCell struct {
	Load     float64 `json:"load"`
	Band     Band    `json:"band"`
	Sessions int     `json:"sessions"`
}

// Heatmap is the 28-day per-player load grid ending at the anchor.
// Cells carry entries only for loaded days.
type Heatmap struct {
	Days  []string                          `json:"days"`
	Cells map[string]map[string]HeatmapCell `json:"cells"`
}

// trendAnchors are the 8 week anchors ending at anchor, oldest first.
func trendAnchors(anchor string) []string {
	anchors := make([]string, 0, trendWeeks)
	for i := trendWeeks - 1; i >= 0; i-- {
		anchors = append(anchors, teamtime.AddDays(anchor, -i*trendDayStep))
	}
	return anchors
}

// WeeklyLoadTrend samples the 7-day rolling load at 8 week anchors
// ending at anchor, oldest first.
func WeeklyLoadTrend(loads DayLoads, anchor string) []TrendPoint {
	points := make([]TrendPoint, 0, trendWeeks)
	for _, day := range trendAnchors(anchor) {
		load := WeeklyLoad(loads, day)
		points = append(points, TrendPoint{
			Day:  day,
			Load: load,
			Band: WeeklyLoadBand(load),
		})
	}
	return points
}

// TeamACWRTrend samples per-player ACWR spreads at 8 week anchors.
// Undefined and non-finite ratios are excluded from the spread; a
// week with no defined ratio at all collapses to zeros rather than
// nulls, matching how trend charts render gaps.
func TeamACWRTrend(daily DailyLoad, anchor string) []SpreadPoint {
	points := make([]SpreadPoint, 0, trendWeeks)
	for _, day := range trendAnchors(anchor) {
		var ratios []float64
		for _, loads := range daily {
			v := ACWR(loads, day)
			if !v.Valid || math.IsInf(v.Value, 0) || math.IsNaN(v.Value) {
				continue
			}
			ratios = append(ratios, v.Value)
		}
		points = append(points, spreadPoint(day, ratios))
	}
	return points
}

// PlayerACWRTrend samples one player's ACWR at 8 week anchors, with
// avg, min and max all equal to the player's ratio, or zero when the
// ratio is undefined.
func PlayerACWRTrend(loads DayLoads, anchor string) []SpreadPoint {
	points := make([]SpreadPoint, 0, trendWeeks)
	for _, day := range trendAnchors(anchor) {
		var ratios []float64
		if v := ACWR(loads, day); v.Valid {
			ratios = []float64{v.Value}
		}
		points = append(points, spreadPoint(day, ratios))
	}
	return points
}

func spreadPoint(day string, ratios []float64) SpreadPoint {
	if len(ratios) == 0 {
		return SpreadPoint{Day: day}
	}
	minR, maxR := ratios[0], ratios[0]
	for _, r := range ratios[1:] {
		minR = math.Min(minR, r)
		maxR = math.Max(maxR, r)
	}
	return SpreadPoint{
		Day: day,
		Avg: Round2(mean(ratios)),
		Min: Round2(minR),
		Max: Round2(maxR),
	}
}

// StrainTrend samples weekly load, week monotony and their strain
// product at 8 week anchors. Monotony here is the sentinel-aware week
// variant so every point renders a number. Strain is rounded to the
// nearest unit.
func StrainTrend(loads DayLoads, anchor string) []StrainPoint {
	points := make([]StrainPoint, 0, trendWeeks)
	for _, day := range trendAnchors(anchor) {
		weekly := WeeklyLoad(loads, day)
		monotony := TeamWeekMonotony(WeekValues(loads, day))
		strain := math.Round(weekly * monotony)
		points = append(points, StrainPoint{
			Day:        day,
			WeeklyLoad: weekly,
			Monotony:   Round2(monotony),
			Strain:     strain,
			Band:       StrainBand(strain),
		})
	}
	return points
}

// BuildWeekProfile lays out the anchor week's zero-padded daily loads
// oldest first, together with the sentinel-aware week monotony.
func BuildWeekProfile(loads DayLoads, anchor string) WeekProfile {
	profile := WeekProfile{
		Days:  make([]string, 0, weekDays),
		Loads: make([]float64, 0, weekDays),
		Bands: make([]Band, 0, weekDays),
	}
	for i := -(weekDays - 1); i <= 0; i++ {
		day := teamtime.AddDays(anchor, i)
		load := loads[day]
		profile.Days = append(profile.Days, day)
		profile.Loads = append(profile.Loads, load)
		profile.Bands = append(profile.Bands, DailyLoadBand(load))
	}
	profile.Monotony = Round2(TeamWeekMonotony(profile.Loads))
	return profile
}

// BuildHeatmap lays out the per-player load cells of the 28 days
// ending at anchor. Every listed player gets a cell map, so a player
// with no responses still shows up as an empty row.
func BuildHeatmap(daily DailyLoad, sessions SessionCount, anchor string, playerIDs []string) Heatmap {
	hm := Heatmap{
		Days:  make([]string, 0, heatmapDays),
		Cells: make(map[string]map[string]HeatmapCell, len(playerIDs)),
	}
	for i := -(heatmapDays - 1); i <= 0; i++ {
		hm.Days = append(hm.Days, teamtime.AddDays(anchor, i))
	}

	for _, playerID := range playerIDs {
		cells := make(map[string]HeatmapCell)
		loads := daily.Player(playerID)
		for _, day := range hm.Days {
			load, ok := loads[day]
			if !ok {
				continue
			}
			cells[day] = HeatmapCell{
				Load:     load,
				Band:     DailyLoadBand(load),
				Sessions: sessions[playerID][day],
			}
		}
		hm.Cells[playerID] = cells
	}
	return hm
}
