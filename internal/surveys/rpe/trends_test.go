package rpe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uteam-club/uteam/internal/surveys/rpe"
	"github.com/uteam-club/uteam/internal/teamtime"
)

func TestTrendAnchors_EightWeeksOldestFirst(t *testing.T) {
	points := rpe.WeeklyLoadTrend(rpe.DayLoads{}, "2026-03-10")
	require.Len(t, points, 8)
	assert.Equal(t, "2026-01-20", points[0].Day)
	assert.Equal(t, "2026-03-03", points[6].Day)
	assert.Equal(t, "2026-03-10", points[7].Day)
}

func TestWeeklyLoadTrend(t *testing.T) {
	anchor := "2026-03-10"
	loads := rpe.DayLoads{
		anchor:                     640,
		teamtime.AddDays(anchor, -1): 400,
		teamtime.AddDays(anchor, -7): 500,
	}

	points := rpe.WeeklyLoadTrend(loads, anchor)
	require.Len(t, points, 8)

	last := points[7]
	assert.InDelta(t, 1040, last.Load, 0.001)
	assert.Equal(t, rpe.BandHigh, last.Band)

	prev := points[6]
	assert.InDelta(t, 500, prev.Load, 0.001)
	assert.Equal(t, rpe.BandLow, prev.Band)

	// weeks before any data are flat zero, not missing
	assert.Zero(t, points[0].Load)
	assert.Equal(t, rpe.BandLow, points[0].Band)
}

func TestTeamACWRTrend_SpreadOverPlayers(t *testing.T) {
	anchor := "2026-03-10"
	daily := rpe.DailyLoad{
		"p1": chronicLoads(anchor, 600, 500),
		"p2": chronicLoads(anchor, 500, 500),
	}

	points := rpe.TeamACWRTrend(daily, anchor)
	require.Len(t, points, 8)

	last := points[7]
	assert.Equal(t, anchor, last.Day)
	// p1 at 600/500 = 1.2, p2 at 500/500 = 1.0
	assert.InDelta(t, 1.1, last.Avg, 0.001)
	assert.InDelta(t, 1.0, last.Min, 0.001)
	assert.InDelta(t, 1.2, last.Max, 0.001)
}

func TestTeamACWRTrend_NoDefinedRatiosCollapsesToZeros(t *testing.T) {
	points := rpe.TeamACWRTrend(rpe.DailyLoad{}, "2026-03-10")
	require.Len(t, points, 8)
	for _, p := range points {
		assert.Zero(t, p.Avg)
		assert.Zero(t, p.Min)
		assert.Zero(t, p.Max)
	}
}

func TestPlayerACWRTrend(t *testing.T) {
	anchor := "2026-03-10"
	loads := chronicLoads(anchor, 600, 500)

	points := rpe.PlayerACWRTrend(loads, anchor)
	require.Len(t, points, 8)

	last := points[7]
	assert.InDelta(t, 1.2, last.Avg, 0.001)
	assert.Equal(t, last.Avg, last.Min)
	assert.Equal(t, last.Avg, last.Max)

	// the oldest anchors predate the history, undefined renders zero
	assert.Zero(t, points[0].Avg)
}

func TestStrainTrend_FlatWeekUsesSentinel(t *testing.T) {
	anchor := "2026-03-10"
	loads := rpe.DayLoads{}
	for i := -6; i <= 0; i++ {
		loads[teamtime.AddDays(anchor, i)] = 100
	}

	points := rpe.StrainTrend(loads, anchor)
	require.Len(t, points, 8)

	last := points[7]
	assert.InDelta(t, 700, last.WeeklyLoad, 0.001)
	assert.InDelta(t, 9.99, last.Monotony, 0.001)
	// round(700 * 9.99)
	assert.InDelta(t, 6993, last.Strain, 0.001)
	assert.Equal(t, rpe.BandExtreme, last.Band)
}

func TestStrainTrend_EmptyWeekRendersZeros(t *testing.T) {
	points := rpe.StrainTrend(rpe.DayLoads{}, "2026-03-10")
	for _, p := range points {
		assert.Zero(t, p.WeeklyLoad)
		assert.Zero(t, p.Monotony)
		assert.Zero(t, p.Strain)
		assert.Equal(t, rpe.BandLow, p.Band)
	}
}

func TestBuildWeekProfile(t *testing.T) {
	anchor := "2026-03-10"
	loads := rpe.DayLoads{
		anchor:                       640,
		teamtime.AddDays(anchor, -3): 300,
	}

	profile := rpe.BuildWeekProfile(loads, anchor)
	require.Len(t, profile.Days, 7)
	require.Len(t, profile.Loads, 7)
	require.Len(t, profile.Bands, 7)

	assert.Equal(t, teamtime.AddDays(anchor, -6), profile.Days[0])
	assert.Equal(t, anchor, profile.Days[6])
	assert.Equal(t, []float64{0, 0, 0, 300, 0, 0, 640}, profile.Loads)
	assert.Equal(t, rpe.BandModerate, profile.Bands[3])
	assert.Equal(t, rpe.BandHigh, profile.Bands[6])
	assert.Greater(t, profile.Monotony, 0.0)
}

func TestBuildWeekProfile_FlatLoadedWeekSentinelMonotony(t *testing.T) {
	anchor := "2026-03-10"
	loads := rpe.DayLoads{}
	for i := -6; i <= 0; i++ {
		loads[teamtime.AddDays(anchor, i)] = 400
	}

	profile := rpe.BuildWeekProfile(loads, anchor)
	assert.InDelta(t, 9.99, profile.Monotony, 0.001)
}

func TestBuildHeatmap(t *testing.T) {
	anchor := "2026-03-10"
	daily := rpe.DailyLoad{
		"p1": {anchor: 640, teamtime.AddDays(anchor, -27): 300},
		"p2": {teamtime.AddDays(anchor, -30): 999},
	}
	sessions := rpe.SessionCount{
		"p1": {anchor: 2, teamtime.AddDays(anchor, -27): 1},
	}

	hm := rpe.BuildHeatmap(daily, sessions, anchor, []string{"p1", "p2", "p3"})

	require.Len(t, hm.Days, 28)
	assert.Equal(t, teamtime.AddDays(anchor, -27), hm.Days[0])
	assert.Equal(t, anchor, hm.Days[27])

	require.Contains(t, hm.Cells, "p1")
	cell := hm.Cells["p1"][anchor]
	assert.InDelta(t, 640, cell.Load, 0.001)
	assert.Equal(t, rpe.BandHigh, cell.Band)
	assert.Equal(t, 2, cell.Sessions)

	// first day of the window still included
	oldest := hm.Cells["p1"][hm.Days[0]]
	assert.InDelta(t, 300, oldest.Load, 0.001)

	// p2's only load is older than the window
	assert.Empty(t, hm.Cells["p2"])
	// a rostered player with no data still gets a row
	require.Contains(t, hm.Cells, "p3")
	assert.Empty(t, hm.Cells["p3"])
}

// chronicLoads builds a history with acute AU on the anchor day and
// chronic AU on each of the four chronic week anchors.
func chronicLoads(anchor string, acute, chronic float64) rpe.DayLoads {
	loads := rpe.DayLoads{anchor: acute}
	for _, off := range []int{-7, -14, -21, -28} {
		loads[teamtime.AddDays(anchor, off)] = chronic
	}
	return loads
}
