package rpe

import (
	"math"
	"strconv"

	"github.com/uteam-club/uteam/internal/teamtime"
)

// MaxMonotony is the sentinel rendered for a perfectly flat loaded
// week in team week-profile views. Per-player monotony never uses it.
const MaxMonotony = 9.99

// chronicOffsets are the week anchors (days before the acute anchor)
// whose weekly loads form the chronic baseline of the ACWR.
var chronicOffsets = [4]int{-7, -14, -21, -28}

// Value is a metric result that may be undefined. Undefined values
// marshal as JSON null so clients can render an N/A state instead of
// choking on NaN.
type Value struct {
	Value float64
	Valid bool
}

// Of wraps a defined metric value.
func Of(v float64) Value { return Value{Value: v, Valid: true} }

// NA is the undefined metric value.
func NA() Value { return Value{} }

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v.Value, 'f', -1, 64), nil
}

// WeekValues returns the 7 daily loads of the week ending at anchor,
// oldest first, with days absent from the map padded with zero.
func WeekValues(loads DayLoads, anchor string) []float64 {
	week := make([]float64, 0, 7)
	for i := -6; i <= 0; i++ {
		week = append(week, loads[teamtime.AddDays(anchor, i)])
	}
	return week
}

// WeeklyLoad is the sum of the daily loads over the 7 days ending at
// anchor, anchor included.
func WeeklyLoad(loads DayLoads, anchor string) float64 {
	var sum float64
	for _, v := range WeekValues(loads, anchor) {
		sum += v
	}
	return sum
}

// PlayerMonotony is the mean over population standard deviation of a
// player's zero-padded week ending at anchor. A flat week, loaded or
// empty, has zero deviation and no defined monotony: a single athlete
// repeating the exact same load tells us nothing dispersion-wise, so
// the metric stays undefined instead of exploding.
func PlayerMonotony(loads DayLoads, anchor string) Value {
	week := WeekValues(loads, anchor)
	std := popStdDev(week)
	if std == 0 {
		return NA()
	}
	return Of(mean(week) / std)
}

// TeamWeekMonotony computes monotony over an explicit week of daily
// values. Unlike the per-player variant it clamps a flat loaded week
// to the MaxMonotony sentinel, since team week profiles always render
// a number. A flat empty week is still 0.
func TeamWeekMonotony(week []float64) float64 {
	std := popStdDev(week)
	if std == 0 {
		if mean(week) == 0 {
			return 0
		}
		return MaxMonotony
	}
	return mean(week) / std
}

// Strain is weeklyLoad x monotony, undefined whenever monotony is.
func Strain(weeklyLoad float64, monotony Value) Value {
	if !monotony.Valid {
		return NA()
	}
	return Of(weeklyLoad * monotony.Value)
}

// ACWR is the acute to chronic workload ratio at anchor: the weekly
// load of the anchor week over the mean of the four weekly loads
// anchored 7, 14, 21 and 28 days earlier. The chronic windows are
// zero-padded, never history-trimmed. The ratio is undefined when the
// player has no load history at all, when the history spans fewer
// than 3 weeks up to the anchor, or when the chronic mean is zero.
func ACWR(loads DayLoads, anchor string) Value {
	span, ok := historyWeeks(loads, anchor)
	if !ok || span < 3 {
		return NA()
	}

	var chronicSum float64
	for _, off := range chronicOffsets {
		chronicSum += WeeklyLoad(loads, teamtime.AddDays(anchor, off))
	}
	chronic := chronicSum / float64(len(chronicOffsets))
	if chronic == 0 {
		return NA()
	}

	return Of(WeeklyLoad(loads, anchor) / chronic)
}

// historyWeeks reports how many weeks of history the player has up to
// and including the anchor day. Day keys sort lexicographically, so
// the earliest loaded day is the smallest key.
func historyWeeks(loads DayLoads, anchor string) (int, bool) {
	earliest := ""
	for day := range loads {
		if earliest == "" || day < earliest {
			earliest = day
		}
	}
	if earliest == "" || earliest > anchor {
		return 0, false
	}
	days, err := teamtime.DaysBetween(earliest, anchor)
	if err != nil {
		return 0, false
	}
	return days/7 + 1, true
}

// Round2 rounds to two decimals, the precision trend endpoints serve.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func popStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}
