package teamtime

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// DayKeyLayout is the calendar-day key format used everywhere a survey
// response, a training or a load value is bucketed into a day.
const DayKeyLayout = "2006-01-02"

// DefaultTimezone is used for teams without an explicit timezone set.
const DefaultTimezone = "Europe/Moscow"

// Location resolves an IANA zone name into a *time.Location, falling
// back to the default club timezone and ultimately to UTC.
func Location(name string) *time.Location {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err == nil {
		return loc
	}
	log.Warnf("unknown timezone [%s], falling back to %s", name, DefaultTimezone)
	loc, err = time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DayKey converts a point in time into the calendar-day key of the
// given team location. All load bucketing goes through here so the
// same instant always lands in the same team-local day.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayKeyLayout)
}

// ParseDayKey parses a day key back into a time (midnight, UTC).
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.Parse(DayKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day key [%s]: %w", key, err)
	}
	return t, nil
}

// AddDays shifts a day key by the given number of calendar days.
// An unparseable key is returned unchanged; callers validate keys at
// the boundary, not here.
func AddDays(key string, days int) string {
	t, err := ParseDayKey(key)
	if err != nil {
		return key
	}
	return t.AddDate(0, 0, days).Format(DayKeyLayout)
}

// DaysBetween returns the number of calendar days from one key to
// another (positive when to is after from).
func DaysBetween(from, to string) (int, error) {
	fromT, err := ParseDayKey(from)
	if err != nil {
		return 0, err
	}
	toT, err := ParseDayKey(to)
	if err != nil {
		return 0, err
	}
	return int(toT.Sub(fromT).Hours() / 24), nil
}
