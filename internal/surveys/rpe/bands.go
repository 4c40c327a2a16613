package rpe

import (
	"encoding/json"
	"fmt"
)

// Band is the severity classification shared by all load metrics.
// Thresholds are fixed product constants, not configuration.
type Band int

const (
	BandLow Band = iota + 1
	BandModerate
	BandHigh
	BandExtreme
)

func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandModerate:
		return "moderate"
	case BandHigh:
		return "high"
	case BandExtreme:
		return "extreme"
	}
	return "unknown"
}

func (b Band) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

func (b *Band) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "low":
		*b = BandLow
	case "moderate":
		*b = BandModerate
	case "high":
		*b = BandHigh
	case "extreme":
		*b = BandExtreme
	default:
		return fmt.Errorf("unknown band: %s", s)
	}
	return nil
}

// DailyLoadBand classifies a single day's load in AU.
func DailyLoadBand(au float64) Band {
	switch {
	case au < 300:
		return BandLow
	case au < 500:
		return BandModerate
	case au < 800:
		return BandHigh
	default:
		return BandExtreme
	}
}

// WeeklyLoadBand classifies a 7-day rolling load in AU.
func WeeklyLoadBand(au float64) Band {
	switch {
	case au <= 600:
		return BandLow
	case au <= 1000:
		return BandModerate
	case au <= 1500:
		return BandHigh
	default:
		return BandExtreme
	}
}

// MonotonyBand classifies a monotony value.
func MonotonyBand(m float64) Band {
	switch {
	case m < 0.8:
		return BandLow
	case m <= 1.3:
		return BandModerate
	case m <= 1.8:
		return BandHigh
	default:
		return BandExtreme
	}
}

// StrainBand classifies a strain value in AU.
func StrainBand(au float64) Band {
	switch {
	case au <= 800:
		return BandLow
	case au <= 1500:
		return BandModerate
	case au <= 2200:
		return BandHigh
	default:
		return BandExtreme
	}
}

// ACWRBand classifies an acute to chronic workload ratio.
func ACWRBand(r float64) Band {
	switch {
	case r < 0.8:
		return BandLow
	case r <= 1.3:
		return BandModerate
	case r <= 1.5:
		return BandHigh
	default:
		return BandExtreme
	}
}

// RPEBand classifies a raw RPE score on the 1 to 10 scale.
func RPEBand(score int) Band {
	switch {
	case score <= 3:
		return BandLow
	case score <= 5:
		return BandModerate
	case score <= 7:
		return BandHigh
	default:
		return BandExtreme
	}
}
