package surveys

import "time"

// Response is one player's answer to an RPE survey. Incomplete rows
// are common: a response is created when the survey is dispatched and
// only later filled in by the player (score) and the coach (duration).
type Response struct {
	ID              string     `json:"id"`
	PlayerID        string     `json:"playerId"`
	TrainingID      *string    `json:"trainingId,omitempty"`
	RPEScore        int        `json:"rpeScore"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`

	// TrainingDate is the team-local calendar day of the linked
	// training, empty when the response is not linked to one. When
	// set it wins over CreatedAt for day bucketing.
	TrainingDate string `json:"trainingDate,omitempty"`
}

// Completed reports whether the player actually went through the
// survey, as opposed to a dispatched-but-unanswered row.
func (r Response) Completed() bool {
	return r.CompletedAt != nil
}

// Workload is the session RPE-load (sRPE) of this response in AU:
// rpeScore x durationMinutes. Responses without a duration or without
// a score carry no load.
func (r Response) Workload() (float64, bool) {
	if r.RPEScore <= 0 || r.DurationMinutes == nil || *r.DurationMinutes == 0 {
		return 0, false
	}
	return float64(r.RPEScore) * float64(*r.DurationMinutes), true
}

type Schedule struct {
	ID         string    `json:"id"`
	TeamID     string    `json:"teamId"`
	SendTime   string    `json:"sendTime"` // HH:MM, team-local
	SurveyType string    `json:"surveyType"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"createdAt"`
}
