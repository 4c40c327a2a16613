package trainings

import "time"

const (
	TypeTraining = "TRAINING"
	TypeGym      = "GYM"
	TypeMatch    = "MATCH"
)

type Training struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"teamId"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Date      string    `json:"date"` // team-local calendar day, YYYY-MM-DD
	Time      string    `json:"time"` // HH:MM
	CreatedAt time.Time `json:"createdAt"`

	// ResponsesCount is the number of completed RPE survey responses
	// linked to this training; filled only by ListWithResponses.
	ResponsesCount int `json:"responsesCount,omitempty"`
}
