package teams

import "time"

type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ClubID    string    `json:"clubId"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"createdAt"`
}

type Player struct {
	ID         string    `json:"id"`
	TeamID     string    `json:"teamId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	TelegramID *int64    `json:"telegramId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
