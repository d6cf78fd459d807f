package entity

import (
	"time"

	"github.com/google/uuid"
)

// Selection is an in-progress cart kept between requests of one session.
type Selection struct {
	SessionID  uuid.UUID `json:"session_id"`
	ScheduleID int64     `json:"schedule_id"`
	SeatNames  []string  `json:"seat_names"`
	SeatIDs    []int64   `json:"seat_ids"`
	TotalPrice int64     `json:"total_price"`
	UpdatedAt  time.Time `json:"updated_at"`
}
