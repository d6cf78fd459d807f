// Package event defines message payloads published to the broker.
package event

import "time"

// BookingIntentConfirmed is published once a seat selection has been
// confirmed and stored. Consumers (checkout, analytics) get the full
// snapshot without querying the database.
type BookingIntentConfirmed struct {
	IntentID    string    `json:"intent_id"`
	Reference   string    `json:"reference"`
	SessionID   string    `json:"session_id"`
	ScheduleID  int64     `json:"schedule_id"`
	MovieName   string    `json:"movie_name"`
	RoomName    string    `json:"room_name"`
	Date        string    `json:"date"`
	TimeStart   string    `json:"time_start"`
	TimeEnd     string    `json:"time_end"`
	SeatNames   []string  `json:"seat_names"`
	SeatIDs     []int64   `json:"seat_ids"`
	CountSeat   int       `json:"count_seat"`
	Price       int64     `json:"price"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
