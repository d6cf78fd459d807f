package entity

import "github.com/google/uuid"

// BookingIntent is a confirmed seat selection waiting for checkout.
type BookingIntent struct {
	BaseSimple
	Reference  string    `db:"reference"`
	SessionID  uuid.UUID `db:"session_id"`
	ScheduleID int64     `db:"schedule_id"`
	MovieName  string    `db:"movie_name"`
	RoomName   string    `db:"room_name"`
	Date       string    `db:"date"`
	TimeStart  string    `db:"time_start"`
	TimeEnd    string    `db:"time_end"`
	SeatNames  []string  `db:"seat_names"`
	SeatIDs    []int64   `db:"seat_ids"`
	CountSeat  int       `db:"count_seat"`
	Price      int64     `db:"price"`
}
