package entity

type SeatType string

const (
	SeatTypeNormal SeatType = "NORMAL"
	SeatTypeVIP    SeatType = "VIP"
)

// Seat is a room seat as seen by one schedule (a room-state row): the price
// and reservation flag belong to the schedule, not the room.
type Seat struct {
	ID         int64    `db:"id"`
	RoomID     int64    `db:"room_id"`
	ScheduleID int64    `db:"schedule_id"`
	Name       string   `db:"name"` // A1, A2, B1, etc.
	Type       SeatType `db:"type"`
	Price      int64    `db:"price"`
	IsReserved bool     `db:"is_reserved"`
}
