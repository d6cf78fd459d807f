// Package seatmap holds the seat-selection rules for one scheduled showing:
// grid layout, the capped multi-seat cart with its running price, and the
// booking intent produced on confirmation. Every function is pure; callers
// own the state and pass it in and out explicitly.
package seatmap

import "time"

type SeatType string

const (
	SeatTypeNormal SeatType = "NORMAL"
	SeatTypeVIP    SeatType = "VIP"
)

const (
	// MaxSeatsPerBooking caps a single cart.
	MaxSeatsPerBooking = 8

	// NoticeDismissAfter is how long a rejection notice stays visible.
	NoticeDismissAfter = 3 * time.Second
)

// RowLabels is the fixed row order of the auditorium grid.
var RowLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// Seat is one entry of a room's seat inventory for a given schedule.
type Seat struct {
	SeatID     int64    `json:"seatId"`
	Name       string   `json:"name"` // A1, J8, ...
	IsReserved bool     `json:"isReserved"`
	Type       SeatType `json:"type"`
	Price      int64    `json:"price"`
}

type Movie struct {
	Name      string `json:"name"`
	ImagePath string `json:"imagePath"`
}

type Room struct {
	RoomName string `json:"roomName"`
}

// ScheduleDescriptor is the showing a selection belongs to.
type ScheduleDescriptor struct {
	ID        int64  `json:"id"`
	Movie     Movie  `json:"movie"`
	Date      string `json:"date"`      // 2006-01-02
	TimeStart string `json:"timeStart"` // 15:04
	TimeEnd   string `json:"timeEnd"`
	Room      Room   `json:"room"`
}

// BookingIntent is the finalized, not yet persisted seat choice handed to checkout.
type BookingIntent struct {
	ScheduleID int64    `json:"scheduleId"`
	MovieName  string   `json:"movieName"`
	Date       string   `json:"date"`
	TimeStart  string   `json:"timeStart"`
	TimeEnd    string   `json:"timeEnd"`
	RoomName   string   `json:"roomName"`
	SeatNames  []string `json:"seatNames"`
	SeatIDs    []int64  `json:"seatIds"`
	CountSeat  int      `json:"countSeat"`
	Price      int64    `json:"price"`
}
