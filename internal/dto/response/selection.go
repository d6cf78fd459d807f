package response

import (
	"time"

	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/seatmap"
	"cinema-seating/pkg/utils"
)

type SeatView struct {
	SeatID     int64             `json:"seat_id"`
	Name       string            `json:"name"`
	Type       seatmap.SeatType  `json:"type"`
	Price      int64             `json:"price"`
	IsReserved bool              `json:"is_reserved"`
	Style      seatmap.SeatStyle `json:"style"`
}

type RowView struct {
	RowLabel string     `json:"row_label"`
	Left     []SeatView `json:"left"`
	Center   []SeatView `json:"center"`
	Right    []SeatView `json:"right"`
}

type ScheduleResponse struct {
	ID             int64  `json:"id"`
	MovieName      string `json:"movie_name"`
	MovieImagePath string `json:"movie_image_path,omitempty"`
	RoomName       string `json:"room_name"`
	Date           string `json:"date"`
	TimeStart      string `json:"time_start"`
	TimeEnd        string `json:"time_end"`
}

type SelectionSummary struct {
	SeatNames    []string `json:"seat_names"`
	SeatIDs      []int64  `json:"seat_ids"`
	CountSeat    int      `json:"count_seat"`
	TotalPrice   int64    `json:"total_price"`
	TotalDisplay string   `json:"total_display"`
	MaxSeats     int      `json:"max_seats"`
}

type NoticeResponse struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Type      entity.NoticeType `json:"type"`
	ExpiresAt time.Time         `json:"expires_at"`
}

type SeatSelectionResponse struct {
	Schedule  ScheduleResponse `json:"schedule"`
	Rows      []RowView        `json:"rows"`
	Selection SelectionSummary `json:"selection"`
	Notice    *NoticeResponse  `json:"notice,omitempty"`
}

type BookingIntentResponse struct {
	ID           string    `json:"id"`
	Reference    string    `json:"reference"`
	ScheduleID   int64     `json:"schedule_id"`
	MovieName    string    `json:"movie_name"`
	RoomName     string    `json:"room_name"`
	Date         string    `json:"date"`
	TimeStart    string    `json:"time_start"`
	TimeEnd      string    `json:"time_end"`
	SeatNames    []string  `json:"seat_names"`
	SeatIDs      []int64   `json:"seat_ids"`
	CountSeat    int       `json:"count_seat"`
	Price        int64     `json:"price"`
	PriceDisplay string    `json:"price_display"`
	CreatedAt    time.Time `json:"created_at"`
}

// Helper converters
func ScheduleToResponse(schedule *entity.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:             schedule.ID,
		MovieName:      schedule.MovieName,
		MovieImagePath: schedule.MovieImagePath,
		RoomName:       schedule.RoomName,
		Date:           schedule.Date,
		TimeStart:      schedule.TimeStart,
		TimeEnd:        schedule.TimeEnd,
	}
}

func RowsToResponse(rows []seatmap.RowLayout, state seatmap.SelectionState) []RowView {
	views := make([]RowView, len(rows))
	for i, row := range rows {
		views[i] = RowView{
			RowLabel: row.RowLabel,
			Left:     seatsToView(row.Left, state),
			Center:   seatsToView(row.Center, state),
			Right:    seatsToView(row.Right, state),
		}
	}
	return views
}

func seatsToView(seats []seatmap.Seat, state seatmap.SelectionState) []SeatView {
	views := make([]SeatView, len(seats))
	for i, seat := range seats {
		views[i] = SeatView{
			SeatID:     seat.SeatID,
			Name:       seat.Name,
			Type:       seat.Type,
			Price:      seat.Price,
			IsReserved: seat.IsReserved,
			Style:      seatmap.StyleOf(seat, state),
		}
	}
	return views
}

func SelectionToSummary(state seatmap.SelectionState) SelectionSummary {
	return SelectionSummary{
		SeatNames:    state.SeatNames,
		SeatIDs:      state.SeatIDs,
		CountSeat:    state.Count(),
		TotalPrice:   state.TotalPrice,
		TotalDisplay: utils.FormatVND(state.TotalPrice),
		MaxSeats:     seatmap.MaxSeatsPerBooking,
	}
}

func NoticeToResponse(notice *entity.Notice) *NoticeResponse {
	if notice == nil {
		return nil
	}
	return &NoticeResponse{
		Code:      notice.Code,
		Message:   notice.Message,
		Type:      notice.Type,
		ExpiresAt: notice.ExpiresAt,
	}
}

func BookingIntentToResponse(intent *entity.BookingIntent) BookingIntentResponse {
	return BookingIntentResponse{
		ID:           intent.ID.String(),
		Reference:    intent.Reference,
		ScheduleID:   intent.ScheduleID,
		MovieName:    intent.MovieName,
		RoomName:     intent.RoomName,
		Date:         intent.Date,
		TimeStart:    intent.TimeStart,
		TimeEnd:      intent.TimeEnd,
		SeatNames:    intent.SeatNames,
		SeatIDs:      intent.SeatIDs,
		CountSeat:    intent.CountSeat,
		Price:        intent.Price,
		PriceDisplay: utils.FormatVND(intent.Price),
		CreatedAt:    intent.CreatedAt,
	}
}
