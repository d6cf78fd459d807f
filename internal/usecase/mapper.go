package usecase

import (
	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/seatmap"
)

func toSeatmapSeat(seat *entity.Seat) seatmap.Seat {
	return seatmap.Seat{
		SeatID:     seat.ID,
		Name:       seat.Name,
		IsReserved: seat.IsReserved,
		Type:       seatmap.SeatType(seat.Type),
		Price:      seat.Price,
	}
}

func toSeatmapSeats(seats []*entity.Seat) []seatmap.Seat {
	out := make([]seatmap.Seat, len(seats))
	for i, seat := range seats {
		out[i] = toSeatmapSeat(seat)
	}
	return out
}

func toDescriptor(schedule *entity.Schedule) seatmap.ScheduleDescriptor {
	return seatmap.ScheduleDescriptor{
		ID: schedule.ID,
		Movie: seatmap.Movie{
			Name:      schedule.MovieName,
			ImagePath: schedule.MovieImagePath,
		},
		Date:      schedule.Date,
		TimeStart: schedule.TimeStart,
		TimeEnd:   schedule.TimeEnd,
		Room:      seatmap.Room{RoomName: schedule.RoomName},
	}
}

func selectionToState(selection *entity.Selection) seatmap.SelectionState {
	return seatmap.SelectionState{
		SeatNames:  selection.SeatNames,
		SeatIDs:    selection.SeatIDs,
		TotalPrice: selection.TotalPrice,
	}
}

func intentToSeatmap(intent *entity.BookingIntent) seatmap.BookingIntent {
	return seatmap.BookingIntent{
		ScheduleID: intent.ScheduleID,
		MovieName:  intent.MovieName,
		Date:       intent.Date,
		TimeStart:  intent.TimeStart,
		TimeEnd:    intent.TimeEnd,
		RoomName:   intent.RoomName,
		SeatNames:  intent.SeatNames,
		SeatIDs:    intent.SeatIDs,
		CountSeat:  intent.CountSeat,
		Price:      intent.Price,
	}
}
