package seatmap

import "slices"

// SelectionState is the in-progress cart of one session for one schedule.
// SeatNames and SeatIDs move in lock-step; TotalPrice is the sum of the
// selected seats' prices.
type SelectionState struct {
	SeatNames  []string `json:"seatNames"`
	SeatIDs    []int64  `json:"seatIds"`
	TotalPrice int64    `json:"totalPrice"`
}

// Count returns the number of selected seats.
func (s SelectionState) Count() int {
	return len(s.SeatNames)
}

// Contains reports whether the seat name is in the cart.
func (s SelectionState) Contains(name string) bool {
	return slices.Contains(s.SeatNames, name)
}

func (s SelectionState) clone() SelectionState {
	return SelectionState{
		SeatNames:  append([]string{}, s.SeatNames...),
		SeatIDs:    append([]int64{}, s.SeatIDs...),
		TotalPrice: s.TotalPrice,
	}
}

// Initialize returns the starting cart. A prior selection is restored as-is,
// without checking it against the current seat inventory.
func Initialize(prior *SelectionState) SelectionState {
	if prior == nil {
		return SelectionState{SeatNames: []string{}, SeatIDs: []int64{}}
	}
	return prior.clone()
}

// ToggleSeat adds or removes a seat from the cart and returns the new state.
// Reserved seats leave the state untouched. The input state is never modified.
func ToggleSeat(state SelectionState, seat Seat) (SelectionState, error) {
	if seat.IsReserved {
		return state, nil
	}

	if state.Contains(seat.Name) {
		next := state.clone()
		next.SeatNames = slices.DeleteFunc(next.SeatNames, func(name string) bool { return name == seat.Name })
		next.SeatIDs = slices.DeleteFunc(next.SeatIDs, func(id int64) bool { return id == seat.SeatID })
		next.TotalPrice -= seat.Price
		return next, nil
	}

	if state.Count() >= MaxSeatsPerBooking {
		return state, ErrSelectionLimitExceeded
	}

	next := state.clone()
	next.SeatNames = append(next.SeatNames, seat.Name)
	next.SeatIDs = append(next.SeatIDs, seat.SeatID)
	next.TotalPrice += seat.Price
	return next, nil
}

// Confirm snapshots the schedule and the cart into a BookingIntent.
func Confirm(state SelectionState, schedule ScheduleDescriptor) (BookingIntent, error) {
	if len(state.SeatIDs) < 1 {
		return BookingIntent{}, ErrNoSeatSelected
	}

	snapshot := state.clone()
	return BookingIntent{
		ScheduleID: schedule.ID,
		MovieName:  schedule.Movie.Name,
		Date:       schedule.Date,
		TimeStart:  schedule.TimeStart,
		TimeEnd:    schedule.TimeEnd,
		RoomName:   schedule.Room.RoomName,
		SeatNames:  snapshot.SeatNames,
		SeatIDs:    snapshot.SeatIDs,
		CountSeat:  len(snapshot.SeatIDs),
		Price:      snapshot.TotalPrice,
	}, nil
}

// FromIntent rebuilds a cart from a previously confirmed intent, used when the
// user comes back from checkout to the same schedule.
func FromIntent(intent BookingIntent) SelectionState {
	return SelectionState{
		SeatNames:  append([]string{}, intent.SeatNames...),
		SeatIDs:    append([]int64{}, intent.SeatIDs...),
		TotalPrice: intent.Price,
	}
}
