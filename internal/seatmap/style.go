package seatmap

type SeatStyle string

const (
	StyleUnavailable SeatStyle = "unavailable"
	StyleSelected    SeatStyle = "selected"
	StyleVIP         SeatStyle = "vip"
	StyleNormal      SeatStyle = "normal"
)

// StyleOf buckets a seat for display. Reserved wins over selected, selected
// over VIP.
func StyleOf(seat Seat, state SelectionState) SeatStyle {
	switch {
	case seat.IsReserved:
		return StyleUnavailable
	case state.Contains(seat.Name):
		return StyleSelected
	case seat.Type == SeatTypeVIP:
		return StyleVIP
	default:
		return StyleNormal
	}
}
