package request

type ToggleSeatRequest struct {
	SeatID int64 `json:"seat_id" validate:"required,gt=0"`
}

type ShowtimeDateRequest struct {
	Date string `validate:"required,datetime=2006-01-02"`
}
