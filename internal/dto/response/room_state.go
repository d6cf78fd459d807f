package response

type RoomStateResponse struct {
	Schedule      ScheduleResponse `json:"schedule"`
	Rows          []RowView        `json:"rows"`
	TotalSeats    int              `json:"total_seats"`
	ReservedSeats int              `json:"reserved_seats"`
}
