package response

type WeekDay struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Day     string `json:"day"`  // DD
	IsToday bool   `json:"is_today"`
}

type WeekResponse struct {
	Days        []WeekDay `json:"days"`
	HasPrevious bool      `json:"has_previous"`
	PrevStart   string    `json:"prev_start,omitempty"`
	NextStart   string    `json:"next_start"`
}

type ShowtimeSlot struct {
	ScheduleID int64  `json:"schedule_id"`
	RoomName   string `json:"room_name"`
	TimeStart  string `json:"time_start"`
	TimeEnd    string `json:"time_end"`
}

type MovieShowtimes struct {
	MovieID        int64          `json:"movie_id"`
	MovieName      string         `json:"movie_name"`
	MovieImagePath string         `json:"movie_image_path,omitempty"`
	Slots          []ShowtimeSlot `json:"slots"`
}

type ShowtimesResponse struct {
	Date   string           `json:"date"`
	Movies []MovieShowtimes `json:"movies"`
}
