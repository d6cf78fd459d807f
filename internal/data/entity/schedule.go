package entity

// Schedule is one showing joined with its movie and room.
type Schedule struct {
	ID             int64  `db:"id"`
	MovieID        int64  `db:"movie_id"`
	RoomID         int64  `db:"room_id"`
	MovieName      string `db:"movie_name"`
	MovieImagePath string `db:"movie_image_path"`
	RoomName       string `db:"room_name"`
	Date           string `db:"date"`       // YYYY-MM-DD
	TimeStart      string `db:"time_start"` // HH:MM
	TimeEnd        string `db:"time_end"`
}
