package wire

import (
	"cinema-seating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler) {
	// GET /api/showtimes?date=2024-11-01 - schedules grouped by movie
	r.Get("/api/showtimes", showtimeHandler.GetByDate)

	// GET /api/showtimes/week?start=2024-11-01 - 7-day date strip
	r.Get("/api/showtimes/week", showtimeHandler.GetWeek)
}
