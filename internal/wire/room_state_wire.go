package wire

import (
	"cinema-seating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoomState(r chi.Router, roomStateHandler *adaptor.RoomStateHandler) {
	// ==================== ADMIN (read-only) ====================
	r.Route("/api/room-states/{scheduleID}", func(r chi.Router) {
		r.Get("/", roomStateHandler.GetSeatMap)
		r.Get("/intents", roomStateHandler.ListIntents)
	})

	r.Get("/api/booking-intents/{id}", roomStateHandler.GetIntent)
}
