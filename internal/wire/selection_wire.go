package wire

import (
	"cinema-seating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSelection(r chi.Router, selectionHandler *adaptor.SelectionHandler) {
	// ==================== SEAT SELECTION ====================
	r.Route("/api/schedules/{scheduleID}/selection", func(r chi.Router) {
		r.Get("/", selectionHandler.OpenSelection)
		r.Delete("/", selectionHandler.Discard)
		r.Post("/toggle", selectionHandler.ToggleSeat)
		r.Post("/confirm", selectionHandler.Confirm)
	})

	// ==================== SESSION STATE ====================
	// GET /api/booking-intent - last confirmed intent, read by checkout
	r.Get("/api/booking-intent", selectionHandler.GetRetainedIntent)

	// transient rejection notice, gone after a few seconds
	r.Get("/api/notice", selectionHandler.GetNotice)
	r.Delete("/api/notice", selectionHandler.DismissNotice)
}
