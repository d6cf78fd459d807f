package adaptor

import (
	"net/http"
	"time"

	"cinema-seating/internal/usecase"
	"cinema-seating/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// GetByDate handles GET /api/showtimes?date=YYYY-MM-DD (defaults to today)
func (h *ShowtimeHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(utils.DateLayout)
	}

	showtimes, err := h.service.GetByDate(r.Context(), date)
	if err != nil {
		handleServiceError(h.log, w, err, "get showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// GetWeek handles GET /api/showtimes/week?start=YYYY-MM-DD
func (h *ShowtimeHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	week, err := h.service.GetWeek(r.Context(), r.URL.Query().Get("start"))
	if err != nil {
		handleServiceError(h.log, w, err, "get week")
		return
	}

	utils.ResponseSuccess(w, "success", week)
}
