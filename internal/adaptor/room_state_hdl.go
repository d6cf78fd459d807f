package adaptor

import (
	"net/http"

	"cinema-seating/internal/dto/request"
	"cinema-seating/internal/usecase"
	"cinema-seating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomStateHandler struct {
	service usecase.RoomStateService
	log     *zap.Logger
}

func NewRoomStateHandler(service usecase.RoomStateService, log *zap.Logger) *RoomStateHandler {
	return &RoomStateHandler{
		service: service,
		log:     log.With(zap.String("handler", "room_state")),
	}
}

// GetSeatMap handles GET /api/room-states/{scheduleID}
func (h *RoomStateHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := utils.ParseID(chi.URLParam(r, "scheduleID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid schedule ID", nil)
		return
	}

	seatMap, err := h.service.GetSeatMap(r.Context(), scheduleID)
	if err != nil {
		handleServiceError(h.log, w, err, "get room state")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}

// ListIntents handles GET /api/room-states/{scheduleID}/intents
func (h *RoomStateHandler) ListIntents(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := utils.ParseID(chi.URLParam(r, "scheduleID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid schedule ID", nil)
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	intents, err := h.service.ListIntents(r.Context(), scheduleID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "list booking intents")
		return
	}

	utils.ResponseSuccess(w, "success", intents)
}

// GetIntent handles GET /api/booking-intents/{id}
func (h *RoomStateHandler) GetIntent(w http.ResponseWriter, r *http.Request) {
	intentID := chi.URLParam(r, "id")
	if intentID == "" {
		utils.ResponseBadRequest(w, "Booking intent ID is required", nil)
		return
	}

	intent, err := h.service.GetIntent(r.Context(), intentID)
	if err != nil {
		handleServiceError(h.log, w, err, "get booking intent by ID")
		return
	}

	utils.ResponseSuccess(w, "success", intent)
}
