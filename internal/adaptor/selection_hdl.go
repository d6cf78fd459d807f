package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-seating/internal/dto/request"
	"cinema-seating/internal/usecase"
	"cinema-seating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SelectionHandler struct {
	service usecase.SeatSelectionService
	log     *zap.Logger
}

func NewSelectionHandler(service usecase.SeatSelectionService, log *zap.Logger) *SelectionHandler {
	return &SelectionHandler{
		service: service,
		log:     log.With(zap.String("handler", "selection")),
	}
}

// OpenSelection handles GET /api/schedules/{scheduleID}/selection
func (h *SelectionHandler) OpenSelection(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	scheduleID, err := utils.ParseID(chi.URLParam(r, "scheduleID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid schedule ID", nil)
		return
	}

	selection, err := h.service.OpenSelection(r.Context(), sessionID, scheduleID)
	if err != nil {
		handleServiceError(h.log, w, err, "open selection")
		return
	}

	utils.ResponseSuccess(w, "success", selection)
}

// ToggleSeat handles POST /api/schedules/{scheduleID}/selection/toggle
func (h *SelectionHandler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	scheduleID, err := utils.ParseID(chi.URLParam(r, "scheduleID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid schedule ID", nil)
		return
	}

	var req request.ToggleSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	selection, err := h.service.ToggleSeat(r.Context(), sessionID, scheduleID, &req)
	if err != nil && usecase.IsRejection(err) && selection != nil {
		writeRejection(h.log, w, err, selection, "toggle seat")
		return
	}
	if err != nil {
		handleServiceError(h.log, w, err, "toggle seat")
		return
	}

	utils.ResponseSuccess(w, "success", selection)
}

// Confirm handles POST /api/schedules/{scheduleID}/selection/confirm
func (h *SelectionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	scheduleID, err := utils.ParseID(chi.URLParam(r, "scheduleID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid schedule ID", nil)
		return
	}

	intent, err := h.service.Confirm(r.Context(), sessionID, scheduleID)
	if err != nil {
		handleServiceError(h.log, w, err, "confirm selection")
		return
	}

	utils.ResponseCreated(w, "success", intent)
}

// Discard handles DELETE /api/schedules/{scheduleID}/selection
func (h *SelectionHandler) Discard(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	scheduleID, err := utils.ParseID(chi.URLParam(r, "scheduleID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid schedule ID", nil)
		return
	}

	if err := h.service.Discard(r.Context(), sessionID, scheduleID); err != nil {
		handleServiceError(h.log, w, err, "discard selection")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetRetainedIntent handles GET /api/booking-intent
func (h *SelectionHandler) GetRetainedIntent(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	intent, err := h.service.GetRetainedIntent(r.Context(), sessionID)
	if err != nil {
		handleServiceError(h.log, w, err, "get booking intent")
		return
	}

	utils.ResponseSuccess(w, "success", intent)
}

// GetNotice handles GET /api/notice. Data is null once the notice lapsed.
func (h *SelectionHandler) GetNotice(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	notice, err := h.service.GetNotice(r.Context(), sessionID)
	if err != nil {
		handleServiceError(h.log, w, err, "get notice")
		return
	}

	utils.ResponseSuccess(w, "success", notice)
}

// DismissNotice handles DELETE /api/notice
func (h *SelectionHandler) DismissNotice(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	if err := h.service.DismissNotice(r.Context(), sessionID); err != nil {
		handleServiceError(h.log, w, err, "dismiss notice")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
