package adaptor

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"cinema-seating/internal/seatmap"
	"cinema-seating/internal/usecase"
	"cinema-seating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Selection     *SelectionHandler
	RoomState     *RoomStateHandler
	Showtime      *ShowtimeHandler
	PaymentResult *PaymentResultHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Selection:     NewSelectionHandler(service.Selection, log),
		RoomState:     NewRoomStateHandler(service.RoomState, log),
		Showtime:      NewShowtimeHandler(service.Showtime, log),
		PaymentResult: NewPaymentResultHandler(service.PaymentResult, log),
	}
}

func sessionFrom(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseBadRequest(w, "Session is required", nil)
		return uuid.Nil, false
	}
	return sessionID, true
}

// handleServiceError maps usecase errors to responses. Engine rejections come
// first and carry the notice code; everything else is matched on the message.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	if usecase.IsRejection(err) {
		writeRejection(log, w, err, nil, operation)
		return
	}

	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error(operation+" failed - internal error",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// writeRejection answers 409 for the seat limit and 422 for an empty confirm.
// data, when set, is the unchanged state the client should keep showing.
func writeRejection(log *zap.Logger, w http.ResponseWriter, err error, data any, operation string) {
	notice, _ := usecase.NoticeFor(err, time.Now())
	log.Info(operation+" rejected",
		zap.String("operation", operation),
		zap.String("code", notice.Code))

	status := http.StatusUnprocessableEntity
	if errors.Is(err, seatmap.ErrSelectionLimitExceeded) {
		status = http.StatusConflict
	}
	utils.ResponseJSON(w, status, false, notice.Message, data, map[string]string{"code": notice.Code})
}
