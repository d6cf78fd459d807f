package usecase

import (
	"errors"
	"time"

	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/seatmap"
)

const (
	NoticeSelectionLimit = "SELECTION_LIMIT_EXCEEDED"
	NoticeNoSeatSelected = "NO_SEAT_SELECTED"
)

// NoticeFor maps an engine rejection to the transient message shown to the user.
func NoticeFor(err error, now time.Time) (*entity.Notice, bool) {
	var code, message string
	switch {
	case errors.Is(err, seatmap.ErrSelectionLimitExceeded):
		code, message = NoticeSelectionLimit, "You can book at most 8 seats per booking."
	case errors.Is(err, seatmap.ErrNoSeatSelected):
		code, message = NoticeNoSeatSelected, "Please select a seat before continuing."
	default:
		return nil, false
	}

	return &entity.Notice{
		Code:      code,
		Message:   message,
		Type:      entity.NoticeTypeError,
		ExpiresAt: now.Add(seatmap.NoticeDismissAfter),
	}, true
}
