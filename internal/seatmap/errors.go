package seatmap

import "errors"

var (
	ErrSelectionLimitExceeded = errors.New("selection limit exceeded: at most 8 seats per booking")
	ErrNoSeatSelected         = errors.New("no seat selected")
)
