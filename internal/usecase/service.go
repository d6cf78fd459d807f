package usecase

import (
	"cinema-seating/internal/data/repository"
	"cinema-seating/pkg/broker"

	"go.uber.org/zap"
)

type Service struct {
	Selection     SeatSelectionService
	RoomState     RoomStateService
	Showtime      ShowtimeService
	PaymentResult PaymentResultService
}

func NewService(repo *repository.Repository, publisher broker.Publisher, log *zap.Logger) *Service {
	return &Service{
		Selection:     NewSeatSelectionService(repo, publisher, log),
		RoomState:     NewRoomStateService(repo, log),
		Showtime:      NewShowtimeService(repo, log),
		PaymentResult: NewPaymentResultService(log),
	}
}
