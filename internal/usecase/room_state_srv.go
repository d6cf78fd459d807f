package usecase

import (
	"context"
	"fmt"

	"cinema-seating/internal/data/repository"
	"cinema-seating/internal/dto/request"
	"cinema-seating/internal/dto/response"
	"cinema-seating/internal/seatmap"
	"cinema-seating/pkg/utils"

	"go.uber.org/zap"
)

// RoomStateService is the read-only admin view of a schedule's seat map.
type RoomStateService interface {
	GetSeatMap(ctx context.Context, scheduleID int64) (*response.RoomStateResponse, error)
	ListIntents(ctx context.Context, scheduleID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingIntentResponse], error)
	GetIntent(ctx context.Context, intentID string) (*response.BookingIntentResponse, error)
}

type roomStateService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomStateService(repo *repository.Repository, log *zap.Logger) RoomStateService {
	return &roomStateService{
		repo: repo,
		log:  log.With(zap.String("service", "room_state")),
	}
}

func (s *roomStateService) GetSeatMap(ctx context.Context, scheduleID int64) (*response.RoomStateResponse, error) {
	schedule, err := s.repo.Schedule.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("get schedule %d: %w", scheduleID, err)
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule %d not found", scheduleID)
	}

	seats, err := s.repo.Seat.FindBySchedule(ctx, scheduleID)
	if err != nil {
		s.log.Error("Failed to get room state", zap.Error(err), zap.Int64("schedule_id", scheduleID))
		return nil, fmt.Errorf("get seats for schedule %d: %w", scheduleID, err)
	}

	reserved := 0
	for _, seat := range seats {
		if seat.IsReserved {
			reserved++
		}
	}

	// no cart here: styles only distinguish reserved, VIP and normal
	rows := seatmap.PartitionIntoLayout(toSeatmapSeats(seats))

	return &response.RoomStateResponse{
		Schedule:      response.ScheduleToResponse(schedule),
		Rows:          response.RowsToResponse(rows, seatmap.Initialize(nil)),
		TotalSeats:    len(seats),
		ReservedSeats: reserved,
	}, nil
}

func (s *roomStateService) ListIntents(ctx context.Context, scheduleID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingIntentResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	intents, err := s.repo.BookingIntent.FindBySchedule(ctx, scheduleID, limit, offset)
	if err != nil {
		s.log.Error("Failed to list booking intents",
			zap.Error(err),
			zap.Int64("schedule_id", scheduleID),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("list booking intents: %w", err)
	}

	total, err := s.repo.BookingIntent.CountBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("count booking intents: %w", err)
	}

	data := make([]response.BookingIntentResponse, len(intents))
	for i, intent := range intents {
		data[i] = response.BookingIntentToResponse(intent)
	}

	s.log.Info("Booking intents retrieved",
		zap.Int64("schedule_id", scheduleID),
		zap.Int("count", len(intents)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(data, req.Page, limit, total), nil
}

func (s *roomStateService) GetIntent(ctx context.Context, intentID string) (*response.BookingIntentResponse, error) {
	id, err := utils.ParseUUID(intentID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking intent ID: %w", err)
	}

	intent, err := s.repo.BookingIntent.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking intent: %w", err)
	}
	if intent == nil {
		return nil, fmt.Errorf("booking intent %s not found", intentID)
	}

	resp := response.BookingIntentToResponse(intent)
	return &resp, nil
}
