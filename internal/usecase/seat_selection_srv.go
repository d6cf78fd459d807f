package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/data/repository"
	"cinema-seating/internal/dto/event"
	"cinema-seating/internal/dto/request"
	"cinema-seating/internal/dto/response"
	"cinema-seating/internal/seatmap"
	"cinema-seating/pkg/broker"
	"cinema-seating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatSelectionService interface {
	OpenSelection(ctx context.Context, sessionID uuid.UUID, scheduleID int64) (*response.SeatSelectionResponse, error)
	ToggleSeat(ctx context.Context, sessionID uuid.UUID, scheduleID int64, req *request.ToggleSeatRequest) (*response.SeatSelectionResponse, error)
	Confirm(ctx context.Context, sessionID uuid.UUID, scheduleID int64) (*response.BookingIntentResponse, error)
	Discard(ctx context.Context, sessionID uuid.UUID, scheduleID int64) error

	GetRetainedIntent(ctx context.Context, sessionID uuid.UUID) (*response.BookingIntentResponse, error)
	GetNotice(ctx context.Context, sessionID uuid.UUID) (*response.NoticeResponse, error)
	DismissNotice(ctx context.Context, sessionID uuid.UUID) error
}

type seatSelectionService struct {
	repo      *repository.Repository
	publisher broker.Publisher
	log       *zap.Logger
	now       func() time.Time
}

func NewSeatSelectionService(repo *repository.Repository, publisher broker.Publisher, log *zap.Logger) SeatSelectionService {
	return &seatSelectionService{
		repo:      repo,
		publisher: publisher,
		log:       log.With(zap.String("service", "seat_selection")),
		now:       time.Now,
	}
}

func (s *seatSelectionService) OpenSelection(ctx context.Context, sessionID uuid.UUID, scheduleID int64) (*response.SeatSelectionResponse, error) {
	schedule, err := s.findSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	var state seatmap.SelectionState
	_, err = s.repo.Selection.Update(ctx, sessionID, scheduleID, func(current *entity.Selection) (*entity.Selection, error) {
		state = s.hydrate(ctx, sessionID, scheduleID, current)
		return s.toEntity(sessionID, scheduleID, state), nil
	})
	if err != nil {
		return nil, fmt.Errorf("open selection: %w", err)
	}

	s.log.Info("Seat selection opened",
		zap.String("session_id", sessionID.String()),
		zap.Int64("schedule_id", scheduleID),
		zap.Int("seat_count", state.Count()),
	)

	return s.buildSelectionResponse(ctx, sessionID, schedule, state)
}

func (s *seatSelectionService) ToggleSeat(ctx context.Context, sessionID uuid.UUID, scheduleID int64, req *request.ToggleSeatRequest) (*response.SeatSelectionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Toggle seat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	schedule, err := s.findSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	seat, err := s.repo.Seat.FindByScheduleAndID(ctx, scheduleID, req.SeatID)
	if err != nil {
		return nil, fmt.Errorf("get seat %d: %w", req.SeatID, err)
	}
	if seat == nil {
		return nil, fmt.Errorf("seat %d not found in schedule %d", req.SeatID, scheduleID)
	}

	if seat.IsReserved {
		s.log.Debug("Toggle on reserved seat ignored",
			zap.Int64("schedule_id", scheduleID),
			zap.String("seat", seat.Name),
		)
	}

	// state is the cart as read inside the last update attempt
	var state, next seatmap.SelectionState
	var rejection error
	_, err = s.repo.Selection.Update(ctx, sessionID, scheduleID, func(current *entity.Selection) (*entity.Selection, error) {
		state = s.hydrate(ctx, sessionID, scheduleID, current)

		next, rejection = seatmap.ToggleSeat(state, toSeatmapSeat(seat))
		if rejection != nil {
			return nil, rejection
		}
		return s.toEntity(sessionID, scheduleID, next), nil
	})

	if rejection != nil {
		s.log.Warn("Seat toggle rejected",
			zap.Error(rejection),
			zap.String("session_id", sessionID.String()),
			zap.Int64("schedule_id", scheduleID),
			zap.String("seat", seat.Name),
			zap.Int("seat_count", state.Count()),
		)
		s.pushNotice(ctx, sessionID, rejection)

		// the unchanged cart goes back with the rejection
		resp, buildErr := s.buildSelectionResponse(ctx, sessionID, schedule, state)
		if buildErr != nil {
			return nil, buildErr
		}
		return resp, fmt.Errorf("toggle seat %s: %w", seat.Name, rejection)
	}
	if err != nil {
		return nil, fmt.Errorf("save selection: %w", err)
	}

	s.log.Info("Seat toggled",
		zap.String("session_id", sessionID.String()),
		zap.Int64("schedule_id", scheduleID),
		zap.String("seat", seat.Name),
		zap.Int("seat_count", next.Count()),
		zap.Int64("total_price", next.TotalPrice),
	)

	return s.buildSelectionResponse(ctx, sessionID, schedule, next)
}

func (s *seatSelectionService) Confirm(ctx context.Context, sessionID uuid.UUID, scheduleID int64) (*response.BookingIntentResponse, error) {
	schedule, err := s.findSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	// claiming the cart makes a concurrent second confirm see it empty
	taken, err := s.repo.Selection.Take(ctx, sessionID, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("claim selection: %w", err)
	}

	state := seatmap.Initialize(nil)
	if taken != nil {
		prior := selectionToState(taken)
		state = seatmap.Initialize(&prior)
	}

	intent, err := seatmap.Confirm(state, toDescriptor(schedule))
	if err != nil {
		s.log.Warn("Confirm rejected",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
			zap.Int64("schedule_id", scheduleID),
		)
		s.restoreCart(ctx, taken)
		s.pushNotice(ctx, sessionID, err)
		return nil, fmt.Errorf("confirm schedule %d: %w", scheduleID, err)
	}

	now := s.now()
	record := &entity.BookingIntent{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
		},
		Reference:  utils.GenerateIntentReference(now),
		SessionID:  sessionID,
		ScheduleID: intent.ScheduleID,
		MovieName:  intent.MovieName,
		RoomName:   intent.RoomName,
		Date:       intent.Date,
		TimeStart:  intent.TimeStart,
		TimeEnd:    intent.TimeEnd,
		SeatNames:  intent.SeatNames,
		SeatIDs:    intent.SeatIDs,
		CountSeat:  intent.CountSeat,
		Price:      intent.Price,
	}

	if err := s.repo.BookingIntent.Create(ctx, record); err != nil {
		s.restoreCart(ctx, taken)
		return nil, fmt.Errorf("store booking intent: %w", err)
	}

	if err := s.repo.IntentStore.Save(ctx, record); err != nil {
		s.log.Warn("Failed to retain booking intent",
			zap.Error(err),
			zap.String("intent_id", record.ID.String()),
		)
	}

	s.publishConfirmed(ctx, record)

	s.log.Info("Booking intent confirmed",
		zap.String("intent_id", record.ID.String()),
		zap.String("reference", record.Reference),
		zap.String("session_id", sessionID.String()),
		zap.Int64("schedule_id", scheduleID),
		zap.Strings("seats", record.SeatNames),
		zap.Int64("price", record.Price),
	)

	resp := response.BookingIntentToResponse(record)
	return &resp, nil
}

func (s *seatSelectionService) Discard(ctx context.Context, sessionID uuid.UUID, scheduleID int64) error {
	if err := s.repo.Selection.Delete(ctx, sessionID, scheduleID); err != nil {
		return fmt.Errorf("discard selection: %w", err)
	}

	s.log.Info("Seat selection discarded",
		zap.String("session_id", sessionID.String()),
		zap.Int64("schedule_id", scheduleID),
	)
	return nil
}

func (s *seatSelectionService) GetRetainedIntent(ctx context.Context, sessionID uuid.UUID) (*response.BookingIntentResponse, error) {
	intent, err := s.repo.IntentStore.Find(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get retained intent: %w", err)
	}
	if intent == nil {
		return nil, fmt.Errorf("booking intent not found for session %s", sessionID.String())
	}

	resp := response.BookingIntentToResponse(intent)
	return &resp, nil
}

func (s *seatSelectionService) GetNotice(ctx context.Context, sessionID uuid.UUID) (*response.NoticeResponse, error) {
	notice, err := s.repo.Notice.Find(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get notice: %w", err)
	}
	return response.NoticeToResponse(notice), nil
}

func (s *seatSelectionService) DismissNotice(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.repo.Notice.Dismiss(ctx, sessionID); err != nil {
		return fmt.Errorf("dismiss notice: %w", err)
	}
	return nil
}

// ==================== HELPER METHODS ====================

func (s *seatSelectionService) findSchedule(ctx context.Context, scheduleID int64) (*entity.Schedule, error) {
	schedule, err := s.repo.Schedule.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("get schedule %d: %w", scheduleID, err)
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule %d not found", scheduleID)
	}
	return schedule, nil
}

// hydrate returns the cart to continue from: the stored one, else the
// session's retained intent when it is for the same schedule, else empty.
func (s *seatSelectionService) hydrate(ctx context.Context, sessionID uuid.UUID, scheduleID int64, saved *entity.Selection) seatmap.SelectionState {
	if saved != nil {
		prior := selectionToState(saved)
		return seatmap.Initialize(&prior)
	}

	intent, err := s.repo.IntentStore.Find(ctx, sessionID)
	if err != nil {
		s.log.Warn("Retained intent unavailable, starting empty",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return seatmap.Initialize(nil)
	}
	if intent != nil && intent.ScheduleID == scheduleID {
		prior := seatmap.FromIntent(intentToSeatmap(intent))
		return seatmap.Initialize(&prior)
	}

	return seatmap.Initialize(nil)
}

func (s *seatSelectionService) toEntity(sessionID uuid.UUID, scheduleID int64, state seatmap.SelectionState) *entity.Selection {
	return &entity.Selection{
		SessionID:  sessionID,
		ScheduleID: scheduleID,
		SeatNames:  state.SeatNames,
		SeatIDs:    state.SeatIDs,
		TotalPrice: state.TotalPrice,
		UpdatedAt:  s.now(),
	}
}

// restoreCart puts a claimed cart back after a failed confirm, unless a newer
// cart was written meanwhile.
func (s *seatSelectionService) restoreCart(ctx context.Context, taken *entity.Selection) {
	if taken == nil {
		return
	}
	_, err := s.repo.Selection.Update(ctx, taken.SessionID, taken.ScheduleID, func(current *entity.Selection) (*entity.Selection, error) {
		if current != nil {
			return current, nil
		}
		return taken, nil
	})
	if err != nil {
		s.log.Warn("Failed to restore selection", zap.Error(err))
	}
}

func (s *seatSelectionService) pushNotice(ctx context.Context, sessionID uuid.UUID, cause error) {
	notice, ok := NoticeFor(cause, s.now())
	if !ok {
		return
	}
	if err := s.repo.Notice.Push(ctx, sessionID, notice, seatmap.NoticeDismissAfter); err != nil {
		s.log.Warn("Failed to push notice", zap.Error(err), zap.String("code", notice.Code))
	}
}

func (s *seatSelectionService) publishConfirmed(ctx context.Context, record *entity.BookingIntent) {
	evt := event.BookingIntentConfirmed{
		IntentID:    record.ID.String(),
		Reference:   record.Reference,
		SessionID:   record.SessionID.String(),
		ScheduleID:  record.ScheduleID,
		MovieName:   record.MovieName,
		RoomName:    record.RoomName,
		Date:        record.Date,
		TimeStart:   record.TimeStart,
		TimeEnd:     record.TimeEnd,
		SeatNames:   record.SeatNames,
		SeatIDs:     record.SeatIDs,
		CountSeat:   record.CountSeat,
		Price:       record.Price,
		ConfirmedAt: record.CreatedAt.UTC(),
	}

	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.log.Warn("Failed to publish booking intent event",
			zap.Error(err),
			zap.String("intent_id", record.ID.String()),
		)
	}
}

func (s *seatSelectionService) buildSelectionResponse(ctx context.Context, sessionID uuid.UUID, schedule *entity.Schedule, state seatmap.SelectionState) (*response.SeatSelectionResponse, error) {
	seats, err := s.repo.Seat.FindBySchedule(ctx, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("get seats for schedule %d: %w", schedule.ID, err)
	}

	notice, err := s.repo.Notice.Find(ctx, sessionID)
	if err != nil {
		s.log.Warn("Failed to read notice", zap.Error(err))
		notice = nil
	}

	return &response.SeatSelectionResponse{
		Schedule:  response.ScheduleToResponse(schedule),
		Rows:      response.RowsToResponse(seatmap.PartitionIntoLayout(toSeatmapSeats(seats)), state),
		Selection: response.SelectionToSummary(state),
		Notice:    response.NoticeToResponse(notice),
	}, nil
}

// IsRejection reports whether err is a user-recoverable engine rejection.
func IsRejection(err error) bool {
	return errors.Is(err, seatmap.ErrSelectionLimitExceeded) || errors.Is(err, seatmap.ErrNoSeatSelected)
}
