package repository

import (
	"context"
	"fmt"

	"cinema-seating/internal/data/entity"
	"cinema-seating/pkg/database"

	"go.uber.org/zap"
)

type SeatRepository interface {
	// FindBySchedule returns the room-state of a schedule: every seat of the
	// schedule's room with its price and reservation flag, in seat order.
	FindBySchedule(ctx context.Context, scheduleID int64) ([]*entity.Seat, error)
	FindByScheduleAndID(ctx context.Context, scheduleID, seatID int64) (*entity.Seat, error)
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

const seatColumns = `s.id, s.room_id, rs.schedule_id, s.name, s.type, rs.price, rs.is_reserved`

func (r *seatRepository) FindBySchedule(ctx context.Context, scheduleID int64) ([]*entity.Seat, error) {
	query := `
		SELECT ` + seatColumns + `
		FROM room_states rs
		JOIN seats s ON s.id = rs.seat_id
		WHERE rs.schedule_id = $1 AND s.deleted_at IS NULL
		ORDER BY s.id
	`

	rows, err := r.db.Query(ctx, query, scheduleID)
	if err != nil {
		r.log.Error("Failed to find seats by schedule",
			zap.Error(err),
			zap.Int64("schedule_id", scheduleID),
		)
		return nil, fmt.Errorf("find seats for schedule %d: %w", scheduleID, err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		if err := rows.Scan(
			&seat.ID,
			&seat.RoomID,
			&seat.ScheduleID,
			&seat.Name,
			&seat.Type,
			&seat.Price,
			&seat.IsReserved,
		); err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat: %w", err)
		}
		seats = append(seats, &seat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seats for schedule %d: %w", scheduleID, err)
	}

	return seats, nil
}

func (r *seatRepository) FindByScheduleAndID(ctx context.Context, scheduleID, seatID int64) (*entity.Seat, error) {
	query := `
		SELECT ` + seatColumns + `
		FROM room_states rs
		JOIN seats s ON s.id = rs.seat_id
		WHERE rs.schedule_id = $1 AND s.id = $2 AND s.deleted_at IS NULL
	`

	var seat entity.Seat
	err := r.db.QueryRow(ctx, query, scheduleID, seatID).Scan(
		&seat.ID,
		&seat.RoomID,
		&seat.ScheduleID,
		&seat.Name,
		&seat.Type,
		&seat.Price,
		&seat.IsReserved,
	)

	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat",
			zap.Error(err),
			zap.Int64("schedule_id", scheduleID),
			zap.Int64("seat_id", seatID),
		)
		return nil, fmt.Errorf("find seat %d for schedule %d: %w", seatID, scheduleID, err)
	}

	return &seat, nil
}
