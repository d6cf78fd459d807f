package repository

import (
	"context"
	"fmt"

	"cinema-seating/internal/data/entity"
	"cinema-seating/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingIntentRepository interface {
	Create(ctx context.Context, intent *entity.BookingIntent) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingIntent, error)
	FindBySchedule(ctx context.Context, scheduleID int64, limit, offset int) ([]*entity.BookingIntent, error)
	CountBySchedule(ctx context.Context, scheduleID int64) (int64, error)
}

type bookingIntentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingIntentRepository(db database.PgxIface, log *zap.Logger) BookingIntentRepository {
	return &bookingIntentRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_intent")),
	}
}

const bookingIntentColumns = `id, reference, session_id, schedule_id, movie_name, room_name, date, time_start, time_end,
	seat_names, seat_ids, count_seat, price, created_at`

func scanBookingIntent(row rowScanner) (*entity.BookingIntent, error) {
	var intent entity.BookingIntent
	err := row.Scan(
		&intent.ID,
		&intent.Reference,
		&intent.SessionID,
		&intent.ScheduleID,
		&intent.MovieName,
		&intent.RoomName,
		&intent.Date,
		&intent.TimeStart,
		&intent.TimeEnd,
		&intent.SeatNames,
		&intent.SeatIDs,
		&intent.CountSeat,
		&intent.Price,
		&intent.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

func (r *bookingIntentRepository) Create(ctx context.Context, intent *entity.BookingIntent) error {
	query := `
		INSERT INTO booking_intents (` + bookingIntentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		intent.ID,
		intent.Reference,
		intent.SessionID,
		intent.ScheduleID,
		intent.MovieName,
		intent.RoomName,
		intent.Date,
		intent.TimeStart,
		intent.TimeEnd,
		intent.SeatNames,
		intent.SeatIDs,
		intent.CountSeat,
		intent.Price,
		intent.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking intent",
			zap.Error(err),
			zap.String("intent_id", intent.ID.String()),
			zap.Int64("schedule_id", intent.ScheduleID),
		)
		return fmt.Errorf("create booking intent for schedule %d: %w", intent.ScheduleID, err)
	}

	return nil
}

func (r *bookingIntentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingIntent, error) {
	query := `SELECT ` + bookingIntentColumns + ` FROM booking_intents WHERE id = $1`

	intent, err := scanBookingIntent(r.db.QueryRow(ctx, query, id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking intent by ID",
			zap.Error(err),
			zap.String("intent_id", id.String()),
		)
		return nil, fmt.Errorf("find booking intent %s: %w", id.String(), err)
	}

	return intent, nil
}

func (r *bookingIntentRepository) FindBySchedule(ctx context.Context, scheduleID int64, limit, offset int) ([]*entity.BookingIntent, error) {
	query := `
		SELECT ` + bookingIntentColumns + `
		FROM booking_intents
		WHERE schedule_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, scheduleID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find booking intents by schedule",
			zap.Error(err),
			zap.Int64("schedule_id", scheduleID),
		)
		return nil, fmt.Errorf("find booking intents for schedule %d: %w", scheduleID, err)
	}
	defer rows.Close()

	var intents []*entity.BookingIntent
	for rows.Next() {
		intent, err := scanBookingIntent(rows)
		if err != nil {
			r.log.Error("Failed to scan booking intent row", zap.Error(err))
			return nil, fmt.Errorf("scan booking intent: %w", err)
		}
		intents = append(intents, intent)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking intents for schedule %d: %w", scheduleID, err)
	}

	return intents, nil
}

func (r *bookingIntentRepository) CountBySchedule(ctx context.Context, scheduleID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM booking_intents WHERE schedule_id = $1`, scheduleID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count booking intents",
			zap.Error(err),
			zap.Int64("schedule_id", scheduleID),
		)
		return 0, fmt.Errorf("count booking intents for schedule %d: %w", scheduleID, err)
	}
	return total, nil
}
