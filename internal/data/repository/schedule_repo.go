package repository

import (
	"context"
	"fmt"

	"cinema-seating/internal/data/entity"
	"cinema-seating/pkg/database"

	"go.uber.org/zap"
)

type ScheduleRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Schedule, error)
	// FindByDate lists schedules on a YYYY-MM-DD date ordered by movie and start time.
	FindByDate(ctx context.Context, date string) ([]*entity.Schedule, error)
}

type scheduleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScheduleRepository(db database.PgxIface, log *zap.Logger) ScheduleRepository {
	return &scheduleRepository{
		db:  db,
		log: log.With(zap.String("repository", "schedule")),
	}
}

const scheduleSelect = `
	SELECT sc.id, sc.movie_id, sc.room_id, m.name, COALESCE(m.image_path, ''), r.room_name,
		to_char(sc.date, 'YYYY-MM-DD'), to_char(sc.time_start, 'HH24:MI'), to_char(sc.time_end, 'HH24:MI')
	FROM schedules sc
	JOIN movies m ON m.id = sc.movie_id
	JOIN rooms r ON r.id = sc.room_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := row.Scan(
		&schedule.ID,
		&schedule.MovieID,
		&schedule.RoomID,
		&schedule.MovieName,
		&schedule.MovieImagePath,
		&schedule.RoomName,
		&schedule.Date,
		&schedule.TimeStart,
		&schedule.TimeEnd,
	)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByID(ctx context.Context, id int64) (*entity.Schedule, error) {
	query := scheduleSelect + ` WHERE sc.id = $1`

	schedule, err := scanSchedule(r.db.QueryRow(ctx, query, id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find schedule by ID",
			zap.Error(err),
			zap.Int64("schedule_id", id),
		)
		return nil, fmt.Errorf("find schedule by ID %d: %w", id, err)
	}

	return schedule, nil
}

func (r *scheduleRepository) FindByDate(ctx context.Context, date string) ([]*entity.Schedule, error) {
	query := scheduleSelect + ` WHERE sc.date = $1::date ORDER BY m.name, sc.time_start`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		r.log.Error("Failed to find schedules by date",
			zap.Error(err),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("find schedules on %s: %w", date, err)
	}
	defer rows.Close()

	var schedules []*entity.Schedule
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			r.log.Error("Failed to scan schedule row", zap.Error(err))
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedules on %s: %w", date, err)
	}

	return schedules, nil
}
