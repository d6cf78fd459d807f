package repository

import (
	"errors"

	"cinema-seating/pkg/database"
	"cinema-seating/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Repository struct {
	// Postgres
	Seat          SeatRepository
	Schedule      ScheduleRepository
	BookingIntent BookingIntentRepository

	// Redis
	Selection   SelectionRepository
	IntentStore IntentStoreRepository
	Notice      NoticeRepository
}

func NewRepository(db database.PgxIface, rdb *redis.Client, config utils.SelectionConfig, log *zap.Logger) *Repository {
	return &Repository{
		Seat:          NewSeatRepository(db, log),
		Schedule:      NewScheduleRepository(db, log),
		BookingIntent: NewBookingIntentRepository(db, log),
		Selection:     NewSelectionRepository(rdb, config.StateTTL, log),
		IntentStore:   NewIntentStoreRepository(rdb, config.IntentTTL, log),
		Notice:        NewNoticeRepository(rdb, log),
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
