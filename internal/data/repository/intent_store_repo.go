package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cinema-seating/internal/data/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// IntentStoreRepository retains the last confirmed intent of a session so the
// checkout screen, and a return to seat selection, can pick it up.
type IntentStoreRepository interface {
	Find(ctx context.Context, sessionID uuid.UUID) (*entity.BookingIntent, error)
	Save(ctx context.Context, intent *entity.BookingIntent) error
}

type intentStoreRepository struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewIntentStoreRepository(rdb *redis.Client, ttl time.Duration, log *zap.Logger) IntentStoreRepository {
	return &intentStoreRepository{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("repository", "intent_store")),
	}
}

func intentKey(sessionID uuid.UUID) string {
	return "intent:" + sessionID.String()
}

func (r *intentStoreRepository) Find(ctx context.Context, sessionID uuid.UUID) (*entity.BookingIntent, error) {
	raw, err := r.rdb.Get(ctx, intentKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get retained intent",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil, fmt.Errorf("get retained intent: %w", err)
	}

	var intent entity.BookingIntent
	if err := json.Unmarshal(raw, &intent); err != nil {
		return nil, fmt.Errorf("decode retained intent: %w", err)
	}

	return &intent, nil
}

func (r *intentStoreRepository) Save(ctx context.Context, intent *entity.BookingIntent) error {
	raw, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("marshal intent: %w", err)
	}

	if err := r.rdb.Set(ctx, intentKey(intent.SessionID), raw, r.ttl).Err(); err != nil {
		r.log.Error("Failed to retain intent",
			zap.Error(err),
			zap.String("session_id", intent.SessionID.String()),
			zap.String("intent_id", intent.ID.String()),
		)
		return fmt.Errorf("retain intent %s: %w", intent.ID.String(), err)
	}

	return nil
}
