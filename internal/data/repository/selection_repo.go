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

// SelectionRepository keeps in-progress carts in Redis. Entries expire after
// the configured TTL, which is how abandoned selections are dropped.
type SelectionRepository interface {
	Delete(ctx context.Context, sessionID uuid.UUID, scheduleID int64) error

	// Update runs fn on the stored cart (nil when absent) and writes back what
	// fn returns, retrying when another writer touched the cart in between.
	// An error from fn aborts without writing and is returned unwrapped.
	Update(ctx context.Context, sessionID uuid.UUID, scheduleID int64, fn SelectionUpdateFunc) (*entity.Selection, error)
	// Take reads and deletes the cart in one step; nil when absent.
	Take(ctx context.Context, sessionID uuid.UUID, scheduleID int64) (*entity.Selection, error)
}

type SelectionUpdateFunc func(current *entity.Selection) (*entity.Selection, error)

// ErrSelectionContended is returned by Update after maxUpdateAttempts lost races.
var ErrSelectionContended = errors.New("selection changed concurrently, retry")

const maxUpdateAttempts = 16

type selectionRepository struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewSelectionRepository(rdb *redis.Client, ttl time.Duration, log *zap.Logger) SelectionRepository {
	return &selectionRepository{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("repository", "selection")),
	}
}

func selectionKey(sessionID uuid.UUID, scheduleID int64) string {
	return fmt.Sprintf("selection:%s:%d", sessionID.String(), scheduleID)
}

func (r *selectionRepository) decode(raw []byte, sessionID uuid.UUID) *entity.Selection {
	var selection entity.Selection
	if err := json.Unmarshal(raw, &selection); err != nil {
		r.log.Warn("Discarding unreadable selection",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil
	}
	return &selection
}

func (r *selectionRepository) Delete(ctx context.Context, sessionID uuid.UUID, scheduleID int64) error {
	if err := r.rdb.Del(ctx, selectionKey(sessionID, scheduleID)).Err(); err != nil {
		r.log.Error("Failed to delete selection",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
			zap.Int64("schedule_id", scheduleID),
		)
		return fmt.Errorf("delete selection for schedule %d: %w", scheduleID, err)
	}
	return nil
}

func (r *selectionRepository) Update(ctx context.Context, sessionID uuid.UUID, scheduleID int64, fn SelectionUpdateFunc) (*entity.Selection, error) {
	key := selectionKey(sessionID, scheduleID)

	var updated *entity.Selection
	var fnErr error

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		var current *entity.Selection
		if err == nil {
			current = r.decode(raw, sessionID)
		}

		updated, fnErr = fn(current)
		if fnErr != nil {
			return fnErr
		}

		payload, err := json.Marshal(updated)
		if err != nil {
			return fmt.Errorf("marshal selection: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, r.ttl)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		fnErr = nil
		err := r.rdb.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if fnErr != nil {
			return nil, fnErr
		}
		if errors.Is(err, redis.TxFailedErr) {
			r.log.Debug("Selection changed during update, retrying",
				zap.String("session_id", sessionID.String()),
				zap.Int64("schedule_id", scheduleID),
				zap.Int("attempt", attempt),
			)
			continue
		}

		r.log.Error("Failed to update selection",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
			zap.Int64("schedule_id", scheduleID),
		)
		return nil, fmt.Errorf("update selection for schedule %d: %w", scheduleID, err)
	}

	return nil, ErrSelectionContended
}

func (r *selectionRepository) Take(ctx context.Context, sessionID uuid.UUID, scheduleID int64) (*entity.Selection, error) {
	raw, err := r.rdb.GetDel(ctx, selectionKey(sessionID, scheduleID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to take selection",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
			zap.Int64("schedule_id", scheduleID),
		)
		return nil, fmt.Errorf("take selection for schedule %d: %w", scheduleID, err)
	}

	return r.decode(raw, sessionID), nil
}
