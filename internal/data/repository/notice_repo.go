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

// NoticeRepository holds at most one notice per session. The Redis TTL is
// the auto-dismiss: once it lapses Find returns nil.
type NoticeRepository interface {
	Push(ctx context.Context, sessionID uuid.UUID, notice *entity.Notice, ttl time.Duration) error
	Find(ctx context.Context, sessionID uuid.UUID) (*entity.Notice, error)
	Dismiss(ctx context.Context, sessionID uuid.UUID) error
}

type noticeRepository struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewNoticeRepository(rdb *redis.Client, log *zap.Logger) NoticeRepository {
	return &noticeRepository{
		rdb: rdb,
		log: log.With(zap.String("repository", "notice")),
	}
}

func noticeKey(sessionID uuid.UUID) string {
	return "notice:" + sessionID.String()
}

func (r *noticeRepository) Push(ctx context.Context, sessionID uuid.UUID, notice *entity.Notice, ttl time.Duration) error {
	raw, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("marshal notice: %w", err)
	}

	if err := r.rdb.Set(ctx, noticeKey(sessionID), raw, ttl).Err(); err != nil {
		r.log.Error("Failed to push notice",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
			zap.String("code", notice.Code),
		)
		return fmt.Errorf("push notice %s: %w", notice.Code, err)
	}

	return nil
}

func (r *noticeRepository) Find(ctx context.Context, sessionID uuid.UUID) (*entity.Notice, error) {
	raw, err := r.rdb.Get(ctx, noticeKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get notice: %w", err)
	}

	var notice entity.Notice
	if err := json.Unmarshal(raw, &notice); err != nil {
		return nil, fmt.Errorf("decode notice: %w", err)
	}

	return &notice, nil
}

func (r *noticeRepository) Dismiss(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.rdb.Del(ctx, noticeKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("dismiss notice: %w", err)
	}
	return nil
}
