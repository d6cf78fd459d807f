package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"cinema-seating/internal/data/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestNoticeRepository_ExpiresAfterTTL(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewNoticeRepository(rdb, zap.NewNop())
	ctx := context.Background()
	session := uuid.New()

	none, err := repo.Find(ctx, session)
	require.NoError(t, err)
	assert.Nil(t, none)

	expires := time.Date(2024, 11, 1, 18, 0, 3, 0, time.UTC)
	require.NoError(t, repo.Push(ctx, session, &entity.Notice{
		Code:      "SELECTION_LIMIT_EXCEEDED",
		Message:   "You can book at most 8 seats per booking.",
		Type:      entity.NoticeTypeError,
		ExpiresAt: expires,
	}, 3*time.Second))

	assert.True(t, mr.Exists("notice:"+session.String()))
	assert.Equal(t, 3*time.Second, mr.TTL("notice:"+session.String()))

	got, err := repo.Find(ctx, session)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "SELECTION_LIMIT_EXCEEDED", got.Code)
	assert.Equal(t, entity.NoticeTypeError, got.Type)
	assert.True(t, expires.Equal(got.ExpiresAt))

	mr.FastForward(2 * time.Second)
	still, err := repo.Find(ctx, session)
	require.NoError(t, err)
	assert.NotNil(t, still)

	mr.FastForward(time.Second)
	gone, err := repo.Find(ctx, session)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestNoticeRepository_Dismiss(t *testing.T) {
	_, rdb := newTestRedis(t)
	repo := NewNoticeRepository(rdb, zap.NewNop())
	ctx := context.Background()
	session, other := uuid.New(), uuid.New()

	for _, s := range []uuid.UUID{session, other} {
		require.NoError(t, repo.Push(ctx, s, &entity.Notice{Code: "NO_SEAT_SELECTED"}, time.Minute))
	}

	require.NoError(t, repo.Dismiss(ctx, session))

	got, err := repo.Find(ctx, session)
	require.NoError(t, err)
	assert.Nil(t, got)

	kept, err := repo.Find(ctx, other)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestIntentStoreRepository_RoundTrip(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewIntentStoreRepository(rdb, 2*time.Hour, zap.NewNop())
	ctx := context.Background()

	intent := &entity.BookingIntent{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Date(2024, 11, 1, 17, 30, 0, 0, time.UTC),
		},
		Reference:  "INT-20241101-173000-0042",
		SessionID:  uuid.New(),
		ScheduleID: 42,
		MovieName:  "Inception",
		RoomName:   "Room A",
		Date:       "2024-11-01",
		TimeStart:  "18:00",
		TimeEnd:    "20:10",
		SeatNames:  []string{"A1", "A2"},
		SeatIDs:    []int64{1, 2},
		CountSeat:  2,
		Price:      170000,
	}

	missing, err := repo.Find(ctx, intent.SessionID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Save(ctx, intent))
	assert.Equal(t, 2*time.Hour, mr.TTL("intent:"+intent.SessionID.String()))

	got, err := repo.Find(ctx, intent.SessionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, intent.ID, got.ID)
	assert.True(t, intent.CreatedAt.Equal(got.CreatedAt))
	got.CreatedAt = intent.CreatedAt
	assert.Equal(t, intent, got)

	mr.FastForward(2 * time.Hour)
	expired, err := repo.Find(ctx, intent.SessionID)
	require.NoError(t, err)
	assert.Nil(t, expired)
}

func TestIntentStoreRepository_UnreadableValue(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewIntentStoreRepository(rdb, time.Hour, zap.NewNop())
	session := uuid.New()

	require.NoError(t, mr.Set("intent:"+session.String(), "{not json"))

	_, err := repo.Find(context.Background(), session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode retained intent")
}

func newSelection(session uuid.UUID, names []string, ids []int64, total int64) *entity.Selection {
	return &entity.Selection{
		SessionID:  session,
		ScheduleID: 42,
		SeatNames:  names,
		SeatIDs:    ids,
		TotalPrice: total,
	}
}

func TestSelectionRepository_UpdateTakeDelete(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewSelectionRepository(rdb, 30*time.Minute, zap.NewNop())
	ctx := context.Background()
	session := uuid.New()
	key := fmt.Sprintf("selection:%s:42", session)

	var seen *entity.Selection
	saved, err := repo.Update(ctx, session, 42, func(current *entity.Selection) (*entity.Selection, error) {
		seen = current
		return newSelection(session, []string{"A1"}, []int64{1}, 75000), nil
	})
	require.NoError(t, err)
	assert.Nil(t, seen, "absent cart is passed as nil")
	assert.Equal(t, []string{"A1"}, saved.SeatNames)
	assert.Equal(t, 30*time.Minute, mr.TTL(key))

	_, err = repo.Update(ctx, session, 42, func(current *entity.Selection) (*entity.Selection, error) {
		seen = current
		return newSelection(session, append(current.SeatNames, "A2"), append(current.SeatIDs, 2), current.TotalPrice+95000), nil
	})
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, []int64{1}, seen.SeatIDs)

	taken, err := repo.Take(ctx, session, 42)
	require.NoError(t, err)
	require.NotNil(t, taken)
	assert.Equal(t, []string{"A1", "A2"}, taken.SeatNames)
	assert.Equal(t, []int64{1, 2}, taken.SeatIDs)
	assert.Equal(t, int64(170000), taken.TotalPrice)
	assert.False(t, mr.Exists(key))

	again, err := repo.Take(ctx, session, 42)
	require.NoError(t, err)
	assert.Nil(t, again)

	_, err = repo.Update(ctx, session, 42, func(*entity.Selection) (*entity.Selection, error) {
		return newSelection(session, []string{"B1"}, []int64{11}, 50000), nil
	})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, session, 42))
	assert.False(t, mr.Exists(key))
}

func TestSelectionRepository_UpdateAbortDoesNotWrite(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewSelectionRepository(rdb, time.Minute, zap.NewNop())
	ctx := context.Background()
	session := uuid.New()
	rejected := errors.New("limit reached")

	_, err := repo.Update(ctx, session, 42, func(*entity.Selection) (*entity.Selection, error) {
		return nil, rejected
	})
	assert.ErrorIs(t, err, rejected)
	assert.False(t, mr.Exists(fmt.Sprintf("selection:%s:42", session)))
}

func TestSelectionRepository_ExpiresAfterTTL(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewSelectionRepository(rdb, 30*time.Minute, zap.NewNop())
	ctx := context.Background()
	session := uuid.New()

	_, err := repo.Update(ctx, session, 42, func(*entity.Selection) (*entity.Selection, error) {
		return newSelection(session, []string{"A1"}, []int64{1}, 75000), nil
	})
	require.NoError(t, err)

	mr.FastForward(30 * time.Minute)

	taken, err := repo.Take(ctx, session, 42)
	require.NoError(t, err)
	assert.Nil(t, taken)
}

func TestSelectionRepository_ConcurrentUpdatesAreSerialised(t *testing.T) {
	_, rdb := newTestRedis(t)
	repo := NewSelectionRepository(rdb, time.Minute, zap.NewNop())
	ctx := context.Background()
	session := uuid.New()

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = repo.Update(ctx, session, 42, func(current *entity.Selection) (*entity.Selection, error) {
				if current == nil {
					current = newSelection(session, []string{}, []int64{}, 0)
				}
				current.SeatNames = append(current.SeatNames, fmt.Sprintf("C%d", i+1))
				current.SeatIDs = append(current.SeatIDs, int64(101+i))
				current.TotalPrice += 50000
				return current, nil
			})
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	final, err := repo.Take(ctx, session, 42)
	require.NoError(t, err)
	require.NotNil(t, final)
	assert.Len(t, final.SeatNames, writers)
	assert.Len(t, final.SeatIDs, writers)
	assert.Equal(t, int64(writers*50000), final.TotalPrice)
}

func TestSelectionRepository_UnreadableCartStartsOver(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewSelectionRepository(rdb, time.Minute, zap.NewNop())
	ctx := context.Background()
	session := uuid.New()
	require.NoError(t, mr.Set(fmt.Sprintf("selection:%s:42", session), "{not json"))

	var seen *entity.Selection
	called := false
	_, err := repo.Update(ctx, session, 42, func(current *entity.Selection) (*entity.Selection, error) {
		called, seen = true, current
		return newSelection(session, []string{"A1"}, []int64{1}, 75000), nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Nil(t, seen)

	taken, err := repo.Take(ctx, session, 42)
	require.NoError(t, err)
	require.NotNil(t, taken)
	assert.Equal(t, []string{"A1"}, taken.SeatNames)
}
