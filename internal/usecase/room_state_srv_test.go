package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/dto/request"
	"cinema-seating/internal/seatmap"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRoomState_GetSeatMap(t *testing.T) {
	f := newFixture()
	srv := NewRoomStateService(f.repo, zap.NewNop())

	resp, err := srv.GetSeatMap(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.Schedule.ID)
	assert.Equal(t, 12, resp.TotalSeats)
	assert.Equal(t, 1, resp.ReservedSeats)
	require.Len(t, resp.Rows, len(seatmap.RowLabels))

	c := resp.Rows[2]
	assert.Equal(t, "C", c.RowLabel)
	assert.Len(t, c.Left, 2)
	assert.Len(t, c.Center, 6)
	assert.Len(t, c.Right, 1)

	for _, row := range resp.Rows {
		for _, seat := range append(append(row.Left, row.Center...), row.Right...) {
			assert.NotEqual(t, seatmap.StyleSelected, seat.Style, seat.Name)
		}
	}
	assert.Equal(t, seatmap.StyleUnavailable, resp.Rows[0].Center[0].Style)
}

func TestRoomState_GetSeatMapUnknownSchedule(t *testing.T) {
	srv := NewRoomStateService(newFixture().repo, zap.NewNop())

	_, err := srv.GetSeatMap(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRoomState_ListIntents(t *testing.T) {
	f := newFixture()
	for i := 0; i < 5; i++ {
		f.intents.intents = append(f.intents.intents, &entity.BookingIntent{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Reference:  fmt.Sprintf("INT-%d", i),
			ScheduleID: 42,
			SeatNames:  []string{"A1"},
			SeatIDs:    []int64{1},
			CountSeat:  1,
			Price:      75000,
		})
	}
	f.intents.intents = append(f.intents.intents, &entity.BookingIntent{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		ScheduleID: 43,
	})
	srv := NewRoomStateService(f.repo, zap.NewNop())

	page, err := srv.ListIntents(context.Background(), 42, &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(5), page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, 2, page.Pagination.Page)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "INT-2", page.Data[0].Reference)
	assert.Equal(t, "75.000 ₫", page.Data[0].PriceDisplay)
}

func TestRoomState_GetIntent(t *testing.T) {
	f := newFixture()
	id := uuid.New()
	f.intents.intents = append(f.intents.intents, &entity.BookingIntent{
		BaseSimple: entity.BaseSimple{ID: id},
		Reference:  "INT-20241101-180000-0001",
		ScheduleID: 42,
		Price:      170000,
	})
	srv := NewRoomStateService(f.repo, zap.NewNop())

	tests := []struct {
		name     string
		id       string
		contains string
	}{
		{name: "found", id: id.String()},
		{name: "unknown", id: uuid.NewString(), contains: "not found"},
		{name: "malformed", id: "42", contains: "invalid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			intent, err := srv.GetIntent(context.Background(), tc.id)
			if tc.contains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.contains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "INT-20241101-180000-0001", intent.Reference)
			assert.Equal(t, "170.000 ₫", intent.PriceDisplay)
		})
	}
}
