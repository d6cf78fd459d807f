package wire

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-seating/internal/data/repository"
	"cinema-seating/pkg/broker"
	"cinema-seating/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		checks map[string]HealthCheck
		want   int
	}{
		{name: "no checks", checks: nil, want: http.StatusOK},
		{
			name: "all healthy",
			checks: map[string]HealthCheck{
				"postgres": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return nil },
			},
			want: http.StatusOK,
		},
		{
			name: "redis down",
			checks: map[string]HealthCheck{
				"postgres": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return errors.New("connection refused") },
			},
			want: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := Wiring(&repository.Repository{}, broker.NopPublisher{}, tc.checks, zap.NewNop())
			rec := httptest.NewRecorder()

			app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tc.want, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(utils.SessionHeader))
		})
	}
}

func TestRoutesRegistered(t *testing.T) {
	app := Wiring(&repository.Repository{}, broker.NopPublisher{}, nil, zap.NewNop())

	// no seat_id: rejected by the handler before any store is touched
	req := httptest.NewRequest(http.MethodPost, "/api/schedules/42/selection/toggle", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/payment-result?vnp_Amount=100", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
