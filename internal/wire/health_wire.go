package wire

import (
	"context"
	"net/http"
	"sort"
	"time"

	"cinema-seating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HealthCheck probes one backing service.
type HealthCheck func(ctx context.Context) error

const healthTimeout = 2 * time.Second

func wireHealth(r chi.Router, checks map[string]HealthCheck, logger *zap.Logger) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		names := make([]string, 0, len(checks))
		for name := range checks {
			names = append(names, name)
		}
		sort.Strings(names)

		status := make(map[string]string, len(checks))
		healthy := true
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				logger.Warn("Health check failed", zap.String("check", name), zap.Error(err))
				status[name] = err.Error()
				healthy = false
				continue
			}
			status[name] = "ok"
		}

		if !healthy {
			utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "unhealthy", status, nil)
			return
		}
		utils.ResponseSuccess(w, "OK", status)
	})
}
