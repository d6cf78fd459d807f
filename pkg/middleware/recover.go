package middleware

import (
	"net/http"

	"cinema-seating/pkg/utils"

	"go.uber.org/zap"
)

func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					fields := []zap.Field{
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Stack("stack"),
					}
					if sessionID, ok := utils.GetSessionIDFromContext(r.Context()); ok {
						fields = append(fields, zap.String("session_id", sessionID.String()))
					}
					logger.Error("PANIC recovered", fields...)

					utils.ResponseInternalError(w, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
