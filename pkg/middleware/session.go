package middleware

import (
	"net/http"

	"cinema-seating/pkg/utils"

	"go.uber.org/zap"
)

// Session resolves the anonymous browsing session from the X-Session-ID
// header. A missing or malformed id is replaced by a fresh one, which is
// echoed back so the client can keep it for the next request.
func Session(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(utils.SessionHeader)

			sessionID, err := utils.ParseUUID(raw)
			if err != nil {
				if raw != "" {
					logger.Debug("Replacing malformed session id", zap.String("session_id", raw))
				}
				sessionID = utils.GenerateUUID()
			}

			w.Header().Set(utils.SessionHeader, sessionID.String())

			next.ServeHTTP(w, r.WithContext(utils.SetSessionContext(r.Context(), sessionID)))
		})
	}
}
