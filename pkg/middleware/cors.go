package middleware

import (
	"net/http"
	"strings"

	"cinema-seating/pkg/utils"
)

// CORS allows browser clients to call the API and to read the session header.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", strings.Join([]string{
			http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions,
		}, ", "))
		h.Set("Access-Control-Allow-Headers", "Content-Type, "+utils.SessionHeader)
		h.Set("Access-Control-Expose-Headers", utils.SessionHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
