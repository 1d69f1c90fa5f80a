package httpx

import (
	"net/http"

	"github.com/google/uuid"

	"canteen-system/internal/common/logger"
)

// RequestID tags every request with a generated id, echoes it to the client
// and logs the access line.
func RequestID(lg *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		lg.Debug("http_request", map[string]any{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
		})
		next.ServeHTTP(w, r)
	})
}
