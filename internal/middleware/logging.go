package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs each finished request. Failed requests go out on debug level,
// everything else on trace.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{w, http.StatusOK}

			next.ServeHTTP(resp, r)

			entry := log.WithFields(log.Fields{
				"method":      r.Method,
				"route":       routeTemplate(r),
				"status":      resp.statusCode,
				"duration_ms": time.Since(begin).Milliseconds(),
				"ua":          r.Header.Get("User-Agent"),
			})
			if resp.statusCode >= http.StatusBadRequest {
				entry.Debugf(" <==== %s %s", r.Method, r.URL.Path)
				return
			}
			entry.Tracef(" <==== %s %s", r.Method, r.URL.Path)
		})
	}
}
