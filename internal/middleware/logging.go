package middleware

import (
	"net/http"
	"time"

	"github.com/2beens/lifedash/pkg"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs every handled request at debug level once it is done.
// Health checks are logged at trace only, they arrive every few seconds.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{w, http.StatusOK}
			next.ServeHTTP(resp, r)

			ip, err := pkg.ReadUserIP(r)
			if err != nil {
				ip = "?"
			}
			entry := log.WithFields(log.Fields{
				"method": r.Method,
				"route":  routeName(r),
				"status": resp.statusCode,
				"ip":     ip,
				"ua":     r.UserAgent(),
				"took":   time.Since(begin).Round(time.Microsecond).String(),
			})
			if r.URL.Path == "/health" {
				entry.Tracef("<- %s", r.URL.Path)
				return
			}
			entry.Debugf("<- %s", r.URL.Path)
		})
	}
}
