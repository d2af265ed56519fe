package middleware

import (
	"net/http"
	"strings"

	"github.com/2beens/lifedash/internal/auth"

	log "github.com/sirupsen/logrus"
)

func Cors(allowedOrigins ...string) func(next http.Handler) http.Handler {
	allowed := map[string]bool{
		"http://localhost:8080": true,
		"test":                  true,
	}
	for _, o := range allowedOrigins {
		if o != "" {
			allowed[strings.TrimSuffix(o, "/")] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			userAgent := r.Header.Get("User-Agent")

			// google oauth redirect
			if r.URL.Path == "/gcal/callback" && origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			switch {
			case
				allowed[origin],
				strings.HasPrefix(userAgent, "lifectl/"),
				strings.HasPrefix(userAgent, "curl/"),
				strings.HasPrefix(userAgent, "test-agent"):
				{
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Headers",
						"Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, "+auth.TokenHeader,
					)
					w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
				}
			default:
				log.Warnf("CORS: origin not allowed for path [%s] and origin [%s]", r.URL.Path, origin)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
