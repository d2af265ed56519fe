package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes is plenty for the largest payload we accept (a review with notes).
const DefaultMaxBodyBytes = 1 << 20

// LimitBody caps request bodies at maxBytes and, once the handler is done, drains
// and closes whatever the handler left unread so the connection can be reused.
// Handlers reading past the cap get an *http.MaxBytesError.
func LimitBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}
			if r.ContentLength > maxBytes {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				_ = r.Body.Close()
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		})
	}
}
