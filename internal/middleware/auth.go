package middleware

import (
	"context"
	"net/http"

	"github.com/2beens/lifedash/internal/auth"
	"github.com/2beens/lifedash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type loginChecker interface {
	IsLogged(ctx context.Context, token string) (int, bool, error)
}

// PublicPaths are served without a session token. Google redirects to the
// callback after consent; the user there is resolved from the oauth state.
var PublicPaths = []string{"/", "/health", "/a/login", "/a/logout", "/gcal/callback"}

type AuthMiddlewareHandler struct {
	loginChecker loginChecker
	public       map[string]struct{}
}

func NewAuthMiddlewareHandler(loginChecker loginChecker, publicPaths ...string) *AuthMiddlewareHandler {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}
	return &AuthMiddlewareHandler{
		loginChecker: loginChecker,
		public:       public,
	}
}

func unauthorized(w http.ResponseWriter, span trace.Span, reason string) {
	http.Error(w, "no can do", http.StatusUnauthorized)
	span.SetStatus(codes.Error, reason)
}

// AuthCheck resolves the session token to a user id and puts it in the request context.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			// preflight; cors headers are already set by then
			if r.Method == http.MethodOptions {
				w.Header().Set("Allow", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				return
			}
			if _, ok := h.public[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get(auth.TokenHeader)
			if token == "" {
				log.Tracef("auth: no token for %s %s", r.Method, r.URL.Path)
				unauthorized(w, span, "missing-auth-token")
				return
			}

			userID, isLogged, err := h.loginChecker.IsLogged(ctx, token)
			switch {
			case err != nil:
				log.Errorf("auth: login check for %s: %s", r.URL.Path, err)
				span.RecordError(err)
				unauthorized(w, span, "check-logged-err")
				return
			case !isLogged:
				log.Tracef("auth: stale token for %s %s", r.Method, r.URL.Path)
				unauthorized(w, span, "not-logged")
				return
			}

			span.SetAttributes(attribute.Int("user.id", userID))
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(ctx, userID)))
		})
	}
}
