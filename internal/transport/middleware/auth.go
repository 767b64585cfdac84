package middleware

import (
	"net/http"
	"strings"

	"github.com/insurdesk/brokerage-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (int64, string, error)
}

// Auth returns middleware that resolves the Bearer token into an actor
// identity on the request context. Requests without a token pass through
// anonymous; requests with an invalid token are rejected.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			actorID, role, err := validator.ValidateAccessToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithActorID(r.Context(), actorID)
			ctx = ctxutil.WithRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
