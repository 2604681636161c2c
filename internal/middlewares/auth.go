package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/token"
)

// CallerResolver resolves a bearer token to the id of the calling user.
// The users service resolves against its own sessions table; the other
// services resolve through the identity client.
type CallerResolver interface {
	ResolveToken(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// AuthMiddleware extracts the bearer token from the Authorization header,
// resolves it to a caller id and stores the id in the request context.
// Requests without a resolvable caller never reach the handler.
func AuthMiddleware(resolver CallerResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := token.FromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			callerID, err := resolver.ResolveToken(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetCallerToContext(ctx, callerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// callerKey is an unexported type for keys in context
type callerKey struct{}

var callerCtxKey = callerKey{}

// SetCallerToContext stores the caller id in the context
func SetCallerToContext(ctx context.Context, callerID uuid.UUID) context.Context {
	return context.WithValue(ctx, callerCtxKey, callerID)
}

// GetCallerFromContext retrieves the caller id from the context.
// Returns uuid.Nil if not present.
func GetCallerFromContext(ctx context.Context) uuid.UUID {
	callerID, _ := ctx.Value(callerCtxKey).(uuid.UUID)
	return callerID
}
