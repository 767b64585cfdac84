// Package ctxutil carries request-scoped identity through context values.
package ctxutil

import "context"

type ctxKey string

const (
	actorIDKey   ctxKey = "actor_id"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
)

// RoleAdmin is the role claim that grants access to admin endpoints.
const RoleAdmin = "admin"

// WithActorID stores the authenticated user's id in the context.
func WithActorID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, actorIDKey, id)
}

// ActorIDFromCtx extracts the actor id from the context.
// Returns 0 and false if the value is missing, zero, or the wrong type.
func ActorIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(actorIDKey).(int64)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// WithRole stores the authenticated user's role in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// IsAdminCtx reports whether the context belongs to an admin user.
func IsAdminCtx(ctx context.Context) bool {
	role, _ := ctx.Value(roleKey).(string)
	return role == RoleAdmin
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
