package middleware

import (
	"context"

	"github.com/insurdesk/brokerage-backend/internal/domain"
	"github.com/insurdesk/brokerage-backend/pkg/ctxutil"
)

// RequireAuth returns domain.ErrUnauthorized if the context carries no
// authenticated actor.
func RequireAuth(ctx context.Context) error {
	if _, ok := ctxutil.ActorIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
// Use inside REST handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if err := RequireAuth(ctx); err != nil {
		return err
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
