package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/insurdesk/brokerage-backend/internal/domain"
	"github.com/insurdesk/brokerage-backend/pkg/ctxutil"
)

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		wantErr error
	}{
		{
			name:    "anonymous",
			ctx:     context.Background(),
			wantErr: domain.ErrUnauthorized,
		},
		{
			name: "authenticated non-admin",
			ctx: ctxutil.WithRole(
				ctxutil.WithActorID(context.Background(), 42), "agent"),
			wantErr: domain.ErrForbidden,
		},
		{
			name: "admin",
			ctx: ctxutil.WithRole(
				ctxutil.WithActorID(context.Background(), 7), ctxutil.RoleAdmin),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireAdmin(tt.ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RequireAdmin() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	if err := RequireAuth(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("RequireAuth(anonymous) = %v, want ErrUnauthorized", err)
	}

	ctx := ctxutil.WithActorID(context.Background(), 42)
	if err := RequireAuth(ctx); err != nil {
		t.Errorf("RequireAuth(authenticated) = %v, want nil", err)
	}
}
