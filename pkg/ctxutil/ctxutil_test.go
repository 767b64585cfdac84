package ctxutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActorID(t *testing.T) {
	ctx := context.Background()

	_, ok := ActorIDFromCtx(ctx)
	assert.False(t, ok)

	id, ok := ActorIDFromCtx(WithActorID(ctx, 42))
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = ActorIDFromCtx(WithActorID(ctx, 0))
	assert.False(t, ok, "zero actor id is treated as absent")
}

func TestIsAdminCtx(t *testing.T) {
	ctx := context.Background()

	assert.False(t, IsAdminCtx(ctx))
	assert.False(t, IsAdminCtx(WithRole(ctx, "agent")))
	assert.True(t, IsAdminCtx(WithRole(ctx, RoleAdmin)))
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, RequestIDFromCtx(ctx))
	assert.Equal(t, "req-1", RequestIDFromCtx(WithRequestID(ctx, "req-1")))
}
