//go:build unit
// +build unit

package contextkeys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKey_String(t *testing.T) {
	key := contextKey("testKey")
	assert.Equal(t, "favorites-conformance context key testKey", key.String())
}

func TestContextKeys_Usage(t *testing.T) {
	ctx := context.Background()
	ctx = context.WithValue(ctx, RunIDKey, "run-123")
	ctx = context.WithValue(ctx, ScenarioKey, "valid_minimal_spot")
	ctx = context.WithValue(ctx, TargetKey, "http://127.0.0.1:8080")
	ctx = context.WithValue(ctx, RequestIDKey, "req-456")
	ctx = context.WithValue(ctx, SessionIDKey, "session-789")
	ctx = context.WithValue(ctx, TokenKey, "token-foo")
	ctx = context.WithValue(ctx, ComponentKey, "component-runner")
	ctx = context.WithValue(ctx, OperationKey, "operation-create")

	assert.Equal(t, "run-123", ctx.Value(RunIDKey))
	assert.Equal(t, "valid_minimal_spot", ctx.Value(ScenarioKey))
	assert.Equal(t, "http://127.0.0.1:8080", ctx.Value(TargetKey))
	assert.Equal(t, "req-456", ctx.Value(RequestIDKey))
	assert.Equal(t, "session-789", ctx.Value(SessionIDKey))
	assert.Equal(t, "token-foo", ctx.Value(TokenKey))
	assert.Equal(t, "component-runner", ctx.Value(ComponentKey))
	assert.Equal(t, "operation-create", ctx.Value(OperationKey))
}
