package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_GetAbsentKey(t *testing.T) {
	backend := New()

	value, found, err := backend.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestBackend_SetAndGet(t *testing.T) {
	backend := New()
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, "key", "value"))

	value, found, err := backend.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "value", value)
}

func TestBackend_SetReplacesValue(t *testing.T) {
	backend := New()
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, "key", "first"))
	require.NoError(t, backend.Set(ctx, "key", "second"))

	value, _, err := backend.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestBackend_RespectsCancelledContext(t *testing.T) {
	backend := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, backend.Set(ctx, "key", "value"))
	_, _, err := backend.Get(ctx, "key")
	assert.Error(t, err)
}

func TestBackend_CloseIsNoOp(t *testing.T) {
	backend := New()
	require.NoError(t, backend.Set(context.Background(), "key", "value"))
	require.NoError(t, backend.Close())

	value, found, err := backend.Get(context.Background(), "key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "value", value)
}
