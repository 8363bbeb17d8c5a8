package database

import (
	"context"
	"testing"

	"github.com/justsurfingit/sales-intake/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySlotStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySlotStore()

	_, found, err := s.Get(ctx, "apps")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Put(ctx, "apps", "[]"))
	require.NoError(t, s.Put(ctx, "apps", `[{"id":1}]`))

	v, found, err := s.Get(ctx, "apps")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":1}]`, v)

	_, found, err = s.Get(ctx, "other")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOpenMemoryBackend(t *testing.T) {
	store, closeFn, err := Open(context.Background(), config.Config{StorageBackend: config.BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemorySlotStore{}, store)
	assert.NoError(t, closeFn())

	_, _, err = Open(context.Background(), config.Config{StorageBackend: "etcd"})
	assert.Error(t, err)
}
