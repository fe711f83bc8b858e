package storage

import (
	"context"
	"testing"

	"github.com/factorymaster/mission-control/backend/config"
	"github.com/factorymaster/mission-control/backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteKV(t *testing.T) *GormKV {
	t.Helper()
	db, err := utils.InitDB(&config.Config{DBDriver: "sqlite", SQLitePath: ":memory:"})
	require.NoError(t, err)
	return NewGormKV(db)
}

func exerciseKV(t *testing.T, kv KV) {
	ctx := context.Background()

	_, err := kv.Get(ctx, "factory_app_progress")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Put(ctx, "factory_app_progress", `["p1-d1-a0"]`))
	value, err := kv.Get(ctx, "factory_app_progress")
	require.NoError(t, err)
	assert.Equal(t, `["p1-d1-a0"]`, value)

	require.NoError(t, kv.Put(ctx, "factory_app_progress", `[]`))
	value, err = kv.Get(ctx, "factory_app_progress")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)

	require.NoError(t, kv.Put(ctx, "resourceLinks", `{}`))
	value, err = kv.Get(ctx, "resourceLinks")
	require.NoError(t, err)
	assert.Equal(t, `{}`, value)
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemoryKV())
}

func TestGormKV_SQLite(t *testing.T) {
	exerciseKV(t, newSQLiteKV(t))
}
