package redis

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// setupMiniredis поднимает Redis в памяти и подключает к нему клиент.
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *Client) {
	t.Helper()
	mr := miniredis.RunT(t)

	cli, err := New(context.Background(), &Config{Host: mr.Host(), Port: mr.Port()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cli.Close() })

	return mr, cli
}

func TestCache_SetAndGet(t *testing.T) {
	mr, cli := setupMiniredis(t)
	cache := NewCache(cli, 0, newTestLogger())
	ctx := context.Background()

	key := `spacing {"base":0.25,"precision":3}`
	require.NoError(t, cache.Set(ctx, key, `{"0":"0"}`))

	value, found, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"0":"0"}`, value)

	// Ключ хранится с префиксом
	stored, err := mr.Get(keyPrefix + key)
	require.NoError(t, err)
	assert.Equal(t, `{"0":"0"}`, stored)
}

func TestCache_GetNotFound(t *testing.T) {
	_, cli := setupMiniredis(t)
	cache := NewCache(cli, 0, newTestLogger())

	value, found, err := cache.Get(context.Background(), "несуществующий_ключ")
	require.NoError(t, err, "отсутствие ключа — не ошибка")
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestCache_Overwrite(t *testing.T) {
	_, cli := setupMiniredis(t)
	cache := NewCache(cli, 0, newTestLogger())
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", `"1rem"`))
	require.NoError(t, cache.Set(ctx, "key", `"2rem"`))

	value, found, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `"2rem"`, value, "значение должно быть перезаписано")
}

func TestCache_TTL(t *testing.T) {
	mr, cli := setupMiniredis(t)
	cache := NewCache(cli, time.Minute, newTestLogger())
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", `"1rem"`))
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"key"))

	mr.FastForward(2 * time.Minute)

	_, found, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, found, "ключ должен истечь")
}

func TestCache_ServerDown(t *testing.T) {
	mr, cli := setupMiniredis(t)
	cache := NewCache(cli, 0, newTestLogger())
	mr.Close()

	_, found, err := cache.Get(context.Background(), "key")
	assert.Error(t, err)
	assert.False(t, found)
	assert.Error(t, cache.Set(context.Background(), "key", "v"))
}

func TestNew_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	_, err := New(context.Background(), &Config{Host: host, Port: port})
	assert.ErrorContains(t, err, "redis ping")
}
