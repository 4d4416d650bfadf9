package redis_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/adapters/storage/redis"
	"jobdesk/internal/config"
	"jobdesk/internal/ports/storage"
)

func testBackend(t *testing.T) (*miniredis.Miniredis, *redis.Backend) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := &config.RedisConfig{
		Host:           host,
		Port:           port,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    3 * time.Second,
		WriteTimeout:   3 * time.Second,
		PoolSize:       10,
	}

	backend, err := redis.New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	return s, backend
}

func TestNew_ConnectionFailure(t *testing.T) {
	cfg := &config.RedisConfig{
		Host:           "nonexistent.host",
		Port:           12345,
		ConnectTimeout: 100 * time.Millisecond,
		ReadTimeout:    100 * time.Millisecond,
		WriteTimeout:   100 * time.Millisecond,
	}

	backend, err := redis.New(context.Background(), cfg)

	require.Error(t, err)
	assert.Nil(t, backend)
	assert.Contains(t, err.Error(), redis.ErrorFailedToConnect)
}

func TestBackend_ReadWriteRemove(t *testing.T) {
	ctx := context.Background()
	_, backend := testBackend(t)

	t.Run("отсутствующий ключ", func(t *testing.T) {
		_, err := backend.Read(ctx, "users")
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	})

	t.Run("запись и чтение", func(t *testing.T) {
		require.NoError(t, backend.Write(ctx, "users", `[{"id":1234}]`))

		value, err := backend.Read(ctx, "users")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1234}]`, value)
	})

	t.Run("удаление", func(t *testing.T) {
		require.NoError(t, backend.Remove(ctx, "users"))
		_, err := backend.Read(ctx, "users")
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	})
}

func TestBackend_Keys(t *testing.T) {
	ctx := context.Background()
	_, backend := testBackend(t)

	require.NoError(t, backend.Write(ctx, "applications_1234", `[]`))
	require.NoError(t, backend.Write(ctx, "applications_to_employer_5678", `[]`))
	require.NoError(t, backend.Write(ctx, "resumes_1234", `[]`))

	keys, err := backend.Keys(ctx, "resumes_")
	require.NoError(t, err)
	assert.Equal(t, []string{"resumes_1234"}, keys)

	apps, err := backend.Keys(ctx, "applications_")
	require.NoError(t, err)
	assert.Len(t, apps, 2, "префикс applications_ захватывает и раздел работодателя")
}

func TestBackend_ValuesSurviveReconnect(t *testing.T) {
	ctx := context.Background()
	s, backend := testBackend(t)

	require.NoError(t, backend.Write(ctx, "vacancies", `[{"id":4321}]`))

	// Ключ лежит в Redis без TTL: хранилище, а не кэш.
	assert.Equal(t, time.Duration(0), s.TTL("vacancies"))
}
