package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("development mode", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)
		require.NotNil(t, log)
		assert.NoError(t, func() error {
			log.Debug(context.Background(), "debug message")
			return nil
		}())
	})

	t.Run("production mode", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Production, "")
		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("invalid level", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "not-a-level")
		require.Error(t, err)
		assert.Nil(t, log)
	})
}

func TestFromContext(t *testing.T) {
	t.Run("логгер есть в контексте", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), testLogger)

		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, testLogger, got)
	})

	t.Run("логгера нет в контексте", func(t *testing.T) {
		got, err := logger.FromContext(context.Background())
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})
}

func TestLog_FallsBackWithoutContextLogger(t *testing.T) {
	got := logger.Log(context.Background())
	require.NotNil(t, got)

	// Логгер из контекста имеет приоритет над глобальным.
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx := logger.NewContext(context.Background(), testLogger)
	assert.Same(t, testLogger, logger.Log(ctx))
}

func TestRequestID(t *testing.T) {
	t.Run("генерация при пустом значении", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")
		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})

	t.Run("существующее значение сохраняется", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-42")
		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "req-42", id)
	})

	t.Run("отсутствует в пустом контексте", func(t *testing.T) {
		_, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
	})
}
