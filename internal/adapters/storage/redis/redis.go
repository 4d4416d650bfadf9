// Package redis реализует хранилище поверх Redis. Ключи пишутся без TTL:
// это долговременное хранилище данных платформы, а не кэш.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"jobdesk/internal/config"
	"jobdesk/internal/ports/storage"
	"jobdesk/pkg/logger"
)

// Сообщения об ошибках.
const (
	ErrorFailedToConnect = "failed to connect to redis"
	ErrorFailedToRead    = "failed to read value from redis"
	ErrorFailedToWrite   = "failed to write value to redis"
	ErrorFailedToRemove  = "failed to remove value from redis"
	ErrorFailedToScan    = "failed to scan keys in redis"
	ErrorFailedToClose   = "failed to close redis connection"
)

// Backend реализует storage.Backend поверх Redis.
type Backend struct {
	client *goredis.Client
}

// New создает хранилище и проверяет соединение.
func New(ctx context.Context, cfg *config.RedisConfig) (*Backend, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Address(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.ConnectTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedToConnect, err)
	}

	return &Backend{client: client}, nil
}

// Read возвращает значение ключа.
func (b *Backend) Read(ctx context.Context, key string) (string, error) {
	value, err := b.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", fmt.Errorf("reading %q: %w", key, storage.ErrKeyNotFound)
		}
		logger.Log(ctx).Error(ctx, ErrorFailedToRead, zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToRead, err)
	}
	return value, nil
}

// Write сохраняет значение ключа без срока жизни.
func (b *Backend) Write(ctx context.Context, key, value string) error {
	if err := b.client.Set(ctx, key, value, 0).Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToWrite, zap.String("key", key), zap.Error(err))
		if strings.Contains(err.Error(), "OOM") {
			return fmt.Errorf("writing %q: %w", key, storage.ErrStorageFull)
		}
		return fmt.Errorf("%s: %w", ErrorFailedToWrite, err)
	}
	return nil
}

// Remove удаляет ключ.
func (b *Backend) Remove(ctx context.Context, key string) error {
	if err := b.client.Del(ctx, key).Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToRemove, zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToRemove, err)
	}
	return nil
}

// Keys возвращает ключи с указанным префиксом через SCAN.
func (b *Backend) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)
	iter := b.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToScan, zap.String("prefix", prefix), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToScan, err)
	}
	return keys, nil
}

// Close закрывает соединение с Redis.
func (b *Backend) Close() error {
	if err := b.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
