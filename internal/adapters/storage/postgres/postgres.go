// Package postgres реализует хранилище поверх единственной таблицы
// kv_store(key, value); схему создает миграция migrations/kv.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"jobdesk/internal/ports/storage"
	"jobdesk/pkg/logger"
)

// Код ошибки Postgres disk_full.
const pgDiskFullCode = "53100"

// Сообщения об ошибках.
const (
	ErrorFailedToRead   = "failed to read value from kv_store"
	ErrorFailedToWrite  = "failed to write value to kv_store"
	ErrorFailedToRemove = "failed to remove value from kv_store"
	ErrorFailedToList   = "failed to list keys in kv_store"
)

// PgxPoolInterface описывает операции пула, нужные бэкенду; ему
// удовлетворяют и pgxpool.Pool, и pgxmock в тестах.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Close()
}

// Backend реализует storage.Backend поверх Postgres.
type Backend struct {
	pool PgxPoolInterface
}

// New создает хранилище поверх готового пула соединений.
func New(pool PgxPoolInterface) *Backend {
	return &Backend{pool: pool}
}

// Read возвращает значение ключа.
func (b *Backend) Read(ctx context.Context, key string) (string, error) {
	var value string
	err := b.pool.QueryRow(ctx,
		`SELECT value FROM kv_store WHERE key = $1`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("reading %q: %w", key, storage.ErrKeyNotFound)
		}
		logger.Log(ctx).Error(ctx, ErrorFailedToRead, zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToRead, err)
	}
	return value, nil
}

// Write сохраняет значение ключа.
func (b *Backend) Write(ctx context.Context, key, value string) error {
	_, err := b.pool.Exec(ctx,
		`INSERT INTO kv_store (key, value) VALUES ($1, $2)
         ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToWrite, zap.String("key", key), zap.Error(err))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgDiskFullCode {
			return fmt.Errorf("writing %q: %w", key, storage.ErrStorageFull)
		}
		return fmt.Errorf("%s: %w", ErrorFailedToWrite, err)
	}
	return nil
}

// Remove удаляет ключ.
func (b *Backend) Remove(ctx context.Context, key string) error {
	if _, err := b.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToRemove, zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToRemove, err)
	}
	return nil
}

// Keys возвращает ключи с указанным префиксом. Сравнение по срезу строки,
// а не LIKE: в префиксах разделов есть символ подчеркивания.
func (b *Backend) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := b.pool.Query(ctx,
		`SELECT key FROM kv_store WHERE left(key, length($1::text)) = $1 ORDER BY key`,
		prefix,
	)
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToList, zap.String("prefix", prefix), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToList, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrorFailedToList, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedToList, err)
	}
	return keys, nil
}

// Close закрывает пул соединений.
func (b *Backend) Close() error {
	b.pool.Close()
	return nil
}
