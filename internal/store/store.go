package store

import (
	"context"
	"errors"
	"fmt"

	"jobdesk/internal/codec"
	"jobdesk/internal/ports/storage"
)

// Ошибки репозиториев.
var (
	// ErrNotFound возвращается операциями над отсутствующей записью.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateUsername возвращается при создании пользователя с
	// занятым логином; логины чувствительны к регистру.
	ErrDuplicateUsername = errors.New("username already exists")
)

// readCollection читает и разбирает коллекцию раздела. Отсутствующий
// ключ и поврежденный блоб дают пустую коллекцию; ошибкой считается
// только отказ самого хранилища.
func readCollection[T any](ctx context.Context, backend storage.Backend, key string, normalize func(*T)) ([]T, error) {
	text, err := backend.Read(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("reading partition %q: %w", key, err)
	}
	return codec.DecodeAll(ctx, text, normalize), nil
}

// writeCollection сериализует и сохраняет коллекцию раздела целиком.
// Каждая мутация - полный цикл чтение-изменение-запись; защиты от гонки
// двух писателей нет, последняя запись побеждает.
func writeCollection[T any](ctx context.Context, backend storage.Backend, key string, items []T) error {
	text, err := codec.EncodeAll(items)
	if err != nil {
		return fmt.Errorf("encoding partition %q: %w", key, err)
	}
	if err := backend.Write(ctx, key, text); err != nil {
		return fmt.Errorf("writing partition %q: %w", key, err)
	}
	return nil
}
