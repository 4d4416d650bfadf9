// Package storage определяет порт синхронного строкового хранилища,
// поверх которого работают все репозитории сущностей.
package storage

import (
	"context"
	"errors"
)

// Ошибки хранилища.
var (
	// ErrKeyNotFound возвращается при чтении отсутствующего ключа.
	ErrKeyNotFound = errors.New("key not found")
	// ErrStorageFull возвращается при записи сверх емкости хранилища.
	// Операция не повторяется; ошибка должна дойти до вызывающего кода.
	ErrStorageFull = errors.New("storage is full")
)

// Backend - долговременное хранилище текстовых блобов по строковым ключам.
// Операции синхронные, транзакций и атомарности между ключами нет:
// два конкурирующих писателя одного раздела перетирают друг друга
// (последняя запись побеждает) - принятое ограничение модели хранения.
type Backend interface {
	// Read возвращает значение ключа или ErrKeyNotFound.
	Read(ctx context.Context, key string) (string, error)
	// Write сохраняет значение ключа; при нехватке места - ErrStorageFull.
	Write(ctx context.Context, key, value string) error
	// Remove удаляет ключ; удаление отсутствующего ключа не ошибка.
	Remove(ctx context.Context, key string) error
	// Keys возвращает все ключи с указанным префиксом.
	Keys(ctx context.Context, prefix string) ([]string, error)
	// Close освобождает ресурсы хранилища.
	Close() error
}
