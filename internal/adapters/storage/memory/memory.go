// Package memory реализует хранилище в памяти процесса. Основной вариант
// для тестов; опциональный предел емкости моделирует квоту браузерного
// localStorage, с которым работал исходный клиент.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"jobdesk/internal/ports/storage"
)

// Backend - потокобезопасное хранилище ключ-значение в памяти.
type Backend struct {
	mu       sync.RWMutex
	data     map[string]string
	capacity int
}

// New создает пустое хранилище без ограничения емкости.
func New() *Backend {
	return &Backend{data: make(map[string]string)}
}

// NewWithCapacity создает хранилище, суммарный объем значений которого
// ограничен capacity байтами; запись сверх предела дает ErrStorageFull.
func NewWithCapacity(capacity int) *Backend {
	return &Backend{data: make(map[string]string), capacity: capacity}
}

// Read возвращает значение ключа.
func (b *Backend) Read(_ context.Context, key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.data[key]
	if !ok {
		return "", fmt.Errorf("reading %q: %w", key, storage.ErrKeyNotFound)
	}
	return value, nil
}

// Write сохраняет значение ключа.
func (b *Backend) Write(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.capacity > 0 {
		used := 0
		for k, v := range b.data {
			if k == key {
				continue
			}
			used += len(v)
		}
		if used+len(value) > b.capacity {
			return fmt.Errorf("writing %q: %w", key, storage.ErrStorageFull)
		}
	}

	b.data[key] = value
	return nil
}

// Remove удаляет ключ.
func (b *Backend) Remove(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.data, key)
	return nil
}

// Keys возвращает отсортированный список ключей с указанным префиксом.
func (b *Backend) Keys(_ context.Context, prefix string) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0)
	for k := range b.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Close для хранилища в памяти ничего не делает.
func (b *Backend) Close() error {
	return nil
}
