// Package codec сериализует коллекции сущностей в текстовые блобы
// хранилища. Формат - JSON массивы с теми же именами полей, что писал
// исходный клиент, поэтому старые блобы читаются без преобразований.
package codec

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"jobdesk/pkg/logger"
)

// Сообщения логирования.
const (
	LogCorruptCollection = "corrupt collection blob, falling back to empty"
	LogCorruptRecord     = "corrupt record blob"
)

// EncodeAll сериализует коллекцию в JSON массив.
func EncodeAll[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encoding collection: %w", err)
	}
	return string(data), nil
}

// DecodeAll разбирает JSON массив коллекции. Пустой или поврежденный блоб
// деградирует до пустой коллекции: поврежденные данные никогда не
// блокируют работу вызывающего кода. Каждая запись пропускается через
// normalize для подстановки унаследованных значений по умолчанию.
func DecodeAll[T any](ctx context.Context, text string, normalize func(*T)) []T {
	if text == "" {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		logger.Log(ctx).Warn(ctx, LogCorruptCollection, zap.Error(err))
		return []T{}
	}
	if items == nil {
		items = []T{}
	}

	if normalize != nil {
		for i := range items {
			normalize(&items[i])
		}
	}
	return items
}

// EncodeOne сериализует одиночную запись (сессия, профиль).
func EncodeOne[T any](item T) (string, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return "", fmt.Errorf("encoding record: %w", err)
	}
	return string(data), nil
}

// DecodeOne разбирает одиночную запись; второй результат false при
// пустом или поврежденном блобе.
func DecodeOne[T any](ctx context.Context, text string) (T, bool) {
	var item T
	if text == "" {
		return item, false
	}
	if err := json.Unmarshal([]byte(text), &item); err != nil {
		logger.Log(ctx).Warn(ctx, LogCorruptRecord, zap.Error(err))
		var zero T
		return zero, false
	}
	return item, true
}
