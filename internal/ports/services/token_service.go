// Package services определяет порты вспомогательных сервисов.
package services

import (
	"context"
	"time"
)

// TokenService определяет интерфейс для токенов доступа HTTP фасада.
// Субъект токена - четырехзначный идентификатор учетной записи; сеансом
// записи остается ключ currentUser в хранилище.
type TokenService interface {
	Generate(ctx context.Context, userID int64) (string, time.Time, error)

	Validate(ctx context.Context, token string) (int64, error)
}
