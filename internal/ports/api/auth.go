// Package api определяет порты прикладного уровня платформы.
package api

import (
	"context"

	"jobdesk/internal/domain/entities"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, fullName, username, phone, password, role string) (*entities.User, error)

	Login(ctx context.Context, username, password string) (*entities.User, error)

	Logout(ctx context.Context) error

	Current(ctx context.Context) (*entities.User, error)
}
