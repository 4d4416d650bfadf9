package api

import (
	"context"

	"jobdesk/internal/domain/entities"
)

// AdminUseCase определяет порт для операций администратора.
type AdminUseCase interface {
	ListUsers(ctx context.Context) ([]entities.User, error)

	PromoteModerator(ctx context.Context, userID int64) error

	DemoteModerator(ctx context.Context, userID int64) error

	ToggleActive(ctx context.Context, userID int64) error

	DeleteUser(ctx context.Context, userID int64) error

	CreateModerator(ctx context.Context, fullName, username, phone, password string) (*entities.User, error)
}

// ProfileUseCase определяет порт для профиля-надстройки учетной записи.
type ProfileUseCase interface {
	Get(ctx context.Context, user *entities.User) (*entities.Profile, error)

	Update(ctx context.Context, userID int64, profile *entities.Profile) error
}
