package app

import (
	"context"
	"errors"
	"fmt"

	"jobdesk/internal/codec"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/ports/api"
	"jobdesk/internal/ports/storage"
	"jobdesk/internal/store"
)

const (
	errCtxReadingProfile = "reading profile"
	errCtxSavingProfile  = "saving profile"
)

// ProfileUseCaseImpl реализует интерфейс ProfileUseCase. Профиль -
// надстройка userData_<userId> над учетной записью: дата рождения,
// почта и аватар, со значениями по умолчанию при чтении.
type ProfileUseCaseImpl struct {
	backend storage.Backend
}

// NewProfileUseCase создает новый экземпляр сценариев профиля.
func NewProfileUseCase(backend storage.Backend) api.ProfileUseCase {
	return &ProfileUseCaseImpl{backend: backend}
}

// Get возвращает профиль владельца. Отсутствующая или поврежденная
// запись дает профиль из значений по умолчанию.
func (p *ProfileUseCaseImpl) Get(ctx context.Context, user *entities.User) (*entities.Profile, error) {
	var profile entities.Profile

	text, err := p.backend.Read(ctx, store.UserDataKey(user.ID))
	switch {
	case err == nil:
		if decoded, ok := codec.DecodeOne[entities.Profile](ctx, text); ok {
			profile = decoded
		}
	case errors.Is(err, storage.ErrKeyNotFound):
		// Профиль еще не заполнялся.
	default:
		return nil, fmt.Errorf("%s: %w", errCtxReadingProfile, err)
	}

	resolved := profile.WithDefaults(user.Username)
	return &resolved, nil
}

// Update перезаписывает профиль владельца.
func (p *ProfileUseCaseImpl) Update(ctx context.Context, userID int64, profile *entities.Profile) error {
	text, err := codec.EncodeOne(*profile)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxSavingProfile, err)
	}
	if err := p.backend.Write(ctx, store.UserDataKey(userID), text); err != nil {
		return fmt.Errorf("%s: %w", errCtxSavingProfile, err)
	}
	return nil
}
