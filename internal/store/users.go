package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/identity"
	"jobdesk/internal/ports/storage"
	"jobdesk/pkg/logger"
)

// Users - репозиторий учетных записей в разделе "users".
type Users struct {
	backend  storage.Backend
	alloc    *identity.Allocator
	adminIDs []int64
}

// NewUsers создает репозиторий учетных записей. adminIDs - идентификаторы
// администраторов из стартовых данных, они участвуют в объединении занятых
// идентификаторов, хотя сами администраторы в разделе не хранятся.
func NewUsers(backend storage.Backend, alloc *identity.Allocator, adminIDs []int64) *Users {
	return &Users{backend: backend, alloc: alloc, adminIDs: adminIDs}
}

// List возвращает все учетные записи в порядке хранения.
func (r *Users) List(ctx context.Context) ([]entities.User, error) {
	return readCollection(ctx, r.backend, KeyUsers, (*entities.User).Normalize)
}

// FindByID возвращает учетную запись или nil, если ее нет.
func (r *Users) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// FindByUsername возвращает учетную запись по логину (с учетом регистра)
// или nil, если ее нет.
func (r *Users) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Create добавляет учетную запись. Идентификатор выдается против
// объединения идентификаторов всех разделов, если не задан заранее.
// Занятый логин - ErrDuplicateUsername, раздел не изменяется.
func (r *Users) Create(ctx context.Context, user *entities.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].Username == user.Username {
			return fmt.Errorf("creating user %q: %w", user.Username, ErrDuplicateUsername)
		}
	}

	if !identity.Valid(user.ID) {
		existing, err := CollectIDs(ctx, r.backend, r.adminIDs)
		if err != nil {
			return fmt.Errorf("creating user %q: %w", user.Username, err)
		}
		id, err := r.alloc.Allocate(existing)
		if err != nil {
			return fmt.Errorf("creating user %q: %w", user.Username, err)
		}
		user.ID = id
	}

	users = append(users, *user)
	return writeCollection(ctx, r.backend, KeyUsers, users)
}

// Update заменяет учетную запись с тем же идентификатором. Отсутствие
// записи - тихий no-op: вызывающий код проверяет существование сам,
// если ему важна разница.
func (r *Users) Update(ctx context.Context, user *entities.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			return writeCollection(ctx, r.backend, KeyUsers, users)
		}
	}
	return nil
}

// Delete удаляет учетную запись. Зависимые резюме и отклики остаются
// в своих разделах - каскадного удаления нет.
func (r *Users) Delete(ctx context.Context, id int64) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users = append(users[:i], users[i+1:]...)
			return writeCollection(ctx, r.backend, KeyUsers, users)
		}
	}
	return nil
}

// MigrateIDs приводит идентификаторы раздела к четырехзначному формату.
// existing пополняется выданными и существующими идентификаторами.
func (r *Users) MigrateIDs(ctx context.Context, existing map[string]struct{}) (bool, error) {
	users, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	ids := make([]int64, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}

	migrated, changed, err := r.alloc.MigrateLegacyIDs(ids, existing)
	if err != nil {
		return false, fmt.Errorf("migrating user ids: %w", err)
	}
	if !changed {
		return false, nil
	}

	for i := range users {
		users[i].ID = migrated[i]
	}
	if err := writeCollection(ctx, r.backend, KeyUsers, users); err != nil {
		return false, err
	}

	logger.Log(ctx).Info(ctx, "migrated legacy user ids", zap.Int("count", len(users)))
	return true, nil
}
