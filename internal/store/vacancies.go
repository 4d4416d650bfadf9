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

// Vacancies - репозиторий вакансий в общем разделе "vacancies".
type Vacancies struct {
	backend  storage.Backend
	alloc    *identity.Allocator
	adminIDs []int64
}

// NewVacancies создает репозиторий вакансий.
func NewVacancies(backend storage.Backend, alloc *identity.Allocator, adminIDs []int64) *Vacancies {
	return &Vacancies{backend: backend, alloc: alloc, adminIDs: adminIDs}
}

// List возвращает все вакансии в порядке хранения.
func (r *Vacancies) List(ctx context.Context) ([]entities.Vacancy, error) {
	return readCollection(ctx, r.backend, KeyVacancies, (*entities.Vacancy).Normalize)
}

// FindByID возвращает вакансию или nil, если ее нет.
func (r *Vacancies) FindByID(ctx context.Context, id int64) (*entities.Vacancy, error) {
	vacancies, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vacancies {
		if vacancies[i].ID == id {
			return &vacancies[i], nil
		}
	}
	return nil, nil
}

// Create добавляет вакансию, при необходимости выдав идентификатор
// против объединения идентификаторов всех разделов.
func (r *Vacancies) Create(ctx context.Context, vacancy *entities.Vacancy) error {
	vacancies, err := r.List(ctx)
	if err != nil {
		return err
	}

	if !identity.Valid(vacancy.ID) {
		existing, err := CollectIDs(ctx, r.backend, r.adminIDs)
		if err != nil {
			return fmt.Errorf("creating vacancy: %w", err)
		}
		id, err := r.alloc.Allocate(existing)
		if err != nil {
			return fmt.Errorf("creating vacancy: %w", err)
		}
		vacancy.ID = id
	}

	vacancies = append(vacancies, *vacancy)
	return writeCollection(ctx, r.backend, KeyVacancies, vacancies)
}

// Update заменяет вакансию с тем же идентификатором; отсутствие записи -
// тихий no-op.
func (r *Vacancies) Update(ctx context.Context, vacancy *entities.Vacancy) error {
	vacancies, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range vacancies {
		if vacancies[i].ID == vacancy.ID {
			vacancies[i] = *vacancy
			return writeCollection(ctx, r.backend, KeyVacancies, vacancies)
		}
	}
	return nil
}

// Delete удаляет вакансию; отклики на нее остаются в разделах участников.
func (r *Vacancies) Delete(ctx context.Context, id int64) error {
	vacancies, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range vacancies {
		if vacancies[i].ID == id {
			vacancies = append(vacancies[:i], vacancies[i+1:]...)
			return writeCollection(ctx, r.backend, KeyVacancies, vacancies)
		}
	}
	return nil
}

// MigrateIDs приводит идентификаторы раздела к четырехзначному формату.
func (r *Vacancies) MigrateIDs(ctx context.Context, existing map[string]struct{}) (bool, error) {
	vacancies, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	ids := make([]int64, len(vacancies))
	for i := range vacancies {
		ids[i] = vacancies[i].ID
	}

	migrated, changed, err := r.alloc.MigrateLegacyIDs(ids, existing)
	if err != nil {
		return false, fmt.Errorf("migrating vacancy ids: %w", err)
	}
	if !changed {
		return false, nil
	}

	for i := range vacancies {
		vacancies[i].ID = migrated[i]
	}
	if err := writeCollection(ctx, r.backend, KeyVacancies, vacancies); err != nil {
		return false, err
	}

	logger.Log(ctx).Info(ctx, "migrated legacy vacancy ids", zap.Int("count", len(vacancies)))
	return true, nil
}
