package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/identity"
	"jobdesk/internal/ports/storage"
	"jobdesk/pkg/logger"
)

// Resumes - репозиторий резюме; у каждого владельца свой раздел
// resumes_<userId>.
type Resumes struct {
	backend  storage.Backend
	alloc    *identity.Allocator
	adminIDs []int64
}

// NewResumes создает репозиторий резюме.
func NewResumes(backend storage.Backend, alloc *identity.Allocator, adminIDs []int64) *Resumes {
	return &Resumes{backend: backend, alloc: alloc, adminIDs: adminIDs}
}

// ListByOwner возвращает резюме владельца в порядке хранения.
func (r *Resumes) ListByOwner(ctx context.Context, ownerID int64) ([]entities.Resume, error) {
	return readCollection(ctx, r.backend, ResumesKey(ownerID), (*entities.Resume).Normalize)
}

// ListAll собирает резюме всех владельцев. Каждой записи проставляются
// UserID и UserFullName владельца (имя - по списку пользователей; для
// осиротевших разделов остается пустым).
func (r *Resumes) ListAll(ctx context.Context) ([]entities.Resume, error) {
	users, err := readCollection(ctx, r.backend, KeyUsers, (*entities.User).Normalize)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].FullName
	}

	keys, err := r.backend.Keys(ctx, ResumesPrefix)
	if err != nil {
		return nil, fmt.Errorf("listing resume partitions: %w", err)
	}

	all := make([]entities.Resume, 0)
	for _, key := range keys {
		ownerID, ok := ownerFromKey(key)
		if !ok {
			continue
		}
		resumes, err := readCollection(ctx, r.backend, key, (*entities.Resume).Normalize)
		if err != nil {
			return nil, err
		}
		for i := range resumes {
			resumes[i].UserID = ownerID
			resumes[i].UserFullName = names[ownerID]
			all = append(all, resumes[i])
		}
	}
	return all, nil
}

// FindByID ищет резюме по всем разделам; возвращает резюме и
// идентификатор владельца либо nil, если записи нет.
func (r *Resumes) FindByID(ctx context.Context, id int64) (*entities.Resume, int64, error) {
	keys, err := r.backend.Keys(ctx, ResumesPrefix)
	if err != nil {
		return nil, 0, fmt.Errorf("listing resume partitions: %w", err)
	}

	for _, key := range keys {
		ownerID, ok := ownerFromKey(key)
		if !ok {
			continue
		}
		resumes, err := readCollection(ctx, r.backend, key, (*entities.Resume).Normalize)
		if err != nil {
			return nil, 0, err
		}
		for i := range resumes {
			if resumes[i].ID == id {
				return &resumes[i], ownerID, nil
			}
		}
	}
	return nil, 0, nil
}

// Create добавляет резюме в раздел владельца, при необходимости выдав
// идентификатор против объединения идентификаторов всех разделов.
func (r *Resumes) Create(ctx context.Context, ownerID int64, resume *entities.Resume) error {
	resumes, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return err
	}

	if !identity.Valid(resume.ID) {
		existing, err := CollectIDs(ctx, r.backend, r.adminIDs)
		if err != nil {
			return fmt.Errorf("creating resume: %w", err)
		}
		id, err := r.alloc.Allocate(existing)
		if err != nil {
			return fmt.Errorf("creating resume: %w", err)
		}
		resume.ID = id
	}

	resumes = append(resumes, *resume)
	return writeCollection(ctx, r.backend, ResumesKey(ownerID), resumes)
}

// Update заменяет резюме с тем же идентификатором в разделе владельца;
// отсутствие записи - тихий no-op.
func (r *Resumes) Update(ctx context.Context, ownerID int64, resume *entities.Resume) error {
	resumes, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	for i := range resumes {
		if resumes[i].ID == resume.ID {
			resumes[i] = *resume
			return writeCollection(ctx, r.backend, ResumesKey(ownerID), resumes)
		}
	}
	return nil
}

// Delete удаляет резюме из раздела владельца.
func (r *Resumes) Delete(ctx context.Context, ownerID int64, id int64) error {
	resumes, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	for i := range resumes {
		if resumes[i].ID == id {
			resumes = append(resumes[:i], resumes[i+1:]...)
			return writeCollection(ctx, r.backend, ResumesKey(ownerID), resumes)
		}
	}
	return nil
}

// MigrateIDs приводит идентификаторы всех разделов резюме к
// четырехзначному формату; разделы обрабатываются последовательно с
// общим множеством занятых значений.
func (r *Resumes) MigrateIDs(ctx context.Context, existing map[string]struct{}) (bool, error) {
	keys, err := r.backend.Keys(ctx, ResumesPrefix)
	if err != nil {
		return false, fmt.Errorf("listing resume partitions: %w", err)
	}

	anyChanged := false
	for _, key := range keys {
		resumes, err := readCollection(ctx, r.backend, key, (*entities.Resume).Normalize)
		if err != nil {
			return false, err
		}

		ids := make([]int64, len(resumes))
		for i := range resumes {
			ids[i] = resumes[i].ID
		}

		migrated, changed, err := r.alloc.MigrateLegacyIDs(ids, existing)
		if err != nil {
			return false, fmt.Errorf("migrating resume ids in %q: %w", key, err)
		}
		if !changed {
			continue
		}

		for i := range resumes {
			resumes[i].ID = migrated[i]
		}
		if err := writeCollection(ctx, r.backend, key, resumes); err != nil {
			return false, err
		}
		anyChanged = true
		logger.Log(ctx).Info(ctx, "migrated legacy resume ids",
			zap.String("partition", key), zap.Int("count", len(resumes)))
	}
	return anyChanged, nil
}

// ownerFromKey извлекает идентификатор владельца из ключа раздела.
func ownerFromKey(key string) (int64, bool) {
	raw := strings.TrimPrefix(key, ResumesPrefix)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
