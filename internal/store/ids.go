package store

import (
	"context"
	"fmt"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/identity"
	"jobdesk/internal/ports/storage"
)

// CollectIDs собирает объединение идентификаторов всех разделов:
// пользователи, администраторы из стартовых данных, вакансии и резюме
// каждого владельца. Именно это объединение передается аллокатору -
// идентификаторы уникальны сразу по всем видам сущностей. Разделы
// резюме перечисляются по ключам хранилища, а не по списку
// пользователей, поэтому осиротевшие разделы удаленных владельцев
// тоже защищены от повторной выдачи их идентификаторов.
func CollectIDs(ctx context.Context, backend storage.Backend, adminIDs []int64) (map[string]struct{}, error) {
	existing := make(map[string]struct{})

	for _, id := range adminIDs {
		existing[identity.Key(id)] = struct{}{}
	}

	users, err := readCollection(ctx, backend, KeyUsers, (*entities.User).Normalize)
	if err != nil {
		return nil, fmt.Errorf("collecting user ids: %w", err)
	}
	for i := range users {
		existing[identity.Key(users[i].ID)] = struct{}{}
	}

	vacancies, err := readCollection(ctx, backend, KeyVacancies, (*entities.Vacancy).Normalize)
	if err != nil {
		return nil, fmt.Errorf("collecting vacancy ids: %w", err)
	}
	for i := range vacancies {
		existing[identity.Key(vacancies[i].ID)] = struct{}{}
	}

	keys, err := backend.Keys(ctx, ResumesPrefix)
	if err != nil {
		return nil, fmt.Errorf("collecting resume partitions: %w", err)
	}
	for _, key := range keys {
		resumes, err := readCollection(ctx, backend, key, (*entities.Resume).Normalize)
		if err != nil {
			return nil, fmt.Errorf("collecting resume ids from %q: %w", key, err)
		}
		for i := range resumes {
			existing[identity.Key(resumes[i].ID)] = struct{}{}
		}
	}

	return existing, nil
}
