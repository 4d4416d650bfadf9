package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/adapters/storage/memory"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/identity"
	"jobdesk/internal/store"
)

func TestMigrateAll_ReplacesLegacyIDs(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	alloc := testAllocator()
	adminIDs := []int64{1001}

	users := store.NewUsers(backend, alloc, adminIDs)
	vacancies := store.NewVacancies(backend, alloc, adminIDs)
	resumes := store.NewResumes(backend, alloc, adminIDs)

	// Унаследованные идентификаторы из Date.now() вперемешку с уже
	// четырехзначными.
	require.NoError(t, users.Create(ctx, &entities.User{ID: 1758912345678, Username: "ivanov"}))
	require.NoError(t, users.Create(ctx, &entities.User{ID: 2001, Username: "petrov"}))
	require.NoError(t, vacancies.Create(ctx, &entities.Vacancy{ID: 1758912345999, Title: "Слесарь", EmployerID: "2001"}))
	require.NoError(t, resumes.Create(ctx, 2001, &entities.Resume{ID: 1758913000000, Title: "Курьер"}))

	require.NoError(t, store.MigrateAll(ctx, backend, users, vacancies, resumes, adminIDs))

	userList, err := users.List(ctx)
	require.NoError(t, err)
	vacancyList, err := vacancies.List(ctx)
	require.NoError(t, err)
	resumeList, err := resumes.ListByOwner(ctx, 2001)
	require.NoError(t, err)

	seen := map[int64]struct{}{1001: {}}
	for _, id := range []int64{userList[0].ID, userList[1].ID, vacancyList[0].ID, resumeList[0].ID} {
		assert.True(t, identity.Valid(id))
		_, dup := seen[id]
		require.False(t, dup, "идентификаторы пересеклись после миграции")
		seen[id] = struct{}{}
	}

	// Уже четырехзначный идентификатор не тронут.
	assert.Equal(t, int64(2001), userList[1].ID)
}

func TestMigrateAll_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	alloc := testAllocator()

	users := store.NewUsers(backend, alloc, nil)
	vacancies := store.NewVacancies(backend, alloc, nil)
	resumes := store.NewResumes(backend, alloc, nil)

	require.NoError(t, users.Create(ctx, &entities.User{ID: 1758912345678, Username: "ivanov"}))
	require.NoError(t, store.MigrateAll(ctx, backend, users, vacancies, resumes, nil))

	first, err := users.List(ctx)
	require.NoError(t, err)

	require.NoError(t, store.MigrateAll(ctx, backend, users, vacancies, resumes, nil))
	second, err := users.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
