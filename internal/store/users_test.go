package store_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/adapters/storage/memory"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/identity"
	"jobdesk/internal/store"
)

func testAllocator() *identity.Allocator {
	return identity.NewWithSource(rand.New(rand.NewSource(42)))
}

func TestUsers_CreateAssignsUniqueID(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	users := store.NewUsers(backend, testAllocator(), []int64{1001})

	first := entities.User{Username: "ivanov", FullName: "Иванов Иван", Status: entities.StatusUser}
	require.NoError(t, users.Create(ctx, &first))
	assert.True(t, identity.Valid(first.ID))
	assert.NotEqual(t, int64(1001), first.ID)

	second := entities.User{Username: "petrov", FullName: "Петров Петр", Status: entities.StatusUser}
	require.NoError(t, users.Create(ctx, &second))
	assert.True(t, identity.Valid(second.ID))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUsers_CreateKeepsPresetID(t *testing.T) {
	ctx := context.Background()
	users := store.NewUsers(memory.New(), testAllocator(), nil)

	user := entities.User{ID: 4321, Username: "ivanov"}
	require.NoError(t, users.Create(ctx, &user))
	assert.Equal(t, int64(4321), user.ID)
}

func TestUsers_CreateDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	users := store.NewUsers(memory.New(), testAllocator(), nil)

	require.NoError(t, users.Create(ctx, &entities.User{Username: "ivanov"}))
	err := users.Create(ctx, &entities.User{Username: "ivanov"})
	require.ErrorIs(t, err, store.ErrDuplicateUsername)

	// Логины чувствительны к регистру.
	require.NoError(t, users.Create(ctx, &entities.User{Username: "Ivanov"}))

	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUsers_FindAbsentReturnsNil(t *testing.T) {
	ctx := context.Background()
	users := store.NewUsers(memory.New(), testAllocator(), nil)

	byID, err := users.FindByID(ctx, 5555)
	require.NoError(t, err)
	assert.Nil(t, byID)

	byName, err := users.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, byName)
}

func TestUsers_UpdateAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	users := store.NewUsers(memory.New(), testAllocator(), nil)

	require.NoError(t, users.Update(ctx, &entities.User{ID: 5555, Username: "ghost"}))

	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUsers_DeleteLeavesDependentPartitions(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	alloc := testAllocator()
	users := store.NewUsers(backend, alloc, nil)
	resumes := store.NewResumes(backend, alloc, nil)

	user := entities.User{Username: "ivanov"}
	require.NoError(t, users.Create(ctx, &user))
	require.NoError(t, resumes.Create(ctx, user.ID, &entities.Resume{Title: "Курьер"}))

	require.NoError(t, users.Delete(ctx, user.ID))

	// Каскадного удаления нет: раздел резюме осиротел, но его
	// идентификаторы по-прежнему исключаются из выдачи.
	orphaned, err := resumes.ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orphaned, 1)

	existing, err := store.CollectIDs(ctx, backend, nil)
	require.NoError(t, err)
	assert.Contains(t, existing, identity.Key(orphaned[0].ID))
}

func TestVacancies_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	vacancies := store.NewVacancies(backend, testAllocator(), nil)

	vacancy := entities.Vacancy{
		Title:      "Слесарь",
		Company:    "ООО Ромашка",
		EmployerID: "2001",
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, vacancies.Create(ctx, &vacancy))
	require.True(t, identity.Valid(vacancy.ID))

	vacancy.Title = "Слесарь-сборщик"
	require.NoError(t, vacancies.Update(ctx, &vacancy))

	found, err := vacancies.FindByID(ctx, vacancy.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Слесарь-сборщик", found.Title)
}

func TestCollectIDs_SpansAllPartitions(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	alloc := testAllocator()
	adminIDs := []int64{1001}

	users := store.NewUsers(backend, alloc, adminIDs)
	vacancies := store.NewVacancies(backend, alloc, adminIDs)
	resumes := store.NewResumes(backend, alloc, adminIDs)

	user := entities.User{Username: "ivanov"}
	require.NoError(t, users.Create(ctx, &user))
	vacancy := entities.Vacancy{Title: "Слесарь", EmployerID: "2001"}
	require.NoError(t, vacancies.Create(ctx, &vacancy))
	resume := entities.Resume{Title: "Слесарь"}
	require.NoError(t, resumes.Create(ctx, user.ID, &resume))

	existing, err := store.CollectIDs(ctx, backend, adminIDs)
	require.NoError(t, err)

	assert.Contains(t, existing, identity.Key(1001))
	assert.Contains(t, existing, identity.Key(user.ID))
	assert.Contains(t, existing, identity.Key(vacancy.ID))
	assert.Contains(t, existing, identity.Key(resume.ID))
}
