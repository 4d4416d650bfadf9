package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/app"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/ports/api"
)

func (f *fixture) adminUC() api.AdminUseCase {
	return app.NewAdminUseCase(f.users, f.resumes, f.applications)
}

func TestAdmin_ListUsersWithoutPasswords(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	registerJobseeker(t, f)

	users, err := f.adminUC().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].Password)
}

func TestAdmin_PromoteAndDemote(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	user := registerJobseeker(t, f)

	require.NoError(t, f.adminUC().PromoteModerator(ctx, user.ID))
	stored, err := f.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusModerator, stored.Status)

	require.NoError(t, f.adminUC().DemoteModerator(ctx, user.ID))
	stored, err = f.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusUser, stored.Status)

	err = f.adminUC().PromoteModerator(ctx, 123)
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestAdmin_ToggleActive(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	user := registerJobseeker(t, f)

	require.NoError(t, f.adminUC().ToggleActive(ctx, user.ID))
	stored, err := f.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active())

	require.NoError(t, f.adminUC().ToggleActive(ctx, user.ID))
	stored, err = f.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, stored.Active())
}

func TestAdmin_DeleteUserLeavesOrphans(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	user := registerJobseeker(t, f)
	createResume(t, f, user)

	require.NoError(t, f.adminUC().DeleteUser(ctx, user.ID))

	stored, err := f.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	// Резюме удаленного владельца остаются в своем разделе.
	orphaned, err := f.resumes.ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, orphaned, 1)
}

func TestAdmin_CreateModerator(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	moderator, err := f.adminUC().CreateModerator(ctx,
		"Петрова Анна Сергеевна", "petrova", "+7 (900) 555-66-77", "secret1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusModerator, moderator.Status)
	assert.Equal(t, entities.RoleNone, moderator.Role)
	assert.Empty(t, moderator.Password)

	_, err = f.adminUC().CreateModerator(ctx,
		"Петрова Анна", "pe", "+7 (900) 555-66-77", "secret1")
	require.ErrorIs(t, err, entities.ErrUsernameTooShort)
}
