package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/app"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/ports/api"
	"jobdesk/internal/store"
)

func (f *fixture) profileUC() api.ProfileUseCase {
	return app.NewProfileUseCase(f.backend)
}

func TestProfile_DefaultsWhenEmpty(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	user := registerJobseeker(t, f)

	profile, err := f.profileUC().Get(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultBirthDate, profile.BirthDate)
	assert.Equal(t, user.Username+"@example.com", profile.Email)
	assert.Equal(t, entities.DefaultAvatar, profile.Avatar)
}

func TestProfile_UpdateAndRead(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	user := registerJobseeker(t, f)

	require.NoError(t, f.profileUC().Update(ctx, user.ID, &entities.Profile{
		BirthDate: "1995-06-12",
		Email:     "ivanov@mail.ru",
	}))

	profile, err := f.profileUC().Get(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "1995-06-12", profile.BirthDate)
	assert.Equal(t, "ivanov@mail.ru", profile.Email)
	// Незаполненный аватар подставляется при чтении.
	assert.Equal(t, entities.DefaultAvatar, profile.Avatar)
}

func TestProfile_CorruptRecordFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	user := registerJobseeker(t, f)

	require.NoError(t, f.backend.Write(ctx, store.UserDataKey(user.ID), "{broken"))

	profile, err := f.profileUC().Get(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultBirthDate, profile.BirthDate)
}
