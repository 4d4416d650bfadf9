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

func (f *fixture) resumeUC() api.ResumeUseCase {
	return app.NewResumeUseCase(f.resumes, f.seeds)
}

func createResume(t *testing.T, f *fixture, owner *entities.User) *entities.Resume {
	t.Helper()
	resume := &entities.Resume{
		Title: "Слесарь",
		Education: []entities.EducationEntry{
			{Institution: "Колледж №12", Specialty: "Слесарное дело", Year: 2020},
		},
	}
	require.NoError(t, f.resumeUC().Create(context.Background(), owner, resume))
	return resume
}

func TestResumes_CreateStartsPending(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := registerJobseeker(t, f)

	resume := createResume(t, f, owner)

	own, err := f.resumeUC().ListOwn(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, resume.ID, own[0].ID)
	assert.Equal(t, entities.ModerationPending, own[0].ModerationStatus)
}

func TestResumes_CreateValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := registerJobseeker(t, f)

	err := f.resumeUC().Create(ctx, owner, &entities.Resume{
		Education: []entities.EducationEntry{{Institution: "Колледж", Specialty: "x", Year: 2020}},
	})
	require.ErrorIs(t, err, entities.ErrResumeTitleRequired)

	err = f.resumeUC().Create(ctx, owner, &entities.Resume{Title: "Слесарь"})
	require.ErrorIs(t, err, entities.ErrEducationRequired)
}

func TestResumes_BrowseApprovedMergesSeed(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seeds.Resumes = []entities.Resume{
		{ID: 9201, Title: "Бухгалтер", ModerationStatus: entities.ModerationApproved},
	}
	owner := registerJobseeker(t, f)
	resume := createResume(t, f, owner)

	browse, err := f.resumeUC().BrowseApproved(ctx)
	require.NoError(t, err)
	require.Len(t, browse, 1)
	assert.Equal(t, int64(9201), browse[0].ID)

	moderation := app.NewModerationUseCase(f.vacancies, f.resumes)
	require.NoError(t, moderation.ApproveResume(ctx, 1001, resume.ID))

	browse, err = f.resumeUC().BrowseApproved(ctx)
	require.NoError(t, err)
	require.Len(t, browse, 2)

	// Запись хранилища аннотирована владельцем.
	var stored *entities.Resume
	for i := range browse {
		if browse[i].ID == resume.ID {
			stored = &browse[i]
		}
	}
	require.NotNil(t, stored)
	assert.Equal(t, owner.ID, stored.UserID)
	assert.Equal(t, owner.FullName, stored.UserFullName)
}

func TestResumes_DeleteOwn(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := registerJobseeker(t, f)
	resume := createResume(t, f, owner)

	require.NoError(t, f.resumeUC().Delete(ctx, owner.ID, resume.ID))

	own, err := f.resumeUC().ListOwn(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, own)

	err = f.resumeUC().Delete(ctx, owner.ID, resume.ID)
	require.ErrorIs(t, err, entities.ErrResumeNotFound)
}
