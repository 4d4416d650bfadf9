package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/ports/api"
	"jobdesk/internal/seed"
	"jobdesk/internal/store"
	"jobdesk/pkg/logger"
)

const (
	msgResumeCreated = "resume created, sent to moderation"
	msgResumeDeleted = "resume deleted"

	errCtxBrowsingResumes = "browsing approved resumes"
	errCtxCreatingResume  = "creating resume"
	errCtxDeletingResume  = "deleting resume"
)

// ResumeUseCaseImpl реализует интерфейс ResumeUseCase.
type ResumeUseCaseImpl struct {
	resumes *store.Resumes
	seeds   *seed.Data
}

// NewResumeUseCase создает новый экземпляр сценариев резюме.
func NewResumeUseCase(resumes *store.Resumes, seeds *seed.Data) api.ResumeUseCase {
	return &ResumeUseCaseImpl{resumes: resumes, seeds: seeds}
}

// ListOwn возвращает резюме соискателя во всех статусах модерации.
func (r *ResumeUseCaseImpl) ListOwn(ctx context.Context, ownerID int64) ([]entities.Resume, error) {
	resumes, err := r.resumes.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing own resumes: %w", err)
	}
	return resumes, nil
}

// BrowseApproved возвращает одобренные резюме всех соискателей вместе с
// демонстрационным каталогом. Записи хранилища имеют приоритет при
// совпадении идентификаторов.
func (r *ResumeUseCaseImpl) BrowseApproved(ctx context.Context) ([]entities.Resume, error) {
	stored, err := r.resumes.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxBrowsingResumes, err)
	}

	merged := make([]entities.Resume, 0, len(stored)+len(r.seeds.Resumes))
	seen := make(map[int64]struct{})
	for _, list := range [][]entities.Resume{stored, r.seeds.Resumes} {
		for _, resume := range list {
			if resume.ModerationStatus != entities.ModerationApproved {
				continue
			}
			if _, dup := seen[resume.ID]; dup {
				continue
			}
			seen[resume.ID] = struct{}{}
			merged = append(merged, resume)
		}
	}
	return merged, nil
}

// Create добавляет резюме соискателя в статусе pending. Требуется хотя
// бы одна запись об образовании.
func (r *ResumeUseCaseImpl) Create(ctx context.Context, owner *entities.User, resume *entities.Resume) error {
	if resume.Title == "" {
		return fmt.Errorf("%s: %w", errCtxCreatingResume, entities.ErrResumeTitleRequired)
	}
	if len(resume.Education) == 0 {
		return fmt.Errorf("%s: %w", errCtxCreatingResume, entities.ErrEducationRequired)
	}

	resume.ID = 0
	resume.CreatedAt = time.Now().UTC()
	resume.ModerationStatus = entities.ModerationPending
	resume.ModerationDate = nil
	resume.ModeratorID = nil
	resume.RejectReason = nil
	resume.UserID = 0
	resume.UserFullName = ""

	if err := r.resumes.Create(ctx, owner.ID, resume); err != nil {
		return fmt.Errorf("%s: %w", errCtxCreatingResume, err)
	}
	logger.Log(ctx).Info(ctx, msgResumeCreated,
		zap.Int64("resumeId", resume.ID), zap.Int64("ownerId", owner.ID))
	return nil
}

// Delete удаляет резюме из раздела владельца.
func (r *ResumeUseCaseImpl) Delete(ctx context.Context, ownerID, id int64) error {
	resumes, err := r.resumes.ListByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingResume, err)
	}

	found := false
	for i := range resumes {
		if resumes[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%s: %w", errCtxDeletingResume, entities.ErrResumeNotFound)
	}

	if err := r.resumes.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingResume, err)
	}
	logger.Log(ctx).Info(ctx, msgResumeDeleted, zap.Int64("resumeId", id), zap.Int64("ownerId", ownerID))
	return nil
}
