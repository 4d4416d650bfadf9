package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/ports/api"
	"jobdesk/internal/store"
	"jobdesk/pkg/logger"
)

const (
	msgVacancyApproved = "vacancy approved"
	msgVacancyRejected = "vacancy rejected"
	msgResumeApproved  = "resume approved"
	msgResumeRejected  = "resume rejected"

	errCtxModeratingVacancy = "moderating vacancy"
	errCtxModeratingResume  = "moderating resume"
)

// ModerationUseCaseImpl реализует интерфейс ModerationUseCase.
type ModerationUseCaseImpl struct {
	vacancies *store.Vacancies
	resumes   *store.Resumes
}

// NewModerationUseCase создает новый экземпляр сценариев модерации.
func NewModerationUseCase(vacancies *store.Vacancies, resumes *store.Resumes) api.ModerationUseCase {
	return &ModerationUseCaseImpl{vacancies: vacancies, resumes: resumes}
}

// PendingVacancies возвращает вакансии, ожидающие проверки.
func (m *ModerationUseCaseImpl) PendingVacancies(ctx context.Context) ([]entities.Vacancy, error) {
	vacancies, err := m.vacancies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pending vacancies: %w", err)
	}

	pending := make([]entities.Vacancy, 0)
	for _, vacancy := range vacancies {
		if vacancy.ModerationStatus == entities.ModerationPending {
			pending = append(pending, vacancy)
		}
	}
	return pending, nil
}

// PendingResumes возвращает резюме всех соискателей, ожидающие проверки.
func (m *ModerationUseCaseImpl) PendingResumes(ctx context.Context) ([]entities.Resume, error) {
	resumes, err := m.resumes.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pending resumes: %w", err)
	}

	pending := make([]entities.Resume, 0)
	for _, resume := range resumes {
		if resume.ModerationStatus == entities.ModerationPending {
			pending = append(pending, resume)
		}
	}
	return pending, nil
}

// ApproveVacancy одобряет вакансию: ставит отметки проверки и очищает
// причину отклонения.
func (m *ModerationUseCaseImpl) ApproveVacancy(ctx context.Context, moderatorID, vacancyID int64) error {
	vacancy, err := m.vacancies.FindByID(ctx, vacancyID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxModeratingVacancy, err)
	}
	if vacancy == nil {
		return fmt.Errorf("%s: %w", errCtxModeratingVacancy, entities.ErrVacancyNotFound)
	}

	stamp(&vacancy.ModerationStatus, &vacancy.ModerationDate, &vacancy.ModeratorID, entities.ModerationApproved, moderatorID)
	vacancy.RejectReason = nil

	if err := m.vacancies.Update(ctx, vacancy); err != nil {
		return fmt.Errorf("%s: %w", errCtxModeratingVacancy, err)
	}
	logger.Log(ctx).Info(ctx, msgVacancyApproved,
		zap.Int64("vacancyId", vacancyID), zap.Int64("moderatorId", moderatorID))
	return nil
}

// RejectVacancy отклоняет вакансию; причина обязательна.
func (m *ModerationUseCaseImpl) RejectVacancy(ctx context.Context, moderatorID, vacancyID int64, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%s: %w", errCtxModeratingVacancy, entities.ErrRejectReasonRequired)
	}

	vacancy, err := m.vacancies.FindByID(ctx, vacancyID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxModeratingVacancy, err)
	}
	if vacancy == nil {
		return fmt.Errorf("%s: %w", errCtxModeratingVacancy, entities.ErrVacancyNotFound)
	}

	stamp(&vacancy.ModerationStatus, &vacancy.ModerationDate, &vacancy.ModeratorID, entities.ModerationRejected, moderatorID)
	vacancy.RejectReason = &reason

	if err := m.vacancies.Update(ctx, vacancy); err != nil {
		return fmt.Errorf("%s: %w", errCtxModeratingVacancy, err)
	}
	logger.Log(ctx).Info(ctx, msgVacancyRejected,
		zap.Int64("vacancyId", vacancyID), zap.Int64("moderatorId", moderatorID))
	return nil
}

// ApproveResume одобряет резюме в разделе его владельца.
func (m *ModerationUseCaseImpl) ApproveResume(ctx context.Context, moderatorID, resumeID int64) error {
	resume, ownerID, err := m.resumes.FindByID(ctx, resumeID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxModeratingResume, err)
	}
	if resume == nil {
		return fmt.Errorf("%s: %w", errCtxModeratingResume, entities.ErrResumeNotFound)
	}

	stamp(&resume.ModerationStatus, &resume.ModerationDate, &resume.ModeratorID, entities.ModerationApproved, moderatorID)
	resume.RejectReason = nil

	if err := m.resumes.Update(ctx, ownerID, resume); err != nil {
		return fmt.Errorf("%s: %w", errCtxModeratingResume, err)
	}
	logger.Log(ctx).Info(ctx, msgResumeApproved,
		zap.Int64("resumeId", resumeID), zap.Int64("moderatorId", moderatorID))
	return nil
}

// RejectResume отклоняет резюме; причина обязательна.
func (m *ModerationUseCaseImpl) RejectResume(ctx context.Context, moderatorID, resumeID int64, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%s: %w", errCtxModeratingResume, entities.ErrRejectReasonRequired)
	}

	resume, ownerID, err := m.resumes.FindByID(ctx, resumeID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxModeratingResume, err)
	}
	if resume == nil {
		return fmt.Errorf("%s: %w", errCtxModeratingResume, entities.ErrResumeNotFound)
	}

	stamp(&resume.ModerationStatus, &resume.ModerationDate, &resume.ModeratorID, entities.ModerationRejected, moderatorID)
	resume.RejectReason = &reason

	if err := m.resumes.Update(ctx, ownerID, resume); err != nil {
		return fmt.Errorf("%s: %w", errCtxModeratingResume, err)
	}
	logger.Log(ctx).Info(ctx, msgResumeRejected,
		zap.Int64("resumeId", resumeID), zap.Int64("moderatorId", moderatorID))
	return nil
}

// stamp проставляет статус и отметки проверки.
func stamp(status *string, date **time.Time, moderator **int64, verdict string, moderatorID int64) {
	now := time.Now().UTC()
	*status = verdict
	*date = &now
	*moderator = &moderatorID
}
