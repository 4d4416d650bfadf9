package store

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/ports/storage"
	"jobdesk/pkg/logger"
)

// Applications - репозиторий откликов с двойной записью: копия в разделе
// соискателя и копия в разделе работодателя.
type Applications struct {
	backend storage.Backend
}

// NewApplications создает репозиторий откликов.
func NewApplications(backend storage.Backend) *Applications {
	return &Applications{backend: backend}
}

// ListByApplicant возвращает отклики соискателя.
func (a *Applications) ListByApplicant(ctx context.Context, applicantID int64) ([]entities.Application, error) {
	return readCollection(ctx, a.backend, ApplicationsKey(applicantID), (*entities.Application).Normalize)
}

// ListForEmployer возвращает отклики на вакансии работодателя.
func (a *Applications) ListForEmployer(ctx context.Context, employerID string) ([]entities.Application, error) {
	return readCollection(ctx, a.backend, EmployerApplicationsKey(employerID), (*entities.Application).Normalize)
}

// HasApplied сообщает, откликался ли соискатель на вакансию.
func (a *Applications) HasApplied(ctx context.Context, applicantID int64, vacancyID int64) (bool, error) {
	apps, err := a.ListByApplicant(ctx, applicantID)
	if err != nil {
		return false, err
	}
	for i := range apps {
		if apps[i].VacancyID == vacancyID {
			return true, nil
		}
	}
	return false, nil
}

// Create записывает отклик в оба раздела. Пустой EmployerID означает,
// что работодатель вакансии неизвестен - тогда пишется только копия
// соискателя. Ошибка любой из записей возвращается наружу: после отказа
// второй записи копии расходятся, и это фиксируется в журнале.
func (a *Applications) Create(ctx context.Context, app *entities.Application) error {
	mine, err := a.ListByApplicant(ctx, app.ApplicantID)
	if err != nil {
		return err
	}
	mine = append(mine, *app)
	if err := writeCollection(ctx, a.backend, ApplicationsKey(app.ApplicantID), mine); err != nil {
		return err
	}
	if app.EmployerID == "" {
		return nil
	}

	inbox, err := a.ListForEmployer(ctx, app.EmployerID)
	if err != nil {
		return err
	}
	inbox = append(inbox, *app)
	if err := writeCollection(ctx, a.backend, EmployerApplicationsKey(app.EmployerID), inbox); err != nil {
		logger.Log(ctx).Error(ctx, "application copies diverged on create",
			zap.Int64("applicationId", app.ID), zap.Error(err))
		return fmt.Errorf("writing employer copy: %w", err)
	}
	return nil
}

// SetStatus меняет статус отклика и отметку рассмотрения в обеих копиях.
// Возвращает ErrNotFound, если отклика нет в разделе работодателя.
func (a *Applications) SetStatus(ctx context.Context, employerID string, applicationID int64, status string, reviewedAt time.Time) error {
	inbox, err := a.ListForEmployer(ctx, employerID)
	if err != nil {
		return err
	}

	var applicantID int64
	found := false
	for i := range inbox {
		if inbox[i].ID == applicationID {
			inbox[i].Status = status
			inbox[i].ReviewedAt = &reviewedAt
			applicantID = inbox[i].ApplicantID
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}
	if err := writeCollection(ctx, a.backend, EmployerApplicationsKey(employerID), inbox); err != nil {
		return err
	}

	mine, err := a.ListByApplicant(ctx, applicantID)
	if err != nil {
		return err
	}
	for i := range mine {
		if mine[i].ID == applicationID {
			mine[i].Status = status
			mine[i].ReviewedAt = &reviewedAt
			break
		}
	}
	if err := writeCollection(ctx, a.backend, ApplicationsKey(applicantID), mine); err != nil {
		logger.Log(ctx).Error(ctx, "application copies diverged on status change",
			zap.Int64("applicationId", applicationID), zap.Error(err))
		return fmt.Errorf("writing applicant copy: %w", err)
	}
	return nil
}
