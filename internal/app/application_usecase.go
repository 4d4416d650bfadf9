package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/identity"
	"jobdesk/internal/ports/api"
	"jobdesk/internal/ports/storage"
	"jobdesk/internal/seed"
	"jobdesk/internal/store"
	"jobdesk/pkg/logger"
)

const (
	msgApplicationSent     = "application sent"
	msgApplicationNoOwner  = "vacancy employer unknown, applicant copy only"
	msgApplicationReviewed = "application reviewed"

	errCtxApplying  = "applying to vacancy"
	errCtxReviewing = "reviewing application"
)

// ApplicationUseCaseImpl реализует интерфейс ApplicationUseCase.
type ApplicationUseCaseImpl struct {
	applications *store.Applications
	vacancies    *store.Vacancies
	resumes      *store.Resumes
	backend      storage.Backend
	alloc        *identity.Allocator
	seeds        *seed.Data
}

// NewApplicationUseCase создает новый экземпляр сценариев откликов.
func NewApplicationUseCase(
	applications *store.Applications,
	vacancies *store.Vacancies,
	resumes *store.Resumes,
	backend storage.Backend,
	alloc *identity.Allocator,
	seeds *seed.Data,
) api.ApplicationUseCase {
	return &ApplicationUseCaseImpl{
		applications: applications,
		vacancies:    vacancies,
		resumes:      resumes,
		backend:      backend,
		alloc:        alloc,
		seeds:        seeds,
	}
}

// Apply создает отклик соискателя: один отклик на вакансию, снимки
// названий вакансии и резюме на момент отправки. Работодатель вакансии
// разрешается через хранилище, затем через демонстрационный каталог;
// если он неизвестен, пишется только копия соискателя.
func (a *ApplicationUseCaseImpl) Apply(ctx context.Context, applicant *entities.User, vacancyID, resumeID int64) (*entities.Application, error) {
	log := logger.Log(ctx).With(zap.Int64("vacancyId", vacancyID), zap.Int64("applicantId", applicant.ID))

	applied, err := a.applications.HasApplied(ctx, applicant.ID, vacancyID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxApplying, err)
	}
	if applied {
		return nil, fmt.Errorf("%s: %w", errCtxApplying, entities.ErrAlreadyApplied)
	}

	vacancy, err := a.findVacancy(ctx, vacancyID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxApplying, err)
	}
	if vacancy == nil {
		return nil, fmt.Errorf("%s: %w", errCtxApplying, entities.ErrVacancyNotFound)
	}
	if vacancy.EmployerID == "" {
		log.Warn(ctx, msgApplicationNoOwner)
	}

	resume, err := a.findOwnResume(ctx, applicant.ID, resumeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxApplying, err)
	}
	if resume == nil {
		return nil, fmt.Errorf("%s: %w", errCtxApplying, entities.ErrResumeNotFound)
	}

	existing, err := store.CollectIDs(ctx, a.backend, a.seeds.AdminIDs())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxApplying, err)
	}
	id, err := a.alloc.Allocate(existing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxApplying, err)
	}

	application := entities.Application{
		ID:            id,
		VacancyID:     vacancyID,
		VacancyTitle:  vacancy.Title,
		ResumeID:      resumeID,
		ResumeTitle:   resume.Title,
		AppliedAt:     time.Now().UTC(),
		Status:        entities.ApplicationSent,
		ApplicantID:   applicant.ID,
		ApplicantName: applicant.FullName,
		EmployerID:    vacancy.EmployerID,
	}

	if err := a.applications.Create(ctx, &application); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxApplying, err)
	}

	log.Info(ctx, msgApplicationSent, zap.Int64("applicationId", application.ID))
	return &application, nil
}

// ListOwn возвращает отклики соискателя.
func (a *ApplicationUseCaseImpl) ListOwn(ctx context.Context, applicantID int64) ([]entities.Application, error) {
	applications, err := a.applications.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("listing own applications: %w", err)
	}
	return applications, nil
}

// ListIncoming возвращает отклики на вакансии работодателя.
func (a *ApplicationUseCaseImpl) ListIncoming(ctx context.Context, employerID int64) ([]entities.Application, error) {
	applications, err := a.applications.ListForEmployer(ctx, strconv.FormatInt(employerID, 10))
	if err != nil {
		return nil, fmt.Errorf("listing incoming applications: %w", err)
	}
	return applications, nil
}

// Review выставляет отклику статус approved или rejected и отметку
// времени рассмотрения в обеих копиях.
func (a *ApplicationUseCaseImpl) Review(ctx context.Context, employerID int64, applicationID int64, status string) error {
	if status != entities.ApplicationApproved && status != entities.ApplicationRejected {
		return fmt.Errorf("%s: %w", errCtxReviewing, entities.ErrUnknownReviewStatus)
	}

	err := a.applications.SetStatus(ctx, strconv.FormatInt(employerID, 10), applicationID, status, time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%s: %w", errCtxReviewing, entities.ErrApplicationNotFound)
		}
		return fmt.Errorf("%s: %w", errCtxReviewing, err)
	}

	logger.Log(ctx).Info(ctx, msgApplicationReviewed,
		zap.Int64("applicationId", applicationID), zap.String("status", status))
	return nil
}

// findVacancy ищет вакансию в хранилище, затем в демонстрационном
// каталоге.
func (a *ApplicationUseCaseImpl) findVacancy(ctx context.Context, id int64) (*entities.Vacancy, error) {
	vacancy, err := a.vacancies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vacancy != nil {
		return vacancy, nil
	}
	for i := range a.seeds.Vacancies {
		if a.seeds.Vacancies[i].ID == id {
			return &a.seeds.Vacancies[i], nil
		}
	}
	return nil, nil
}

// findOwnResume ищет резюме в разделе соискателя.
func (a *ApplicationUseCaseImpl) findOwnResume(ctx context.Context, ownerID, id int64) (*entities.Resume, error) {
	resumes, err := a.resumes.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range resumes {
		if resumes[i].ID == id {
			return &resumes[i], nil
		}
	}
	return nil, nil
}
