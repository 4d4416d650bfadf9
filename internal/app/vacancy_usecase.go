package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/ports/api"
	"jobdesk/internal/seed"
	"jobdesk/internal/store"
	"jobdesk/pkg/logger"
)

const (
	msgVacancyCreated   = "vacancy created, sent to moderation"
	msgVacancyUpdated   = "vacancy updated"
	msgVacancyReentered = "approved vacancy edited, sent back to moderation"
	msgVacancyDeleted   = "vacancy deleted"

	errCtxListingBoard    = "listing vacancy board"
	errCtxCreatingVacancy = "creating vacancy"
	errCtxUpdatingVacancy = "updating vacancy"
	errCtxDeletingVacancy = "deleting vacancy"
)

// VacancyUseCaseImpl реализует интерфейс VacancyUseCase.
type VacancyUseCaseImpl struct {
	vacancies *store.Vacancies
	seeds     *seed.Data
}

// NewVacancyUseCase создает новый экземпляр сценариев вакансий.
func NewVacancyUseCase(vacancies *store.Vacancies, seeds *seed.Data) api.VacancyUseCase {
	return &VacancyUseCaseImpl{vacancies: vacancies, seeds: seeds}
}

// Board возвращает одобренные вакансии из хранилища вместе с
// демонстрационным каталогом. Записи хранилища имеют приоритет при
// совпадении идентификаторов.
func (v *VacancyUseCaseImpl) Board(ctx context.Context) ([]entities.Vacancy, error) {
	stored, err := v.vacancies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingBoard, err)
	}

	merged := make([]entities.Vacancy, 0, len(stored)+len(v.seeds.Vacancies))
	seen := make(map[int64]struct{})
	for _, list := range [][]entities.Vacancy{stored, v.seeds.Vacancies} {
		for _, vacancy := range list {
			if vacancy.ModerationStatus != entities.ModerationApproved {
				continue
			}
			if _, dup := seen[vacancy.ID]; dup {
				continue
			}
			seen[vacancy.ID] = struct{}{}
			merged = append(merged, vacancy)
		}
	}
	return merged, nil
}

// ListByEmployer возвращает вакансии работодателя во всех статусах
// модерации.
func (v *VacancyUseCaseImpl) ListByEmployer(ctx context.Context, employerID int64) ([]entities.Vacancy, error) {
	stored, err := v.vacancies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing employer vacancies: %w", err)
	}

	key := strconv.FormatInt(employerID, 10)
	own := make([]entities.Vacancy, 0)
	for _, vacancy := range stored {
		if vacancy.EmployerID == key {
			own = append(own, vacancy)
		}
	}
	return own, nil
}

// Create публикует вакансию работодателя в статусе pending.
func (v *VacancyUseCaseImpl) Create(ctx context.Context, actor *entities.User, vacancy *entities.Vacancy) error {
	if vacancy.Title == "" || vacancy.Company == "" || vacancy.Description == "" {
		return fmt.Errorf("%s: %w", errCtxCreatingVacancy, entities.ErrVacancyFieldsMissing)
	}

	vacancy.ID = 0
	vacancy.EmployerID = strconv.FormatInt(actor.ID, 10)
	vacancy.EmployerName = actor.FullName
	vacancy.CreatedAt = time.Now().UTC()
	vacancy.ModerationStatus = entities.ModerationPending
	vacancy.ModerationDate = nil
	vacancy.ModeratorID = nil
	vacancy.RejectReason = nil

	if err := v.vacancies.Create(ctx, vacancy); err != nil {
		return fmt.Errorf("%s: %w", errCtxCreatingVacancy, err)
	}
	logger.Log(ctx).Info(ctx, msgVacancyCreated,
		zap.Int64("vacancyId", vacancy.ID), zap.Int64("employerId", actor.ID))
	return nil
}

// Update заменяет содержимое вакансии, сохраняя служебные поля прежней
// записи. Отредактированная одобренная вакансия возвращается на
// модерацию с очищенными отметками проверки.
func (v *VacancyUseCaseImpl) Update(ctx context.Context, actor *entities.User, vacancy *entities.Vacancy) error {
	if vacancy.Title == "" || vacancy.Company == "" || vacancy.Description == "" {
		return fmt.Errorf("%s: %w", errCtxUpdatingVacancy, entities.ErrVacancyFieldsMissing)
	}

	current, err := v.vacancies.FindByID(ctx, vacancy.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxUpdatingVacancy, err)
	}
	if current == nil {
		return fmt.Errorf("%s: %w", errCtxUpdatingVacancy, entities.ErrVacancyNotFound)
	}
	if current.EmployerID != strconv.FormatInt(actor.ID, 10) {
		return fmt.Errorf("%s: %w", errCtxUpdatingVacancy, entities.ErrNotOwner)
	}

	vacancy.EmployerID = current.EmployerID
	vacancy.EmployerName = current.EmployerName
	vacancy.CreatedAt = current.CreatedAt
	vacancy.ModerationStatus = current.ModerationStatus
	vacancy.ModerationDate = current.ModerationDate
	vacancy.ModeratorID = current.ModeratorID
	vacancy.RejectReason = current.RejectReason

	reentered := current.ModerationStatus == entities.ModerationApproved
	if reentered {
		vacancy.ModerationStatus = entities.ModerationPending
		vacancy.ModerationDate = nil
		vacancy.ModeratorID = nil
	}

	if err := v.vacancies.Update(ctx, vacancy); err != nil {
		return fmt.Errorf("%s: %w", errCtxUpdatingVacancy, err)
	}

	if reentered {
		logger.Log(ctx).Info(ctx, msgVacancyReentered, zap.Int64("vacancyId", vacancy.ID))
	} else {
		logger.Log(ctx).Debug(ctx, msgVacancyUpdated, zap.Int64("vacancyId", vacancy.ID))
	}
	return nil
}

// Delete удаляет вакансию работодателя.
func (v *VacancyUseCaseImpl) Delete(ctx context.Context, actor *entities.User, id int64) error {
	current, err := v.vacancies.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingVacancy, err)
	}
	if current == nil {
		return fmt.Errorf("%s: %w", errCtxDeletingVacancy, entities.ErrVacancyNotFound)
	}
	if current.EmployerID != strconv.FormatInt(actor.ID, 10) {
		return fmt.Errorf("%s: %w", errCtxDeletingVacancy, entities.ErrNotOwner)
	}

	if err := v.vacancies.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingVacancy, err)
	}
	logger.Log(ctx).Info(ctx, msgVacancyDeleted, zap.Int64("vacancyId", id))
	return nil
}
