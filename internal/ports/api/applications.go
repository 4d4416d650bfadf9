package api

import (
	"context"

	"jobdesk/internal/domain/entities"
)

// ApplicationUseCase определяет порт для операций с откликами.
type ApplicationUseCase interface {
	Apply(ctx context.Context, applicant *entities.User, vacancyID, resumeID int64) (*entities.Application, error)

	ListOwn(ctx context.Context, applicantID int64) ([]entities.Application, error)

	ListIncoming(ctx context.Context, employerID int64) ([]entities.Application, error)

	// Review меняет статус отклика на approved или rejected и
	// синхронизирует обе копии.
	Review(ctx context.Context, employerID int64, applicationID int64, status string) error
}

// ModerationUseCase определяет порт для операций модерации.
type ModerationUseCase interface {
	PendingVacancies(ctx context.Context) ([]entities.Vacancy, error)

	PendingResumes(ctx context.Context) ([]entities.Resume, error)

	ApproveVacancy(ctx context.Context, moderatorID, vacancyID int64) error

	RejectVacancy(ctx context.Context, moderatorID, vacancyID int64, reason string) error

	ApproveResume(ctx context.Context, moderatorID, resumeID int64) error

	RejectResume(ctx context.Context, moderatorID, resumeID int64, reason string) error
}
