package api

import (
	"context"

	"jobdesk/internal/domain/entities"
)

// VacancyUseCase определяет порт для операций с вакансиями.
type VacancyUseCase interface {
	// Board возвращает доску одобренных вакансий вместе с
	// демонстрационным каталогом.
	Board(ctx context.Context) ([]entities.Vacancy, error)

	ListByEmployer(ctx context.Context, employerID int64) ([]entities.Vacancy, error)

	Create(ctx context.Context, actor *entities.User, vacancy *entities.Vacancy) error

	Update(ctx context.Context, actor *entities.User, vacancy *entities.Vacancy) error

	Delete(ctx context.Context, actor *entities.User, id int64) error
}

// ResumeUseCase определяет порт для операций с резюме.
type ResumeUseCase interface {
	ListOwn(ctx context.Context, ownerID int64) ([]entities.Resume, error)

	// BrowseApproved возвращает одобренные резюме всех соискателей
	// вместе с демонстрационным каталогом.
	BrowseApproved(ctx context.Context) ([]entities.Resume, error)

	Create(ctx context.Context, owner *entities.User, resume *entities.Resume) error

	Delete(ctx context.Context, ownerID, id int64) error
}
