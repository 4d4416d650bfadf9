package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/ports/api"
	"jobdesk/internal/store"
	"jobdesk/pkg/logger"
)

const (
	msgUserPromoted     = "user promoted to moderator"
	msgUserDemoted      = "moderator demoted to user"
	msgUserToggled      = "account active flag toggled"
	msgUserDeleted      = "account deleted"
	msgOrphansLeft      = "deleted account left dependent records behind"
	msgModeratorCreated = "moderator account created"

	errCtxPromoting         = "promoting user"
	errCtxDemoting          = "demoting user"
	errCtxToggling          = "toggling account"
	errCtxDeletingUser      = "deleting account"
	errCtxCreatingModerator = "creating moderator"
)

// AdminUseCaseImpl реализует интерфейс AdminUseCase.
type AdminUseCaseImpl struct {
	users        *store.Users
	resumes      *store.Resumes
	applications *store.Applications
}

// NewAdminUseCase создает новый экземпляр административных сценариев.
func NewAdminUseCase(users *store.Users, resumes *store.Resumes, applications *store.Applications) api.AdminUseCase {
	return &AdminUseCaseImpl{users: users, resumes: resumes, applications: applications}
}

// ListUsers возвращает все учетные записи без паролей.
func (a *AdminUseCaseImpl) ListUsers(ctx context.Context) ([]entities.User, error) {
	users, err := a.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	for i := range users {
		users[i] = users[i].Sanitized()
	}
	return users, nil
}

// PromoteModerator назначает пользователя модератором.
func (a *AdminUseCaseImpl) PromoteModerator(ctx context.Context, userID int64) error {
	user, err := a.findUser(ctx, userID, errCtxPromoting)
	if err != nil {
		return err
	}

	user.Status = entities.StatusModerator
	if err := a.users.Update(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", errCtxPromoting, err)
	}
	logger.Log(ctx).Info(ctx, msgUserPromoted, zap.Int64("userId", userID))
	return nil
}

// DemoteModerator снимает статус модератора.
func (a *AdminUseCaseImpl) DemoteModerator(ctx context.Context, userID int64) error {
	user, err := a.findUser(ctx, userID, errCtxDemoting)
	if err != nil {
		return err
	}

	user.Status = entities.StatusUser
	if err := a.users.Update(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", errCtxDemoting, err)
	}
	logger.Log(ctx).Info(ctx, msgUserDemoted, zap.Int64("userId", userID))
	return nil
}

// ToggleActive переключает признак активности учетной записи.
func (a *AdminUseCaseImpl) ToggleActive(ctx context.Context, userID int64) error {
	user, err := a.findUser(ctx, userID, errCtxToggling)
	if err != nil {
		return err
	}

	flipped := !user.Active()
	user.IsActive = &flipped
	if err := a.users.Update(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", errCtxToggling, err)
	}
	logger.Log(ctx).Info(ctx, msgUserToggled,
		zap.Int64("userId", userID), zap.Bool("isActive", flipped))
	return nil
}

// DeleteUser удаляет учетную запись. Резюме и отклики остаются в своих
// разделах - каскадного удаления нет; число осиротевших записей
// фиксируется в журнале.
func (a *AdminUseCaseImpl) DeleteUser(ctx context.Context, userID int64) error {
	user, err := a.findUser(ctx, userID, errCtxDeletingUser)
	if err != nil {
		return err
	}

	if err := a.users.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingUser, err)
	}

	resumes, err := a.resumes.ListByOwner(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingUser, err)
	}
	applications, err := a.applications.ListByApplicant(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingUser, err)
	}
	if len(resumes) > 0 || len(applications) > 0 {
		logger.Log(ctx).Warn(ctx, msgOrphansLeft, zap.Int64("userId", userID),
			zap.Int("resumes", len(resumes)), zap.Int("applications", len(applications)))
	}

	logger.Log(ctx).Info(ctx, msgUserDeleted, zap.Int64("userId", userID))
	return nil
}

// CreateModerator создает учетную запись модератора. Роли у модераторов
// нет.
func (a *AdminUseCaseImpl) CreateModerator(ctx context.Context, fullName, username, phone, password string) (*entities.User, error) {
	if err := validateAccount(fullName, username, phone, password); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingModerator, err)
	}

	active := true
	moderator := entities.User{
		FullName:         fullName,
		Username:         username,
		Password:         password,
		Phone:            phone,
		Status:           entities.StatusModerator,
		Role:             entities.RoleNone,
		RegistrationDate: time.Now().UTC(),
		IsActive:         &active,
	}

	if err := a.users.Create(ctx, &moderator); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingModerator, err)
	}

	logger.Log(ctx).Info(ctx, msgModeratorCreated, zap.Int64("userId", moderator.ID))
	sanitized := moderator.Sanitized()
	return &sanitized, nil
}

func (a *AdminUseCaseImpl) findUser(ctx context.Context, userID int64, errCtx string) (*entities.User, error) {
	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%s: %w", errCtx, entities.ErrUserNotFound)
	}
	return user, nil
}
