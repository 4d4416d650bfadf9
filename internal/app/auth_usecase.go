// Package app реализует прикладные сценарии платформы вакансий.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/ports/api"
	"jobdesk/internal/seed"
	"jobdesk/internal/session"
	"jobdesk/internal/store"
	"jobdesk/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"
	methodLogout   = "Logout"

	msgStartRegistration  = "starting registration"
	msgInvalidInput       = "registration input rejected"
	msgUsernameTaken      = "username already taken"
	msgUsernameReserved   = "attempt to register a reserved username"
	msgUserRegistered     = "account registered"
	msgLoginAttempt       = "login attempt"
	msgAdminLoggedIn      = "admin logged in"
	msgLoginUnknownUser   = "login attempt with unknown credentials"
	msgInactiveLogin      = "login attempt into deactivated account"
	msgUserLoggedIn       = "user logged in"
	msgUserLoggedOut      = "session cleared"
	msgErrCreateUser      = "failed to create account"
	msgErrSaveSession     = "failed to save session"
	msgErrFindUser        = "failed to look up account"

	errCtxValidating  = "validating registration input"
	errCtxCreating    = "creating account"
	errCtxSavingLogin = "saving session"
	errCtxFindingUser = "finding account"
)

var phonePattern = regexp.MustCompile(`^\+7 \(\d{3}\) \d{3}-\d{2}-\d{2}$`)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	users   *store.Users
	session *session.Session
	seeds   *seed.Data
}

// NewAuthUseCase создает новый экземпляр сценариев аутентификации.
func NewAuthUseCase(users *store.Users, sess *session.Session, seeds *seed.Data) api.AuthUseCase {
	return &AuthUseCaseImpl{users: users, session: sess, seeds: seeds}
}

// Register создает учетную запись соискателя или работодателя и сразу
// открывает сеанс. Пароль сохраняется в открытом виде - формат данных
// унаследован и сохранен сознательно.
func (a *AuthUseCaseImpl) Register(ctx context.Context, fullName, username, phone, password, role string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", username))
	log.Debug(ctx, msgStartRegistration)

	if err := validateRegistration(fullName, username, phone, password, role); err != nil {
		log.Debug(ctx, msgInvalidInput, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidating, err)
	}

	for i := range a.seeds.Admins {
		if a.seeds.Admins[i].Username == username || a.seeds.Admins[i].Login == username {
			log.Warn(ctx, msgUsernameReserved)
			return nil, fmt.Errorf("%s: %w", errCtxValidating, entities.ErrUsernameReserved)
		}
	}

	active := true
	user := entities.User{
		FullName:         fullName,
		Username:         username,
		Password:         password,
		Phone:            phone,
		Status:           entities.StatusUser,
		Role:             role,
		RegistrationDate: time.Now().UTC(),
		IsActive:         &active,
	}

	if err := a.users.Create(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			log.Debug(ctx, msgUsernameTaken)
		} else {
			log.Error(ctx, msgErrCreateUser, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxCreating, err)
	}

	if err := a.session.Save(ctx, &user); err != nil {
		log.Error(ctx, msgErrSaveSession, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxSavingLogin, err)
	}

	log.Info(ctx, msgUserRegistered, zap.Int64("userId", user.ID), zap.String("role", user.Role))
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// Login проверяет учетные данные: сначала список администраторов из
// стартовых данных, затем раздел пользователей.
func (a *AuthUseCaseImpl) Login(ctx context.Context, username, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	if admin := a.seeds.FindAdmin(username, password); admin != nil {
		user := admin.User()
		if err := a.session.Save(ctx, &user); err != nil {
			log.Error(ctx, msgErrSaveSession, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxSavingLogin, err)
		}
		log.Info(ctx, msgAdminLoggedIn, zap.Int64("userId", user.ID))
		return &user, nil
	}

	user, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		log.Error(ctx, msgErrFindUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	if user == nil || user.Password != password {
		log.Debug(ctx, msgLoginUnknownUser)
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, entities.ErrInvalidCredentials)
	}
	if !user.Active() {
		log.Warn(ctx, msgInactiveLogin, zap.Int64("userId", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, entities.ErrAccountInactive)
	}

	if err := a.session.Save(ctx, user); err != nil {
		log.Error(ctx, msgErrSaveSession, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxSavingLogin, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.Int64("userId", user.ID), zap.String("status", user.Status))
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// Logout завершает текущий сеанс.
func (a *AuthUseCaseImpl) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	logger.Log(ctx).Debug(ctx, msgUserLoggedOut, zap.String("method", methodLogout))
	return nil
}

// Current возвращает текущую учетную запись сеанса или nil.
func (a *AuthUseCaseImpl) Current(ctx context.Context) (*entities.User, error) {
	return a.session.Current(ctx)
}

func validateRegistration(fullName, username, phone, password, role string) error {
	if err := validateAccount(fullName, username, phone, password); err != nil {
		return err
	}
	if role != entities.RoleJobseeker && role != entities.RoleEmployer {
		return entities.ErrUnknownRole
	}
	return nil
}

func validateAccount(fullName, username, phone, password string) error {
	if strings.TrimSpace(fullName) == "" {
		return entities.ErrFullNameRequired
	}
	if len([]rune(username)) < 3 {
		return entities.ErrUsernameTooShort
	}
	if !phonePattern.MatchString(phone) {
		return entities.ErrInvalidPhone
	}
	if len(password) < 6 {
		return entities.ErrPasswordTooShort
	}
	if strings.Contains(password, " ") {
		return entities.ErrPasswordHasSpaces
	}
	return nil
}
