// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"jobdesk/internal/adapters/http/respond"
	"jobdesk/internal/domain/entities"
	svc "jobdesk/internal/ports/services"
	"jobdesk/internal/seed"
	"jobdesk/internal/store"
	"jobdesk/pkg/logger"
)

// Ключ учетной записи запроса в Locals.
const AccountKey = "account"

// Константы для логирования и ответов.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
	ErrorUnknownAccount     = "account not found"
	ErrorInactiveAccount    = "account is deactivated"
	ErrorForbidden          = "insufficient permissions"
)

// NewAuthMiddleware создает промежуточное ПО аутентификации: проверяет
// токен доступа и кладет учетную запись в Locals. Администраторы из
// стартовых данных разрешаются до раздела пользователей, как при входе.
func NewAuthMiddleware(tokens svc.TokenService, users *store.Users, seeds *seed.Data) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return respond.Message(ctx, fiber.StatusUnauthorized, ErrorNoAuthHeader)
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return respond.Message(ctx, fiber.StatusUnauthorized, ErrorInvalidTokenFormat)
		}

		userID, err := tokens.Validate(requestCtx, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return respond.Message(ctx, fiber.StatusUnauthorized, ErrorInvalidToken)
		}

		account, err := resolveAccount(ctx, userID, users, seeds)
		if err != nil {
			return err
		}
		if account == nil {
			return nil
		}

		ctx.Locals(AccountKey, account)
		return ctx.Next()
	}
}

// RequireStatus пропускает только учетные записи с одним из статусов.
func RequireStatus(statuses ...string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		account := Account(ctx)
		for _, status := range statuses {
			if account.Status == status {
				return ctx.Next()
			}
		}
		return respond.Message(ctx, fiber.StatusForbidden, ErrorForbidden)
	}
}

// RequireRole пропускает только учетные записи с одной из ролей.
func RequireRole(roles ...string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		account := Account(ctx)
		for _, role := range roles {
			if account.Role == role {
				return ctx.Next()
			}
		}
		return respond.Message(ctx, fiber.StatusForbidden, ErrorForbidden)
	}
}

// Account возвращает учетную запись запроса, положенную промежуточным
// ПО аутентификации.
func Account(ctx fiber.Ctx) *entities.User {
	account, _ := ctx.Locals(AccountKey).(*entities.User)
	return account
}

// resolveAccount возвращает учетную запись по идентификатору из токена.
// nil без ошибки означает, что ответ уже отправлен.
func resolveAccount(ctx fiber.Ctx, userID int64, users *store.Users, seeds *seed.Data) (*entities.User, error) {
	for i := range seeds.Admins {
		if seeds.Admins[i].ID == userID {
			admin := seeds.Admins[i].User()
			return &admin, nil
		}
	}

	requestCtx := ctx.Context()
	user, err := users.FindByID(requestCtx, userID)
	if err != nil {
		logger.Log(requestCtx).Error(requestCtx, "failed to resolve account", zap.Error(err))
		return nil, respond.Message(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if user == nil {
		return nil, respond.Message(ctx, fiber.StatusUnauthorized, ErrorUnknownAccount)
	}
	if !user.Active() {
		return nil, respond.Message(ctx, fiber.StatusForbidden, ErrorInactiveAccount)
	}
	return user, nil
}
