// Package auth содержит HTTP обработчики регистрации и входа.
package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"jobdesk/internal/adapters/http/dto"
	"jobdesk/internal/adapters/http/middleware"
	"jobdesk/internal/adapters/http/respond"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/ports/api"
	svc "jobdesk/internal/ports/services"
	"jobdesk/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"
	LogHandlerLogout   = "auth handler: logout"

	ErrorInvalidRequest = "invalid request"
	ErrorIssuingToken   = "failed to issue access token"
)

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	auth   api.AuthUseCase
	tokens svc.TokenService
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(auth api.AuthUseCase, tokens svc.TokenService) *Handler {
	return &Handler{auth: auth, tokens: tokens}
}

// Register обрабатывает запрос регистрации.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	user, err := h.auth.Register(requestCtx, req.FullName, req.Username, req.Phone, req.Password, req.Role)
	if err != nil {
		return respond.Error(ctx, err)
	}

	return h.respondWithToken(ctx, user, http.StatusCreated)
}

// Login обрабатывает запрос входа.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}
	if req.Username == "" || req.Password == "" {
		return respond.Message(ctx, http.StatusBadRequest, "username and password are required")
	}

	user, err := h.auth.Login(requestCtx, req.Username, req.Password)
	if err != nil {
		return respond.Error(ctx, err)
	}

	return h.respondWithToken(ctx, user, http.StatusOK)
}

// Logout завершает сеанс.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerLogout)

	if err := h.auth.Logout(requestCtx); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, fiber.Map{"status": "ok"})
}

// Me возвращает учетную запись запроса.
func (h *Handler) Me(ctx fiber.Ctx) error {
	sanitized := middleware.Account(ctx).Sanitized()
	return respond.JSON(ctx, http.StatusOK, sanitized)
}

func (h *Handler) respondWithToken(ctx fiber.Ctx, user *entities.User, statusCode int) error {
	requestCtx := ctx.Context()

	token, expiresAt, err := h.tokens.Generate(requestCtx, user.ID)
	if err != nil {
		logger.Log(requestCtx).Error(requestCtx, ErrorIssuingToken, zap.Error(err))
		return respond.Message(ctx, http.StatusInternalServerError, ErrorIssuingToken)
	}

	return respond.JSON(ctx, statusCode, dto.AuthResponse{
		User:      *user,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
