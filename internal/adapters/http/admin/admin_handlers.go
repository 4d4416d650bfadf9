// Package admin содержит HTTP обработчики панели администратора.
package admin

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"jobdesk/internal/adapters/http/dto"
	"jobdesk/internal/adapters/http/respond"
	"jobdesk/internal/ports/api"
	"jobdesk/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerListUsers       = "admin handler: list users"
	LogHandlerPromote         = "admin handler: promote moderator"
	LogHandlerDemote          = "admin handler: demote moderator"
	LogHandlerToggleActive    = "admin handler: toggle active"
	LogHandlerDeleteUser      = "admin handler: delete user"
	LogHandlerCreateModerator = "admin handler: create moderator"

	ErrorInvalidRequest = "invalid request"
	ErrorInvalidUserID  = "invalid user id"
)

// Handler содержит HTTP обработчики администратора.
type Handler struct {
	admin api.AdminUseCase
}

// NewHandler создает новый экземпляр обработчика администратора.
func NewHandler(admin api.AdminUseCase) *Handler {
	return &Handler{admin: admin}
}

// ListUsers возвращает всех пользователей без паролей.
func (h *Handler) ListUsers(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerListUsers)

	users, err := h.admin.ListUsers(requestCtx)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, users)
}

// Promote назначает пользователя модератором.
func (h *Handler) Promote(ctx fiber.Ctx) error {
	return h.act(ctx, LogHandlerPromote, h.admin.PromoteModerator)
}

// Demote снимает с пользователя статус модератора.
func (h *Handler) Demote(ctx fiber.Ctx) error {
	return h.act(ctx, LogHandlerDemote, h.admin.DemoteModerator)
}

// ToggleActive блокирует или разблокирует пользователя.
func (h *Handler) ToggleActive(ctx fiber.Ctx) error {
	return h.act(ctx, LogHandlerToggleActive, h.admin.ToggleActive)
}

// DeleteUser удаляет учетную запись пользователя.
func (h *Handler) DeleteUser(ctx fiber.Ctx) error {
	return h.act(ctx, LogHandlerDeleteUser, h.admin.DeleteUser)
}

// CreateModerator создает учетную запись модератора.
func (h *Handler) CreateModerator(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreateModerator)

	var req dto.ModeratorRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	moderator, err := h.admin.CreateModerator(requestCtx, req.FullName, req.Username, req.Phone, req.Password)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusCreated, moderator)
}

func (h *Handler) act(ctx fiber.Ctx, logMsg string, op func(requestCtx context.Context, userID int64) error) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, logMsg)

	id, err := strconv.ParseInt(ctx.Params("user_id"), 10, 64)
	if err != nil {
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidUserID)
	}

	if err := op(requestCtx, id); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, fiber.Map{"status": "ok"})
}
