// Package profile содержит HTTP обработчики профиля-надстройки.
package profile

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"jobdesk/internal/adapters/http/dto"
	"jobdesk/internal/adapters/http/middleware"
	"jobdesk/internal/adapters/http/respond"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/ports/api"
	"jobdesk/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerGet    = "profile handler: get"
	LogHandlerUpdate = "profile handler: update"

	ErrorInvalidRequest = "invalid request"
)

// Handler содержит HTTP обработчики профиля.
type Handler struct {
	profile api.ProfileUseCase
}

// NewHandler создает новый экземпляр обработчика профиля.
func NewHandler(profile api.ProfileUseCase) *Handler {
	return &Handler{profile: profile}
}

// Get возвращает профиль учетной записи запроса.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerGet)

	profile, err := h.profile.Get(requestCtx, middleware.Account(ctx))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, profile)
}

// Update сохраняет профиль учетной записи запроса.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	var req dto.ProfileRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	updated := &entities.Profile{
		BirthDate: req.BirthDate,
		Email:     req.Email,
		Avatar:    req.Avatar,
	}
	if err := h.profile.Update(requestCtx, middleware.Account(ctx).ID, updated); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, updated)
}
