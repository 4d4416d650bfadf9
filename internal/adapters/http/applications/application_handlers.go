// Package applications содержит HTTP обработчики откликов.
package applications

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"jobdesk/internal/adapters/http/dto"
	"jobdesk/internal/adapters/http/middleware"
	"jobdesk/internal/adapters/http/respond"
	"jobdesk/internal/ports/api"
	"jobdesk/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerApply    = "application handler: apply"
	LogHandlerMine     = "application handler: own list"
	LogHandlerIncoming = "application handler: incoming list"
	LogHandlerReview   = "application handler: review"

	ErrorInvalidRequest = "invalid request"
	ErrorInvalidID      = "invalid application id"
)

// Handler содержит HTTP обработчики откликов.
type Handler struct {
	applications api.ApplicationUseCase
}

// NewHandler создает новый экземпляр обработчика откликов.
func NewHandler(applications api.ApplicationUseCase) *Handler {
	return &Handler{applications: applications}
}

// Apply отправляет отклик соискателя на вакансию.
func (h *Handler) Apply(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerApply)

	var req dto.ApplyRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	application, err := h.applications.Apply(requestCtx, middleware.Account(ctx), req.VacancyID, req.ResumeID)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusCreated, application)
}

// Mine возвращает отклики соискателя.
func (h *Handler) Mine(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerMine)

	own, err := h.applications.ListOwn(requestCtx, middleware.Account(ctx).ID)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, own)
}

// Incoming возвращает отклики на вакансии работодателя.
func (h *Handler) Incoming(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerIncoming)

	incoming, err := h.applications.ListIncoming(requestCtx, middleware.Account(ctx).ID)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, incoming)
}

// Review фиксирует решение работодателя по отклику.
func (h *Handler) Review(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerReview)

	id, err := strconv.ParseInt(ctx.Params("application_id"), 10, 64)
	if err != nil {
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidID)
	}

	var req dto.ReviewRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if err := h.applications.Review(requestCtx, middleware.Account(ctx).ID, id, req.Status); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, fiber.Map{"status": "ok"})
}
