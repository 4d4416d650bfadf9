// Package resumes содержит HTTP обработчики резюме.
package resumes

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
	LogHandlerMine   = "resume handler: own list"
	LogHandlerBrowse = "resume handler: browse approved"
	LogHandlerCreate = "resume handler: create"
	LogHandlerDelete = "resume handler: delete"

	ErrorInvalidRequest = "invalid request"
	ErrorInvalidID      = "invalid resume id"
)

// Handler содержит HTTP обработчики резюме.
type Handler struct {
	resumes api.ResumeUseCase
}

// NewHandler создает новый экземпляр обработчика резюме.
func NewHandler(resumes api.ResumeUseCase) *Handler {
	return &Handler{resumes: resumes}
}

// Mine возвращает резюме соискателя во всех статусах.
func (h *Handler) Mine(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerMine)

	own, err := h.resumes.ListOwn(requestCtx, middleware.Account(ctx).ID)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, own)
}

// Browse возвращает одобренные резюме для работодателя.
func (h *Handler) Browse(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerBrowse)

	approved, err := h.resumes.BrowseApproved(requestCtx)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, approved)
}

// Create публикует резюме соискателя.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	var req dto.ResumeRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	resume := req.Resume()
	if err := h.resumes.Create(requestCtx, middleware.Account(ctx), resume); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusCreated, resume)
}

// Delete удаляет резюме соискателя.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerDelete)

	id, err := strconv.ParseInt(ctx.Params("resume_id"), 10, 64)
	if err != nil {
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidID)
	}

	if err := h.resumes.Delete(requestCtx, middleware.Account(ctx).ID, id); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, fiber.Map{"status": "ok"})
}
