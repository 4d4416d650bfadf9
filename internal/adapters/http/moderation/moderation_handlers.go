// Package moderation содержит HTTP обработчики очереди модерации.
package moderation

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
	LogHandlerPendingVacancies = "moderation handler: pending vacancies"
	LogHandlerPendingResumes   = "moderation handler: pending resumes"
	LogHandlerApproveVacancy   = "moderation handler: approve vacancy"
	LogHandlerRejectVacancy    = "moderation handler: reject vacancy"
	LogHandlerApproveResume    = "moderation handler: approve resume"
	LogHandlerRejectResume     = "moderation handler: reject resume"

	ErrorInvalidRequest   = "invalid request"
	ErrorInvalidVacancyID = "invalid vacancy id"
	ErrorInvalidResumeID  = "invalid resume id"
)

// Handler содержит HTTP обработчики модерации.
type Handler struct {
	moderation api.ModerationUseCase
}

// NewHandler создает новый экземпляр обработчика модерации.
func NewHandler(moderation api.ModerationUseCase) *Handler {
	return &Handler{moderation: moderation}
}

// PendingVacancies возвращает вакансии, ожидающие модерации.
func (h *Handler) PendingVacancies(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerPendingVacancies)

	pending, err := h.moderation.PendingVacancies(requestCtx)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, pending)
}

// PendingResumes возвращает резюме, ожидающие модерации.
func (h *Handler) PendingResumes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerPendingResumes)

	pending, err := h.moderation.PendingResumes(requestCtx)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, pending)
}

// ApproveVacancy одобряет вакансию.
func (h *Handler) ApproveVacancy(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerApproveVacancy)

	id, err := strconv.ParseInt(ctx.Params("vacancy_id"), 10, 64)
	if err != nil {
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidVacancyID)
	}

	if err := h.moderation.ApproveVacancy(requestCtx, middleware.Account(ctx).ID, id); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, fiber.Map{"status": "ok"})
}

// RejectVacancy отклоняет вакансию с указанием причины.
func (h *Handler) RejectVacancy(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRejectVacancy)

	id, err := strconv.ParseInt(ctx.Params("vacancy_id"), 10, 64)
	if err != nil {
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidVacancyID)
	}

	var req dto.RejectRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if err := h.moderation.RejectVacancy(requestCtx, middleware.Account(ctx).ID, id, req.Reason); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, fiber.Map{"status": "ok"})
}

// ApproveResume одобряет резюме.
func (h *Handler) ApproveResume(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerApproveResume)

	id, err := strconv.ParseInt(ctx.Params("resume_id"), 10, 64)
	if err != nil {
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidResumeID)
	}

	if err := h.moderation.ApproveResume(requestCtx, middleware.Account(ctx).ID, id); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, fiber.Map{"status": "ok"})
}

// RejectResume отклоняет резюме с указанием причины.
func (h *Handler) RejectResume(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRejectResume)

	id, err := strconv.ParseInt(ctx.Params("resume_id"), 10, 64)
	if err != nil {
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidResumeID)
	}

	var req dto.RejectRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if err := h.moderation.RejectResume(requestCtx, middleware.Account(ctx).ID, id, req.Reason); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, fiber.Map{"status": "ok"})
}
