// Package vacancies содержит HTTP обработчики вакансий.
package vacancies

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
	LogHandlerBoard  = "vacancy handler: board"
	LogHandlerMine   = "vacancy handler: own list"
	LogHandlerCreate = "vacancy handler: create"
	LogHandlerUpdate = "vacancy handler: update"
	LogHandlerDelete = "vacancy handler: delete"

	ErrorInvalidRequest = "invalid request"
	ErrorInvalidID      = "invalid vacancy id"
)

// Handler содержит HTTP обработчики вакансий.
type Handler struct {
	vacancies api.VacancyUseCase
}

// NewHandler создает новый экземпляр обработчика вакансий.
func NewHandler(vacancies api.VacancyUseCase) *Handler {
	return &Handler{vacancies: vacancies}
}

// Board возвращает публичную доску одобренных вакансий.
func (h *Handler) Board(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerBoard)

	board, err := h.vacancies.Board(requestCtx)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, board)
}

// Mine возвращает вакансии работодателя во всех статусах.
func (h *Handler) Mine(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerMine)

	own, err := h.vacancies.ListByEmployer(requestCtx, middleware.Account(ctx).ID)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, own)
}

// Create публикует вакансию работодателя.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	var req dto.VacancyRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	vacancy := req.Vacancy(0)
	if err := h.vacancies.Create(requestCtx, middleware.Account(ctx), vacancy); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusCreated, vacancy)
}

// Update редактирует вакансию работодателя.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	id, err := strconv.ParseInt(ctx.Params("vacancy_id"), 10, 64)
	if err != nil {
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidID)
	}

	var req dto.VacancyRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	vacancy := req.Vacancy(id)
	if err := h.vacancies.Update(requestCtx, middleware.Account(ctx), vacancy); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, vacancy)
}

// Delete удаляет вакансию работодателя.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerDelete)

	id, err := strconv.ParseInt(ctx.Params("vacancy_id"), 10, 64)
	if err != nil {
		return respond.Message(ctx, http.StatusBadRequest, ErrorInvalidID)
	}

	if err := h.vacancies.Delete(requestCtx, middleware.Account(ctx), id); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, fiber.Map{"status": "ok"})
}
