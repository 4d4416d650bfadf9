// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"jobdesk/internal/adapters/http/admin"
	"jobdesk/internal/adapters/http/applications"
	"jobdesk/internal/adapters/http/auth"
	"jobdesk/internal/adapters/http/middleware"
	"jobdesk/internal/adapters/http/moderation"
	"jobdesk/internal/adapters/http/profile"
	"jobdesk/internal/adapters/http/resumes"
	"jobdesk/internal/adapters/http/vacancies"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/ports/api"
	svc "jobdesk/internal/ports/services"
	"jobdesk/internal/seed"
	"jobdesk/internal/store"
)

// UseCases собирает сценарии, которые обслуживает HTTP фасад.
type UseCases struct {
	Auth         api.AuthUseCase
	Vacancies    api.VacancyUseCase
	Resumes      api.ResumeUseCase
	Applications api.ApplicationUseCase
	Moderation   api.ModerationUseCase
	Admin        api.AdminUseCase
	Profile      api.ProfileUseCase
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, useCases UseCases, tokens svc.TokenService, users *store.Users, seeds *seed.Data) {
	authHandler := auth.NewHandler(useCases.Auth, tokens)
	vacancyHandler := vacancies.NewHandler(useCases.Vacancies)
	resumeHandler := resumes.NewHandler(useCases.Resumes)
	applicationHandler := applications.NewHandler(useCases.Applications)
	moderationHandler := moderation.NewHandler(useCases.Moderation)
	adminHandler := admin.NewHandler(useCases.Admin)
	profileHandler := profile.NewHandler(useCases.Profile)

	requireAuth := middleware.NewAuthMiddleware(tokens, users, seeds)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout, requireAuth)
	authRoutes.Get("/me", authHandler.Me, requireAuth)

	// Доска вакансий (публичная) и кабинет работодателя.
	vacancyRoutes := apiV1.Group("/vacancies")
	vacancyRoutes.Get("/", vacancyHandler.Board)
	vacancyRoutes.Get("/mine", vacancyHandler.Mine,
		requireAuth, middleware.RequireRole(entities.RoleEmployer))
	vacancyRoutes.Post("/", vacancyHandler.Create,
		requireAuth, middleware.RequireRole(entities.RoleEmployer))
	vacancyRoutes.Put("/:vacancy_id", vacancyHandler.Update,
		requireAuth, middleware.RequireRole(entities.RoleEmployer))
	vacancyRoutes.Delete("/:vacancy_id", vacancyHandler.Delete,
		requireAuth, middleware.RequireRole(entities.RoleEmployer))

	// Резюме соискателя и витрина для работодателя.
	resumeRoutes := apiV1.Group("/resumes")
	resumeRoutes.Get("/mine", resumeHandler.Mine,
		requireAuth, middleware.RequireRole(entities.RoleJobseeker))
	resumeRoutes.Post("/", resumeHandler.Create,
		requireAuth, middleware.RequireRole(entities.RoleJobseeker))
	resumeRoutes.Delete("/:resume_id", resumeHandler.Delete,
		requireAuth, middleware.RequireRole(entities.RoleJobseeker))
	resumeRoutes.Get("/approved", resumeHandler.Browse,
		requireAuth, middleware.RequireRole(entities.RoleEmployer))

	// Отклики: исходящие у соискателя, входящие у работодателя.
	applicationRoutes := apiV1.Group("/applications")
	applicationRoutes.Post("/", applicationHandler.Apply,
		requireAuth, middleware.RequireRole(entities.RoleJobseeker))
	applicationRoutes.Get("/mine", applicationHandler.Mine,
		requireAuth, middleware.RequireRole(entities.RoleJobseeker))
	applicationRoutes.Get("/incoming", applicationHandler.Incoming,
		requireAuth, middleware.RequireRole(entities.RoleEmployer))
	applicationRoutes.Patch("/:application_id", applicationHandler.Review,
		requireAuth, middleware.RequireRole(entities.RoleEmployer))

	// Очередь модерации (модераторы и администраторы).
	moderationRoutes := apiV1.Group("/moderation")
	moderationRoutes.Use(requireAuth,
		middleware.RequireStatus(entities.StatusModerator, entities.StatusAdmin))
	moderationRoutes.Get("/vacancies", moderationHandler.PendingVacancies)
	moderationRoutes.Get("/resumes", moderationHandler.PendingResumes)
	moderationRoutes.Post("/vacancies/:vacancy_id/approve", moderationHandler.ApproveVacancy)
	moderationRoutes.Post("/vacancies/:vacancy_id/reject", moderationHandler.RejectVacancy)
	moderationRoutes.Post("/resumes/:resume_id/approve", moderationHandler.ApproveResume)
	moderationRoutes.Post("/resumes/:resume_id/reject", moderationHandler.RejectResume)

	// Панель администратора.
	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(requireAuth, middleware.RequireStatus(entities.StatusAdmin))
	adminRoutes.Get("/users", adminHandler.ListUsers)
	adminRoutes.Post("/users/:user_id/promote", adminHandler.Promote)
	adminRoutes.Post("/users/:user_id/demote", adminHandler.Demote)
	adminRoutes.Post("/users/:user_id/toggle-active", adminHandler.ToggleActive)
	adminRoutes.Delete("/users/:user_id", adminHandler.DeleteUser)
	adminRoutes.Post("/moderators", adminHandler.CreateModerator)

	// Профиль-надстройка учетной записи.
	profileRoutes := apiV1.Group("/profile")
	profileRoutes.Use(requireAuth)
	profileRoutes.Get("/", profileHandler.Get)
	profileRoutes.Put("/", profileHandler.Update)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
