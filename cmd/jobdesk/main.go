package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	httpServer "jobdesk/internal/adapters/http"
	"jobdesk/internal/adapters/services"
	"jobdesk/internal/adapters/storage/memory"
	"jobdesk/internal/adapters/storage/postgres"
	"jobdesk/internal/adapters/storage/redis"
	"jobdesk/internal/app"
	"jobdesk/internal/config"
	"jobdesk/internal/identity"
	"jobdesk/internal/ports/storage"
	"jobdesk/internal/seed"
	"jobdesk/internal/session"
	"jobdesk/internal/store"
	pgdb "jobdesk/pkg/db/postgres"
	"jobdesk/pkg/logger"
	"jobdesk/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "JOBDESK_LOG_MODE"
	EnvLoggerLevel = "JOBDESK_LOG_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitStorage          = "failed to initialize storage backend"
	ErrUnknownBackend       = "unknown storage backend"
	ErrMigrateIdentities    = "failed to migrate legacy identifiers"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "jobdesk service started"
	LogServiceShutdownDone = "jobdesk service shutdown complete"
	LogInitStorage         = "initializing storage backend"
	LogInitSeeds           = "loading seed catalogs"
	LogInitRepositories    = "initializing repositories"
	LogMigrateIdentities   = "migrating legacy identifiers"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingStorage      = "closing storage backend"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitStorage, zap.String("backend", cfg.Storage.Backend))
		backend, closeBackend, err := newBackend(ctx, cfg)
		if err != nil {
			log.Error(ctx, ErrInitStorage, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitSeeds)
		seeds := seed.Load(ctx, &cfg.Seed)
		adminIDs := seeds.AdminIDs()

		log.Info(ctx, LogInitRepositories)
		alloc := identity.New()
		users := store.NewUsers(backend, alloc, adminIDs)
		vacancies := store.NewVacancies(backend, alloc, adminIDs)
		resumes := store.NewResumes(backend, alloc, adminIDs)
		applications := store.NewApplications(backend)
		sess := session.New(backend)

		log.Info(ctx, LogMigrateIdentities)
		if err := store.MigrateAll(ctx, backend, users, vacancies, resumes, adminIDs); err != nil {
			log.Error(ctx, ErrMigrateIdentities, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitUseCases)
		useCases := httpServer.UseCases{
			Auth:         app.NewAuthUseCase(users, sess, seeds),
			Vacancies:    app.NewVacancyUseCase(vacancies, seeds),
			Resumes:      app.NewResumeUseCase(resumes, seeds),
			Applications: app.NewApplicationUseCase(applications, vacancies, resumes, backend, alloc, seeds),
			Moderation:   app.NewModerationUseCase(vacancies, resumes),
			Admin:        app.NewAdminUseCase(users, resumes, applications),
			Profile:      app.NewProfileUseCase(backend),
		}
		tokens := services.NewJWT(cfg.Session.JWTSecret, cfg.Session.TokenTTL)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpServer.SetupRouter(fiberApp, useCases, tokens, users, seeds)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.Address()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.Address()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(cfg.Shutdown.Timeout,
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			// Закрытие хранилища.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingStorage)
				return closeBackend()
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// newBackend выбирает бэкенд хранилища согласно конфигурации. Для Postgres
// перед созданием пула применяются миграции схемы kv_store.
func newBackend(ctx context.Context, cfg *config.Config) (storage.Backend, func() error, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		b := memory.New()
		return b, b.Close, nil
	case config.BackendRedis:
		b, err := redis.New(ctx, &cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	case config.BackendPostgres:
		if err := pgdb.MigrateDSN(ctx, cfg.Postgres.DSN, cfg.Postgres.MigrationsPath); err != nil {
			return nil, nil, err
		}
		db, err := pgdb.New(ctx, cfg.Postgres.DSN, cfg.Postgres.MinConns, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, nil, err
		}
		b := postgres.New(db.Pool())
		return b, b.Close, nil
	default:
		return nil, nil, fmt.Errorf("%s: %q", ErrUnknownBackend, cfg.Storage.Backend)
	}
}
