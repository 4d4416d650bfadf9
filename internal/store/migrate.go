package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"jobdesk/internal/ports/storage"
	"jobdesk/pkg/logger"
)

// MigrateAll приводит идентификаторы всех разделов к четырехзначному
// формату. Разделы обрабатываются последовательно с общим множеством
// занятых значений, поэтому выданные на ранних шагах идентификаторы не
// повторяются на поздних. Повторный запуск на уже мигрированных данных
// ничего не меняет.
func MigrateAll(ctx context.Context, backend storage.Backend, users *Users, vacancies *Vacancies, resumes *Resumes, adminIDs []int64) error {
	existing, err := CollectIDs(ctx, backend, adminIDs)
	if err != nil {
		return fmt.Errorf("migrating ids: %w", err)
	}

	usersChanged, err := users.MigrateIDs(ctx, existing)
	if err != nil {
		return fmt.Errorf("migrating ids: %w", err)
	}
	vacanciesChanged, err := vacancies.MigrateIDs(ctx, existing)
	if err != nil {
		return fmt.Errorf("migrating ids: %w", err)
	}
	resumesChanged, err := resumes.MigrateIDs(ctx, existing)
	if err != nil {
		return fmt.Errorf("migrating ids: %w", err)
	}

	if usersChanged || vacanciesChanged || resumesChanged {
		logger.Log(ctx).Info(ctx, "legacy id migration finished",
			zap.Bool("users", usersChanged),
			zap.Bool("vacancies", vacanciesChanged),
			zap.Bool("resumes", resumesChanged))
	}
	return nil
}
