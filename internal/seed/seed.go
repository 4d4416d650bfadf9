// Package seed читает стартовые данные: список администраторов и
// демонстрационные каталоги вакансий и резюме. Файлы только читаются -
// репозитории никогда не пишут в них обратно.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"go.uber.org/zap"

	"jobdesk/internal/config"
	"jobdesk/internal/domain/entities"
	"jobdesk/pkg/logger"
)

// Сообщения журнала.
const (
	LogAdminFallback  = "admin seed unreachable, using built-in account"
	LogCatalogSkipped = "seed catalog unreachable, continuing without it"
	LogCatalogCorrupt = "seed catalog corrupt, continuing without it"
)

var errEmptyAdminSeed = errors.New("admin seed is empty")

// Admin - учетная запись администратора из admin.json. Поля login и
// username дублируют друг друга в исходных данных; при входе
// принимается совпадение с любым из них.
type Admin struct {
	ID               int64     `json:"id"`
	FIO              string    `json:"fio"`
	Login            string    `json:"login"`
	Username         string    `json:"username"`
	Phone            string    `json:"phone"`
	Password         string    `json:"password"`
	Status           string    `json:"status"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// Matches сообщает, подходит ли пара логин-пароль к этой учетной записи.
func (a *Admin) Matches(username, password string) bool {
	return (a.Login == username || a.Username == username) && a.Password == password
}

// User возвращает учетную запись администратора в общем виде. Роль у
// администраторов отсутствует.
func (a *Admin) User() entities.User {
	return entities.User{
		ID:               a.ID,
		FullName:         a.FIO,
		Username:         a.Username,
		Phone:            a.Phone,
		Status:           a.Status,
		RegistrationDate: a.RegistrationDate,
	}
}

// fallbackAdmins возвращает встроенную учетную запись администратора,
// используемую при недоступном admin.json.
func fallbackAdmins() []Admin {
	return []Admin{{
		ID:               1001,
		FIO:              "Торяник Ксения Александровна",
		Login:            "admin",
		Username:         "admin",
		Phone:            "+7 (123) 456-78-90",
		Password:         "qweqwe",
		Status:           entities.StatusAdmin,
		RegistrationDate: time.Date(2025, 12, 15, 11, 0, 0, 0, time.UTC),
	}}
}

// Data - загруженные стартовые данные.
type Data struct {
	Admins    []Admin
	Vacancies []entities.Vacancy
	Resumes   []entities.Resume
}

// AdminIDs возвращает идентификаторы администраторов для множества
// занятых значений аллокатора.
func (d *Data) AdminIDs() []int64 {
	ids := make([]int64, len(d.Admins))
	for i := range d.Admins {
		ids[i] = d.Admins[i].ID
	}
	return ids
}

// FindAdmin возвращает администратора с подходящими учетными данными
// или nil.
func (d *Data) FindAdmin(username, password string) *Admin {
	for i := range d.Admins {
		if d.Admins[i].Matches(username, password) {
			return &d.Admins[i]
		}
	}
	return nil
}

// Load читает стартовые данные по путям конфигурации. Недоступный или
// поврежденный файл администраторов заменяется встроенной учетной
// записью; недоступные каталоги дают пустые списки. Фатальных ошибок
// у загрузки нет.
func Load(ctx context.Context, cfg *config.SeedConfig) *Data {
	data := &Data{
		Admins:    loadAdmins(ctx, cfg.AdminPath),
		Vacancies: loadCatalog[entities.Vacancy](ctx, cfg.VacanciesPath, (*entities.Vacancy).Normalize),
		Resumes:   loadCatalog[entities.Resume](ctx, cfg.ResumesPath, (*entities.Resume).Normalize),
	}
	return data
}

func loadAdmins(ctx context.Context, path string) []Admin {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Log(ctx).Warn(ctx, LogAdminFallback, zap.String("path", path), zap.Error(err))
		return fallbackAdmins()
	}

	var admins []Admin
	if err := json.Unmarshal(raw, &admins); err != nil {
		logger.Log(ctx).Warn(ctx, LogAdminFallback, zap.String("path", path), zap.Error(err))
		return fallbackAdmins()
	}
	if len(admins) == 0 {
		logger.Log(ctx).Warn(ctx, LogAdminFallback, zap.String("path", path),
			zap.Error(errEmptyAdminSeed))
		return fallbackAdmins()
	}
	return admins
}

func loadCatalog[T any](ctx context.Context, path string, normalize func(*T)) []T {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Log(ctx).Warn(ctx, LogCatalogSkipped, zap.String("path", path), zap.Error(err))
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Log(ctx).Warn(ctx, LogCatalogCorrupt, zap.String("path", path), zap.Error(err))
		return []T{}
	}
	for i := range items {
		normalize(&items[i])
	}
	return items
}
