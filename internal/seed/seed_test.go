package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/config"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/seed"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ReadsAllFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.SeedConfig{
		AdminPath: writeFile(t, dir, "admin.json", `[
			{"id": 1001, "fio": "Торяник Ксения Александровна", "login": "admin",
			 "username": "admin", "phone": "+7 (123) 456-78-90", "password": "qweqwe",
			 "status": "admin", "registrationDate": "2025-12-15T11:00:00.000Z"}
		]`),
		VacanciesPath: writeFile(t, dir, "vacancies.json", `[
			{"id": 9101, "title": "Сварщик", "company": "ООО Уралмонтаж",
			 "salary": 95000, "city": "Челябинск", "description": "Сварочные работы",
			 "employerId": "9002", "createdAt": "2025-12-01T08:15:00.000Z"}
		]`),
		ResumesPath: writeFile(t, dir, "resumes.json", `[
			{"id": 9201, "title": "Бухгалтер", "createdAt": "2025-11-22T16:45:00.000Z",
			 "personal": {"fullName": "Кузнецова Мария", "phone": "+7 (921) 654-32-10",
			 "email": "m@example.com"}, "education": [], "skills": [],
			 "experience": {"hasExperience": false, "items": []},
			 "desiredSalary": null, "moderationStatus": "approved"}
		]`),
	}

	data := seed.Load(context.Background(), cfg)

	require.Len(t, data.Admins, 1)
	assert.Equal(t, []int64{1001}, data.AdminIDs())

	require.Len(t, data.Vacancies, 1)
	// Записям каталога без статуса модерации подставляется approved.
	assert.Equal(t, entities.ModerationApproved, data.Vacancies[0].ModerationStatus)

	require.Len(t, data.Resumes, 1)
	assert.Equal(t, entities.ModerationApproved, data.Resumes[0].ModerationStatus)
}

func TestLoad_FallbackAdmin(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.SeedConfig{
		AdminPath:     filepath.Join(dir, "missing.json"),
		VacanciesPath: filepath.Join(dir, "missing-vacancies.json"),
		ResumesPath:   filepath.Join(dir, "missing-resumes.json"),
	}

	data := seed.Load(context.Background(), cfg)

	require.Len(t, data.Admins, 1)
	admin := data.Admins[0]
	assert.Equal(t, int64(1001), admin.ID)
	assert.Equal(t, "admin", admin.Login)
	assert.Equal(t, "Торяник Ксения Александровна", admin.FIO)
	assert.Equal(t, entities.StatusAdmin, admin.Status)

	assert.Empty(t, data.Vacancies)
	assert.Empty(t, data.Resumes)
}

func TestLoad_CorruptAdminFallsBack(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.SeedConfig{
		AdminPath:     writeFile(t, dir, "admin.json", "{broken"),
		VacanciesPath: filepath.Join(dir, "missing.json"),
		ResumesPath:   filepath.Join(dir, "missing.json"),
	}

	data := seed.Load(context.Background(), cfg)

	require.Len(t, data.Admins, 1)
	assert.Equal(t, "admin", data.Admins[0].Username)
}

func TestFindAdmin(t *testing.T) {
	data := seed.Load(context.Background(), &config.SeedConfig{
		AdminPath:     "does-not-exist.json",
		VacanciesPath: "does-not-exist.json",
		ResumesPath:   "does-not-exist.json",
	})

	assert.NotNil(t, data.FindAdmin("admin", "qweqwe"))
	assert.Nil(t, data.FindAdmin("admin", "wrong"))
	assert.Nil(t, data.FindAdmin("nobody", "qweqwe"))
}

func TestAdminUser(t *testing.T) {
	admin := seed.Admin{ID: 1001, FIO: "Торяник Ксения Александровна", Username: "admin", Status: entities.StatusAdmin}
	user := admin.User()

	assert.Equal(t, int64(1001), user.ID)
	assert.Equal(t, entities.StatusAdmin, user.Status)
	// Роли у администраторов нет.
	assert.Equal(t, entities.RoleNone, user.Role)
	assert.Empty(t, user.Password)
}
