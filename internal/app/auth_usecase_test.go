package app_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/adapters/storage/memory"
	"jobdesk/internal/app"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/identity"
	"jobdesk/internal/ports/api"
	"jobdesk/internal/seed"
	"jobdesk/internal/session"
	"jobdesk/internal/store"
)

type fixture struct {
	backend      *memory.Backend
	users        *store.Users
	vacancies    *store.Vacancies
	resumes      *store.Resumes
	applications *store.Applications
	session      *session.Session
	seeds        *seed.Data
	alloc        *identity.Allocator
}

func newFixture() *fixture {
	backend := memory.New()
	alloc := identity.NewWithSource(rand.New(rand.NewSource(17)))
	seeds := &seed.Data{
		Admins: []seed.Admin{{
			ID:       1001,
			FIO:      "Торяник Ксения Александровна",
			Login:    "admin",
			Username: "admin",
			Password: "qweqwe",
			Status:   entities.StatusAdmin,
		}},
		Vacancies: []entities.Vacancy{},
		Resumes:   []entities.Resume{},
	}
	adminIDs := seeds.AdminIDs()
	return &fixture{
		backend:      backend,
		users:        store.NewUsers(backend, alloc, adminIDs),
		vacancies:    store.NewVacancies(backend, alloc, adminIDs),
		resumes:      store.NewResumes(backend, alloc, adminIDs),
		applications: store.NewApplications(backend),
		session:      session.New(backend),
		seeds:        seeds,
		alloc:        alloc,
	}
}

func (f *fixture) auth() api.AuthUseCase {
	return app.NewAuthUseCase(f.users, f.session, f.seeds)
}

func registerEmployer(t *testing.T, f *fixture) *entities.User {
	t.Helper()
	user, err := f.auth().Register(context.Background(),
		"Сидоров Павел Андреевич", "sidorov", "+7 (900) 111-22-33", "secret1", entities.RoleEmployer)
	require.NoError(t, err)
	return user
}

func registerJobseeker(t *testing.T, f *fixture) *entities.User {
	t.Helper()
	user, err := f.auth().Register(context.Background(),
		"Иванов Иван Иванович", "ivanov", "+7 (900) 222-33-44", "secret1", entities.RoleJobseeker)
	require.NoError(t, err)
	return user
}

func TestAuth_RegisterOpensSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	user := registerJobseeker(t, f)
	assert.True(t, identity.Valid(user.ID))
	assert.Equal(t, entities.StatusUser, user.Status)
	assert.Equal(t, entities.RoleJobseeker, user.Role)
	assert.Empty(t, user.Password)

	current, err := f.session.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestAuth_RegisterValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cases := []struct {
		name     string
		fullName string
		username string
		phone    string
		password string
		role     string
		want     error
	}{
		{"пустое ФИО", " ", "ivanov", "+7 (900) 222-33-44", "secret1", entities.RoleJobseeker, entities.ErrFullNameRequired},
		{"короткий логин", "Иванов Иван", "iv", "+7 (900) 222-33-44", "secret1", entities.RoleJobseeker, entities.ErrUsernameTooShort},
		{"кривой телефон", "Иванов Иван", "ivanov", "89001112233", "secret1", entities.RoleJobseeker, entities.ErrInvalidPhone},
		{"короткий пароль", "Иванов Иван", "ivanov", "+7 (900) 222-33-44", "12345", entities.RoleJobseeker, entities.ErrPasswordTooShort},
		{"пробел в пароле", "Иванов Иван", "ivanov", "+7 (900) 222-33-44", "sec ret", entities.RoleJobseeker, entities.ErrPasswordHasSpaces},
		{"неизвестная роль", "Иванов Иван", "ivanov", "+7 (900) 222-33-44", "secret1", "manager", entities.ErrUnknownRole},
		{"зарезервированный логин", "Иванов Иван", "admin", "+7 (900) 222-33-44", "secret1", entities.RoleJobseeker, entities.ErrUsernameReserved},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.auth().Register(ctx, tc.fullName, tc.username, tc.phone, tc.password, tc.role)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAuth_RegisterDuplicateUsername(t *testing.T) {
	f := newFixture()
	registerJobseeker(t, f)

	_, err := f.auth().Register(context.Background(),
		"Иванов Петр", "ivanov", "+7 (900) 333-44-55", "secret1", entities.RoleJobseeker)
	require.ErrorIs(t, err, store.ErrDuplicateUsername)
}

func TestAuth_LoginAdminSeedFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	user, err := f.auth().Login(ctx, "admin", "qweqwe")
	require.NoError(t, err)
	assert.Equal(t, int64(1001), user.ID)
	assert.Equal(t, entities.StatusAdmin, user.Status)
	assert.Equal(t, entities.RoleNone, user.Role)
}

func TestAuth_LoginUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	registered := registerJobseeker(t, f)
	require.NoError(t, f.auth().Logout(ctx))

	user, err := f.auth().Login(ctx, "ivanov", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.Password)

	_, err = f.auth().Login(ctx, "ivanov", "wrong-pass")
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)

	_, err = f.auth().Login(ctx, "ghost", "secret1")
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestAuth_LoginInactiveAccount(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	user := registerJobseeker(t, f)

	stored, err := f.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	inactive := false
	stored.IsActive = &inactive
	require.NoError(t, f.users.Update(ctx, stored))

	_, err = f.auth().Login(ctx, "ivanov", "secret1")
	require.ErrorIs(t, err, entities.ErrAccountInactive)
}

func TestAuth_Logout(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	registerJobseeker(t, f)

	require.NoError(t, f.auth().Logout(ctx))

	current, err := f.auth().Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestAuth_RegistrationDateIsRecent(t *testing.T) {
	f := newFixture()
	user := registerJobseeker(t, f)

	stored, err := f.users.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), stored.RegistrationDate, time.Minute)
}
