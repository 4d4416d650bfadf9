package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/adapters/storage/postgres"
	"jobdesk/internal/ports/storage"
)

func TestBackend_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("существующий ключ", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT value FROM kv_store .+").
			WithArgs("users").
			WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(`[{"id":1234}]`))

		backend := postgres.New(mock)
		value, err := backend.Read(ctx, "users")

		require.NoError(t, err)
		assert.Equal(t, `[{"id":1234}]`, value)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("отсутствующий ключ", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT value FROM kv_store .+").
			WithArgs("currentUser").
			WillReturnError(pgx.ErrNoRows)

		backend := postgres.New(mock)
		_, err = backend.Read(ctx, "currentUser")

		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	})
}

func TestBackend_Write(t *testing.T) {
	ctx := context.Background()

	t.Run("успешная запись", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO kv_store .+").
			WithArgs("vacancies", `[]`).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		backend := postgres.New(mock)
		require.NoError(t, backend.Write(ctx, "vacancies", `[]`))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("нехватка места превращается в ErrStorageFull", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO kv_store .+").
			WithArgs("vacancies", `[]`).
			WillReturnError(&pgconn.PgError{Code: "53100", Message: "disk full"})

		backend := postgres.New(mock)
		err = backend.Write(ctx, "vacancies", `[]`)

		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrStorageFull)
	})
}

func TestBackend_Remove(t *testing.T) {
	ctx := context.Background()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM kv_store .+").
		WithArgs("currentUser").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	backend := postgres.New(mock)
	require.NoError(t, backend.Remove(ctx, "currentUser"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBackend_Keys(t *testing.T) {
	ctx := context.Background()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT key FROM kv_store .+").
		WithArgs("resumes_").
		WillReturnRows(pgxmock.NewRows([]string{"key"}).
			AddRow("resumes_1234").
			AddRow("resumes_5678"))

	backend := postgres.New(mock)
	keys, err := backend.Keys(ctx, "resumes_")

	require.NoError(t, err)
	assert.Equal(t, []string{"resumes_1234", "resumes_5678"}, keys)
	require.NoError(t, mock.ExpectationsWereMet())
}
