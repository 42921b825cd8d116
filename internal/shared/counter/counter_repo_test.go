package counter

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_GetNextValue(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns Incremented Value", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)INSERT INTO company_counters.*ON CONFLICT \(company_id, counter_type\) DO UPDATE.*RETURNING last_value`).
			WithArgs(int64(10), EmployeeCode).
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(42)))

		next, err := repo.GetNextValue(ctx, 10, EmployeeCode)
		require.NoError(t, err)
		assert.Equal(t, int64(42), next)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Propagates Errors", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRepository(db)

		mock.ExpectQuery(`INSERT INTO company_counters`).WillReturnError(errors.New("db down"))

		_, err := repo.GetNextValue(ctx, 10, EmployeeCode)
		assert.EqualError(t, err, "db down")
	})

	t.Run("WithTx Nil Keeps Receiver", func(t *testing.T) {
		db, _ := newMockDB(t)
		repo := NewRepository(db)
		assert.Same(t, repo, repo.WithTx(nil))
	})
}
