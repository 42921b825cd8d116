package tenant_test

import (
	"regexp"
	"testing"

	"go-hms/internal/tenant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type row struct {
	ID        int64
	CompanyID int64
}

func TestScope(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rows" WHERE company_id = $1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id"}).AddRow(1, 7))

	var out []row
	require.NoError(t, db.Table("rows").Scopes(tenant.Scope(7)).Find(&out).Error)
	require.Len(t, out, 1)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rows" WHERE employees.company_id = $1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id"}))

	require.NoError(t, db.Table("rows").Scopes(tenant.Column("employees.company_id", 7)).Find(&out).Error)
	require.NoError(t, mock.ExpectationsWereMet())
}
