package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type widget struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
	Audit
	Active
}

type attachment struct {
	ID   int64 `gorm:"primaryKey"`
	Path string
}

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

func TestStore_FindByKey(t *testing.T) {
	ctx := context.Background()

	t.Run("filters to active rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewStore[widget](db, Options{Table: "widgets", SoftDelete: true})

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "widgets" WHERE id = $1 AND is_active = $2`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active"}).AddRow(7, "gauge", true))

		got, err := store.FindByKey(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "gauge", got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is nil without error", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewStore[attachment](db, Options{Table: "attachments"})

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "attachments" WHERE id = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "path"}))

		got, err := store.FindByKey(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestStore_Create_Stamps(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewStore[widget](db, Options{Table: "widgets", SoftDelete: true})

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "widgets"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	actor := int64(3)
	w := &widget{Name: "dial"}
	require.NoError(t, store.Create(context.Background(), w, &actor))

	assert.Equal(t, int64(11), w.ID)
	assert.NotEqual(t, uuid.Nil, w.UUID)
	assert.True(t, w.IsActive)
	assert.Equal(t, &actor, w.CreatedBy)
	assert.False(t, w.CreatedAt.IsZero())
	assert.Equal(t, w.CreatedAt, w.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("no row matched", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewStore[widget](db, Options{Table: "widgets", SoftDelete: true})

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "widgets" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := store.Update(ctx, 99, map[string]any{"name": "x"}, nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("row matched", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewStore[widget](db, Options{Table: "widgets", SoftDelete: true})

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "widgets" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := store.Update(ctx, 1, map[string]any{"name": "x"}, nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("empty update touches nothing", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewStore[widget](db, Options{Table: "widgets", SoftDelete: true})

		ok, err := store.Update(ctx, 1, nil, nil)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_SoftDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("unsupported table", func(t *testing.T) {
		db, _ := newMockDB(t)
		store := NewStore[attachment](db, Options{Table: "attachments"})

		ok, err := store.SoftDelete(ctx, 1, nil)
		assert.ErrorIs(t, err, ErrSoftDeleteUnsupported)
		assert.False(t, ok)
	})

	t.Run("flips active flag", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewStore[widget](db, Options{Table: "widgets", SoftDelete: true})

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "widgets" SET "is_active"=$1`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := store.SoftDelete(ctx, 1, nil)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_HardDelete(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewStore[attachment](db, Options{Table: "attachments"})

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "attachments" WHERE id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := store.HardDelete(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_ExistsByFilter(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewStore[widget](db, Options{Table: "widgets", SoftDelete: true})

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "widgets" WHERE name = $1 AND id <> $2`)).
		WithArgs("dial", int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exclude := int64(4)
	exists, err := store.ExistsByFilter(context.Background(), map[string]any{"name": "dial"}, &exclude)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindAll_Paginates(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewStore[widget](db, Options{Table: "widgets", SoftDelete: true})

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "widgets" WHERE is_active = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "widgets" WHERE is_active = $1 ORDER BY widgets.created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(21, "a").AddRow(22, "b"))

	page, err := store.FindAll(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(25), page.Meta.Total)
	assert.Equal(t, 20, page.Meta.Limit)
	assert.True(t, page.Meta.HasNext)
	assert.NoError(t, mock.ExpectationsWereMet())
}
