package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-hms/internal/shared/query"

	"gorm.io/gorm"
)

var ErrSoftDeleteUnsupported = errors.New("repository: soft delete not supported for this table")

// Options describes the table a Store works on.
type Options struct {
	Table      string
	PrimaryKey string // defaults to "id"
	SoftDelete bool   // table has an is_active column
}

// Filter narrows FindAll. Equals is matched column = value; Scopes run as-is.
type Filter struct {
	Equals     map[string]any
	Scopes     []func(*gorm.DB) *gorm.DB
	Sortable   map[string]string
	Pagination query.Pagination
}

type Page[T any] struct {
	Items []T
	Meta  query.PageMeta
}

// Store is the CRUD contract shared by the identity repositories.
type Store[T any] struct {
	db   *gorm.DB
	opts Options
	now  func() time.Time
}

func NewStore[T any](db *gorm.DB, opts Options) *Store[T] {
	if opts.PrimaryKey == "" {
		opts.PrimaryKey = "id"
	}
	return &Store[T]{db: db, opts: opts, now: func() time.Time { return time.Now().UTC() }}
}

// WithTx binds the store to tx; a nil tx keeps the pooled handle.
func (s *Store[T]) WithTx(tx *gorm.DB) *Store[T] {
	if tx == nil {
		return s
	}
	cp := *s
	cp.db = tx
	return &cp
}

func (s *Store[T]) Options() Options { return s.opts }

// Now is the clock used for audit stamps.
func (s *Store[T]) Now() time.Time { return s.now() }

// Conn returns the handle (transaction or pool) bound to ctx.
func (s *Store[T]) Conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s *Store[T]) table(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Table(s.opts.Table)
}

func (s *Store[T]) pk() string {
	return fmt.Sprintf("%s = ?", s.opts.PrimaryKey)
}

func (s *Store[T]) active(db *gorm.DB) *gorm.DB {
	if s.opts.SoftDelete {
		return db.Where("is_active = ?", true)
	}
	return db
}

// FindByKey returns nil without error when no (active) row matches.
func (s *Store[T]) FindByKey(ctx context.Context, id int64) (*T, error) {
	var out T
	err := s.active(s.table(ctx).Where(s.pk(), id)).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store[T]) FindAll(ctx context.Context, f Filter) (Page[T], error) {
	db := s.active(s.table(ctx))
	for col, val := range f.Equals {
		db = db.Where(fmt.Sprintf("%s = ?", col), val)
	}
	for _, scope := range f.Scopes {
		db = scope(db)
	}

	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	items := make([]T, 0)
	p := f.Pagination.Normalize()
	if err := query.Apply(db, p, f.Sortable, s.opts.Table+".created_at").Find(&items).Error; err != nil {
		return Page[T]{}, err
	}

	return Page[T]{Items: items, Meta: query.BuildMeta(p, total)}, nil
}

// Create stamps uuid, created/updated at/by and is_active before inserting.
func (s *Store[T]) Create(ctx context.Context, entity *T, actor *int64) error {
	if c, ok := any(entity).(creatable); ok {
		c.StampCreate(s.now(), actor)
	}
	if s.opts.SoftDelete {
		if a, ok := any(entity).(activatable); ok {
			a.MarkActive()
		}
	}
	return s.db.WithContext(ctx).Table(s.opts.Table).Create(entity).Error
}

// Update applies fields to an active row. It reports false when nothing matched;
// callers decide whether that is a not-found.
func (s *Store[T]) Update(ctx context.Context, id int64, fields map[string]any, actor *int64) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}
	values := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		values[k] = v
	}
	values["updated_at"] = s.now()
	values["updated_by"] = actor

	res := s.active(s.table(ctx).Where(s.pk(), id)).Updates(values)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Store[T]) SoftDelete(ctx context.Context, id int64, actor *int64) (bool, error) {
	if !s.opts.SoftDelete {
		return false, ErrSoftDeleteUnsupported
	}
	res := s.active(s.table(ctx).Where(s.pk(), id)).Updates(map[string]any{
		"is_active":  false,
		"updated_at": s.now(),
		"updated_by": actor,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Store[T]) HardDelete(ctx context.Context, id int64) (bool, error) {
	var model T
	res := s.table(ctx).Where(s.pk(), id).Delete(&model)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ExistsByFilter is a uniqueness pre-check across all rows, active or not.
// It is racy by nature; the unique constraint on the write is authoritative.
func (s *Store[T]) ExistsByFilter(ctx context.Context, filters map[string]any, excludeID *int64) (bool, error) {
	db := s.table(ctx)
	for col, val := range filters {
		db = db.Where(fmt.Sprintf("%s = ?", col), val)
	}
	if excludeID != nil {
		db = db.Where(fmt.Sprintf("%s <> ?", s.opts.PrimaryKey), *excludeID)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
