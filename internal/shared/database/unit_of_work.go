package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// UnitOfWork runs fn inside one transaction: commit when fn returns nil,
// rollback on error or panic (the panic is re-raised).
type UnitOfWork interface {
	Within(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Within(ctx context.Context, fn func(tx *gorm.DB) error) (err error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Immediate runs fn against the pooled handle without a transaction.
// Tests use it where repository mocks ignore the handle.
type Immediate struct{}

func (Immediate) Within(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}
