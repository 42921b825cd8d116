package counter

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const EmployeeCode = "employee_code"

// CompanyCounter is a per-company monotonic sequence.
type CompanyCounter struct {
	CompanyID   int64     `gorm:"primaryKey;autoIncrement:false"`
	CounterType string    `gorm:"primaryKey;size:50"`
	LastValue   int64     `gorm:"not null;default:0"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (CompanyCounter) TableName() string { return "company_counters" }

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	GetNextValue(ctx context.Context, companyID int64, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) GetNextValue(ctx context.Context, companyID int64, counterType string) (int64, error) {
	var nextValue int64

	// Atomic upsert so concurrent registrations in one company never share a value.
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO company_counters (company_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (company_id, counter_type) DO UPDATE
		SET last_value = company_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, companyID, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
