package repository

import (
	"time"

	"github.com/google/uuid"
)

// Audit carries the external id and who/when stamps shared by identity tables.
type Audit struct {
	UUID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	CreatedBy *int64    `json:"created_by,omitempty"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
	UpdatedBy *int64    `json:"updated_by,omitempty"`
}

func (a *Audit) StampCreate(now time.Time, actor *int64) {
	if a.UUID == uuid.Nil {
		a.UUID = uuid.New()
	}
	a.CreatedAt = now
	a.UpdatedAt = now
	a.CreatedBy = actor
	a.UpdatedBy = actor
}

// Active is embedded by soft-deletable entities.
type Active struct {
	IsActive bool `gorm:"not null;default:true;index" json:"is_active"`
}

func (a *Active) MarkActive() { a.IsActive = true }

type creatable interface {
	StampCreate(now time.Time, actor *int64)
}

type activatable interface {
	MarkActive()
}
