package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreItem represents a single inventory record.
//
// Quantity is persisted as a string-encoded integer; the issuance service is
// the only writer that interprets it numerically.
type StoreItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;index"`
	Model     string    `json:"model" gorm:"size:255"`
	Quantity  string    `json:"Qty" gorm:"size:32"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (i *StoreItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
