package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IssueStatus is the lifecycle state of an issuance record.
type IssueStatus string

const (
	// IssueStatusIssued is the only status currently produced.
	IssueStatusIssued IssueStatus = "issued"
)

// Issue is an append-only ledger entry recording stock allocated to a
// department. Name and model are denormalized from the item at issue time so
// the ledger stays readable if the item is later deleted.
type Issue struct {
	ID             uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	Department     string      `json:"department" gorm:"size:255;not null;index"`
	ItemID         uuid.UUID   `json:"itemId" gorm:"type:char(36);not null;index"`
	ItemName       string      `json:"itemName" gorm:"size:255"`
	ItemModel      string      `json:"itemModel" gorm:"size:255"`
	IssuedQuantity int         `json:"issuedQuantity" gorm:"not null"`
	Status         IssueStatus `json:"status" gorm:"size:32;default:'issued'"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Issue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
