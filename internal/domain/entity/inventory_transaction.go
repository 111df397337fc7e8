package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"gorm.io/gorm"
)

// InventoryTransaction is one append-only ledger row recording a stock
// movement. Rows are never updated or deleted.
type InventoryTransaction struct {
	ID          uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Code        string               `gorm:"size:100;unique;not null" json:"code"`
	ProductID   uuid.UUID            `gorm:"type:uuid;not null;index" json:"product_id"`
	Type        enum.TransactionType `gorm:"size:10;not null" json:"type"`
	Quantity    int                  `gorm:"not null" json:"quantity"`
	UnitPrice   int64                `gorm:"default:0" json:"unit_price"`
	TotalAmount int64                `gorm:"default:0" json:"total_amount"`
	Reason      *string              `gorm:"type:text" json:"reason,omitempty"`
	ReferenceID *uuid.UUID           `gorm:"type:uuid;index" json:"reference_id,omitempty"`
	CreatedBy   uuid.UUID            `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt   time.Time            `json:"created_at"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *InventoryTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryTransaction model
func (InventoryTransaction) TableName() string {
	return "inventory_transactions"
}
