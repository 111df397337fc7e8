package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer represents a buyer. TotalSpent is not stored: it is derived
// from the customer's completed orders at read time so it can never go
// stale.
type Customer struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Code         string            `gorm:"size:100;unique;not null" json:"code"`
	FullName     string            `gorm:"size:255;not null" json:"full_name"`
	Phone        string            `gorm:"size:50;not null" json:"phone"`
	Email        *string           `gorm:"size:255" json:"email,omitempty"`
	Address      *string           `gorm:"type:text" json:"address,omitempty"`
	CustomerType enum.CustomerType `gorm:"size:50;default:'retail'" json:"customer_type"`
	Notes        *string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`

	// Derived, populated by the service on reads
	TotalSpent int64 `gorm:"-" json:"total_spent"`

	// Relationships
	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
