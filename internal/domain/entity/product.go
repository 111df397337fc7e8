package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a furniture item in the inventory.
// Quantity is only ever changed through atomic conditional updates;
// prices are whole VND.
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code          string         `gorm:"size:100;unique;not null" json:"code"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Category      string         `gorm:"size:100;not null" json:"category"`
	WoodType      string         `gorm:"size:100;not null" json:"wood_type"`
	Quantity      int            `gorm:"default:0" json:"quantity"`
	PurchasePrice int64          `gorm:"default:0" json:"purchase_price"`
	SellingPrice  int64          `gorm:"default:0" json:"selling_price"`
	Location      *string        `gorm:"size:255" json:"location,omitempty"`
	Description   *string        `gorm:"type:text" json:"description,omitempty"`
	ImageURL      *string        `gorm:"size:255" json:"image_url,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
