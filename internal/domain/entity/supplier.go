package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier represents a goods supplier
type Supplier struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code         string         `gorm:"size:100;unique;not null" json:"code"`
	CompanyName  string         `gorm:"size:255;not null" json:"company_name"`
	DirectorName *string        `gorm:"size:255" json:"director_name,omitempty"`
	Phone        *string        `gorm:"size:50" json:"phone,omitempty"`
	Email        *string        `gorm:"size:255" json:"email,omitempty"`
	Address      *string        `gorm:"type:text" json:"address,omitempty"`
	Notes        *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
