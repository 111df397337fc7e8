package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee represents a staff member on the payroll.
// BaseSalary is the monthly salary in whole VND; the daily rate is
// BaseSalary divided by 26 working days.
type Employee struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code           string         `gorm:"size:100;unique;not null" json:"code"`
	FullName       string         `gorm:"size:255;not null" json:"full_name"`
	Position       string         `gorm:"size:100;not null" json:"position"`
	Phone          *string        `gorm:"size:50" json:"phone,omitempty"`
	BaseSalary     int64          `gorm:"default:0" json:"base_salary"`
	StartDate      *time.Time     `gorm:"type:date" json:"start_date,omitempty"`
	BirthYear      *int           `json:"birth_year,omitempty"`
	IDNumber       *string        `gorm:"size:50" json:"id_number,omitempty"`
	Hometown       *string        `gorm:"size:255" json:"hometown,omitempty"`
	CurrentAddress *string        `gorm:"type:text" json:"current_address,omitempty"`
	UserID         *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
