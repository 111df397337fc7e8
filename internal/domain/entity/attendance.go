package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRecord is one employee's attendance for one calendar day.
// Date is stored as yyyy-MM-dd, TimeIn/TimeOut as HH:mm:ss wall-clock
// strings. TotalHours is filled in at check-out.
type AttendanceRecord struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_employee_date" json:"employee_id"`
	Date       string     `gorm:"size:10;not null;uniqueIndex:idx_attendance_employee_date" json:"date"`
	TimeIn     string     `gorm:"size:8;not null" json:"time_in"`
	TimeOut    *string    `gorm:"size:8" json:"time_out,omitempty"`
	TotalHours *float64   `json:"total_hours,omitempty"`
	Notes      *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relationships
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// BeforeCreate generates a UUID before creating a new attendance record
func (a *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AttendanceRecord model
func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// IsCheckedOut reports whether the record already has a check-out time.
func (a *AttendanceRecord) IsCheckedOut() bool {
	return a.TimeOut != nil
}
