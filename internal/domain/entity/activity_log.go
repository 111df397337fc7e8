package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ActivityLog is one append-only audit row. A failed log write never
// fails the business operation that produced it.
type ActivityLog struct {
	ID         uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	UserEmail  string              `gorm:"size:255;not null" json:"user_email"`
	Action     enum.ActivityAction `gorm:"size:50;not null" json:"action"`
	EntityType string              `gorm:"size:100;not null;index" json:"entity_type"`
	EntityID   *uuid.UUID          `gorm:"type:uuid" json:"entity_id,omitempty"`
	Details    *string             `gorm:"type:text" json:"details,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new log row
func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ActivityLog model
func (ActivityLog) TableName() string {
	return "activity_logs"
}
