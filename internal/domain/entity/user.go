package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents an account that can sign in to the dashboard
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email     string         `gorm:"size:255;unique;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	FullName  string         `gorm:"size:255;not null" json:"full_name"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	UserRole *UserRole `gorm:"foreignKey:UserID" json:"user_role,omitempty"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// Role returns the user's role, or RoleUnassigned when none is set.
func (u *User) Role() enum.Role {
	if u.UserRole == nil {
		return enum.RoleUnassigned
	}
	return u.UserRole.Role
}

// UserRole holds the single role assigned to a user.
// One row per user; assignment is an upsert, never a second insert.
type UserRole struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Role      enum.Role `gorm:"size:50;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new role row
func (r *UserRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserRole model
func (UserRole) TableName() string {
	return "user_roles"
}
