package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order is a point-of-sale order. Amounts are whole VND.
// FinalAmount = TotalAmount - DiscountAmount, computed once at
// placement and never recomputed.
type Order struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Code           string             `gorm:"size:100;unique;not null" json:"code"`
	CustomerID     *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CreatedBy      uuid.UUID          `gorm:"type:uuid;not null" json:"created_by"`
	Status         enum.OrderStatus   `gorm:"size:50;default:'completed'" json:"status"`
	PaymentMethod  enum.PaymentMethod `gorm:"size:50;not null;default:'cash'" json:"payment_method"`
	TotalAmount    int64              `gorm:"default:0" json:"total_amount"`
	DiscountAmount int64              `gorm:"default:0" json:"discount_amount"`
	FinalAmount    int64              `gorm:"default:0" json:"final_amount"`
	Notes          *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	DeletedAt      gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line on an order. ProductName and UnitPrice are
// snapshots taken at placement; later product edits do not touch them.
type OrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	ProductName string    `gorm:"size:255;not null" json:"product_name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   int64     `gorm:"not null" json:"unit_price"`
	TotalPrice  int64     `gorm:"not null" json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
