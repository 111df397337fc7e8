package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// CreateWithItems persists the order, its items and the matching
	// inventory ledger rows in a single transaction. Stock has already
	// been decremented when this is called; on error the caller
	// compensates by incrementing it back.
	CreateWithItems(ctx context.Context, order *entity.Order, items []entity.OrderItem, ledger []entity.InventoryTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByCode(ctx context.Context, code string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	// CancelWithRestock flips the order to cancelled, restores the
	// given stock quantities and appends the compensating ledger rows,
	// all in a single transaction.
	CancelWithRestock(ctx context.Context, orderID uuid.UUID, increments map[uuid.UUID]int, ledger []entity.InventoryTransaction) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	// ListCompletedBetween returns completed orders created inside
	// [from, to), items preloaded, for reporting.
	ListCompletedBetween(ctx context.Context, from, to time.Time) ([]entity.Order, error)
	CountToday(ctx context.Context) (int64, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.OrderStatus
	CustomerID *uuid.UUID
	From       *time.Time
	To         *time.Time
}
