package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
)

// InventoryTransactionRepository defines the interface for the stock
// movement ledger. The ledger is append-only: no update or delete.
type InventoryTransactionRepository interface {
	Create(ctx context.Context, txn *entity.InventoryTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryTransaction, error)
	List(ctx context.Context, params *InventoryFilterParams) ([]entity.InventoryTransaction, int64, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]entity.InventoryTransaction, error)
}

// InventoryFilterParams contains filtering parameters for ledger queries
type InventoryFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Type       *enum.TransactionType
	ProductID  *uuid.UUID
	From       *time.Time
	To         *time.Time
}
