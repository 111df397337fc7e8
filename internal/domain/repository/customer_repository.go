package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByCode(ctx context.Context, code string) (*entity.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// TotalSpent sums final_amount over the customer's completed orders.
	TotalSpent(ctx context.Context, customerID uuid.UUID) (int64, error)
	// TotalSpentBatch returns completed-order totals for many customers
	// in one query, keyed by customer ID.
	TotalSpentBatch(ctx context.Context, customerIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}
