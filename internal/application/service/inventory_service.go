package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"github.com/hoanggia/woodshop-api/internal/domain/repository"
	"github.com/hoanggia/woodshop-api/pkg/apperror"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
	"github.com/hoanggia/woodshop-api/pkg/utils"
)

// InventoryService handles manual stock movements. Sales go through
// OrderService; this covers goods receipt, damage, corrections.
type InventoryService struct {
	inventoryRepo repository.InventoryTransactionRepository
	productRepo   repository.ProductRepository
	activity      *ActivityService
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	inventoryRepo repository.InventoryTransactionRepository,
	productRepo repository.ProductRepository,
	activity *ActivityService,
) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		activity:      activity,
	}
}

// StockMovementInput represents a manual stock in or out
type StockMovementInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice int64
	Reason    *string
}

// StockIn receives goods: increments stock and appends an "in" ledger row
func (s *InventoryService) StockIn(ctx context.Context, actor Actor, input *StockMovementInput) (*entity.InventoryTransaction, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}
	if input.UnitPrice < 0 {
		return nil, apperror.NewBadRequestError("Unit price cannot be negative")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.AtomicIncrementBatch(ctx, map[uuid.UUID]int{input.ProductID: input.Quantity}); err != nil {
		return nil, err
	}

	txn := &entity.InventoryTransaction{
		Code:        utils.GenerateCode(utils.PrefixStockIn),
		ProductID:   input.ProductID,
		Type:        enum.TransactionTypeIn,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		TotalAmount: input.UnitPrice * int64(input.Quantity),
		Reason:      input.Reason,
		CreatedBy:   actor.UserID,
	}

	if err := s.inventoryRepo.Create(ctx, txn); err != nil {
		// The increment already landed, compensate it
		failed, derr := s.productRepo.AtomicDecrementBatch(ctx, map[uuid.UUID]int{input.ProductID: input.Quantity})
		if derr != nil || len(failed) > 0 {
			return nil, fmt.Errorf("failed to record stock-in and to compensate: %w", err)
		}
		return nil, err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionCreate, "inventory_transaction", &txn.ID,
		fmt.Sprintf("stock in %d x %s (%s)", input.Quantity, product.Name, txn.Code))

	return txn, nil
}

// StockOut removes goods outside of a sale: decrements stock if
// sufficient and appends an "out" ledger row
func (s *InventoryService) StockOut(ctx context.Context, actor Actor, input *StockMovementInput) (*entity.InventoryTransaction, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}
	if input.UnitPrice < 0 {
		return nil, apperror.NewBadRequestError("Unit price cannot be negative")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, map[uuid.UUID]int{input.ProductID: input.Quantity})
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		return nil, apperror.NewConflictError(fmt.Sprintf("Insufficient stock for: %s", product.Name))
	}

	txn := &entity.InventoryTransaction{
		Code:        utils.GenerateCode(utils.PrefixStockOut),
		ProductID:   input.ProductID,
		Type:        enum.TransactionTypeOut,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		TotalAmount: input.UnitPrice * int64(input.Quantity),
		Reason:      input.Reason,
		CreatedBy:   actor.UserID,
	}

	if err := s.inventoryRepo.Create(ctx, txn); err != nil {
		_ = s.productRepo.AtomicIncrementBatch(ctx, map[uuid.UUID]int{input.ProductID: input.Quantity})
		return nil, err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionCreate, "inventory_transaction", &txn.ID,
		fmt.Sprintf("stock out %d x %s (%s)", input.Quantity, product.Name, txn.Code))

	return txn, nil
}

// List returns ledger rows matching the filters
func (s *InventoryService) List(ctx context.Context, params *repository.InventoryFilterParams) ([]entity.InventoryTransaction, *pagination.Pagination, error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	txns, total, err := s.inventoryRepo.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	return txns, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total), nil
}

// History returns the full movement history of one product, newest first
func (s *InventoryService) History(ctx context.Context, productID uuid.UUID) ([]entity.InventoryTransaction, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return s.inventoryRepo.ListByProduct(ctx, productID)
}
