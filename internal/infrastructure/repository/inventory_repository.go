package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	domainRepo "github.com/hoanggia/woodshop-api/internal/domain/repository"
	"gorm.io/gorm"
)

type inventoryTransactionRepository struct {
	db *gorm.DB
}

// NewInventoryTransactionRepository creates a new ledger repository
func NewInventoryTransactionRepository(db *gorm.DB) domainRepo.InventoryTransactionRepository {
	return &inventoryTransactionRepository{db: db}
}

func (r *inventoryTransactionRepository) Create(ctx context.Context, txn *entity.InventoryTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *inventoryTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryTransaction, error) {
	var txn entity.InventoryTransaction
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *inventoryTransactionRepository) List(ctx context.Context, params *domainRepo.InventoryFilterParams) ([]entity.InventoryTransaction, int64, error) {
	var txns []entity.InventoryTransaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InventoryTransaction{})

	if params.Search != "" {
		query = query.Where("code ILIKE ?", "%"+params.Search+"%")
	}

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}

	if params.From != nil {
		query = query.Where("created_at >= ?", *params.From)
	}

	if params.To != nil {
		query = query.Where("created_at < ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Product").
		Order("created_at DESC").
		Find(&txns).Error

	return txns, total, err
}

func (r *inventoryTransactionRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]entity.InventoryTransaction, error) {
	var txns []entity.InventoryTransaction
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}
