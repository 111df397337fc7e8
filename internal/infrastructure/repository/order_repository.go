package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	domainRepo "github.com/hoanggia/woodshop-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithItems persists the order, its items and the inventory
// ledger rows in one transaction so a partial order can never exist.
func (r *orderRepository) CreateWithItems(ctx context.Context, order *entity.Order, items []entity.OrderItem, ledger []entity.InventoryTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		if len(ledger) > 0 {
			for i := range ledger {
				if ledger[i].ReferenceID == nil {
					ledger[i].ReferenceID = &order.ID
				}
			}
			if err := tx.Create(&ledger).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetByCode(ctx context.Context, code string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		First(&order, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CancelWithRestock cancels the order, restores stock and writes the
// reversal ledger rows in one transaction, so a failure at any step
// leaves the order, stock and ledger untouched together.
func (r *orderRepository) CancelWithRestock(ctx context.Context, orderID uuid.UUID, increments map[uuid.UUID]int, ledger []entity.InventoryTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Order{}).
			Where("id = ?", orderID).
			Update("status", enum.OrderStatusCancelled).Error; err != nil {
			return err
		}

		for id, amount := range increments {
			if err := tx.Model(&entity.Product{}).
				Where("id = ?", id).
				Update("quantity", gorm.Expr("quantity + ?", amount)).Error; err != nil {
				return err
			}
		}

		if len(ledger) > 0 {
			if err := tx.Create(&ledger).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.Search != "" {
		query = query.Where("code ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
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
		Preload("Items").
		Preload("Customer").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) ListCompletedBetween(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at >= ? AND created_at < ?", enum.OrderStatusCompleted, from, to).
		Preload("Items").
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) CountToday(ctx context.Context) (int64, error) {
	var count int64
	start := time.Now().Truncate(24 * time.Hour)
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("created_at >= ?", start).
		Count(&count).Error
	return count, err
}
