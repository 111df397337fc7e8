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

// OrderService handles point-of-sale order operations
type OrderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	activity     *ActivityService
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	activity *ActivityService,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		activity:     activity,
	}
}

// OrderItemInput represents one line of an order request
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput represents the create order input. Prices are not
// accepted from the client; they are snapshotted from the catalog.
// Status may be pending or completed; empty means completed, the POS
// immediate-sale flow. Payment method defaults to cash.
type CreateOrderInput struct {
	CustomerID     *uuid.UUID
	Status         enum.OrderStatus
	PaymentMethod  enum.PaymentMethod
	DiscountAmount int64
	Notes          *string
	Items          []OrderItemInput
}

// CreateOrder places a point-of-sale order: stock is atomically
// decremented first, then the order, its items and the ledger rows are
// written in one transaction. If that write fails the decrement is
// compensated, so stock and the ledger stay consistent either way.
func (s *OrderService) CreateOrder(ctx context.Context, actor Actor, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}
	if input.DiscountAmount < 0 {
		return nil, apperror.NewBadRequestError("Discount cannot be negative")
	}

	status := input.Status
	if status == "" {
		status = enum.OrderStatusCompleted
	}
	if status != enum.OrderStatusPending && status != enum.OrderStatusCompleted {
		return nil, apperror.NewBadRequestError("Order can only be placed as pending or completed")
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = enum.PaymentMethodCash
	}
	if !paymentMethod.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown payment method")
	}

	seen := make(map[uuid.UUID]bool, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		if seen[item.ProductID] {
			return nil, apperror.NewBadRequestError("Duplicate product in order items")
		}
		seen[item.ProductID] = true
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var totalAmount int64
	items := make([]entity.OrderItem, 0, len(input.Items))
	ledger := make([]entity.InventoryTransaction, 0, len(input.Items))
	stockDecrements := make(map[uuid.UUID]int, len(input.Items))

	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}

		lineTotal := product.SellingPrice * int64(item.Quantity)
		totalAmount += lineTotal

		items = append(items, entity.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.SellingPrice,
			TotalPrice:  lineTotal,
		})

		stockDecrements[product.ID] = item.Quantity
	}

	if input.DiscountAmount > totalAmount {
		return nil, apperror.NewBadRequestError("Discount cannot exceed order total")
	}

	code := utils.GenerateCode(utils.PrefixOrder)
	existingOrder, err := s.orderRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existingOrder != nil {
		return nil, apperror.NewConflictError("Order code already exists")
	}

	// Atomically decrement stock. If any product has insufficient
	// stock the whole batch rolls back and nothing was sold.
	failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if product, exists := productMap[id]; exists {
				failedNames = append(failedNames, product.Name)
			}
		}
		return nil, apperror.NewConflictError(fmt.Sprintf("Insufficient stock for: %v", failedNames))
	}

	order := &entity.Order{
		Code:           code,
		CustomerID:     input.CustomerID,
		CreatedBy:      actor.UserID,
		Status:         status,
		PaymentMethod:  paymentMethod,
		TotalAmount:    totalAmount,
		DiscountAmount: input.DiscountAmount,
		FinalAmount:    totalAmount - input.DiscountAmount,
		Notes:          input.Notes,
	}

	for _, item := range items {
		reason := fmt.Sprintf("Sold on order %s", order.Code)
		ledger = append(ledger, entity.InventoryTransaction{
			Code:        utils.GenerateCode(utils.PrefixStockOut),
			ProductID:   item.ProductID,
			Type:        enum.TransactionTypeOut,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalAmount: item.TotalPrice,
			Reason:      &reason,
			CreatedBy:   actor.UserID,
		})
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items, ledger); err != nil {
		// Stock was already decremented, restore it
		_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionCreate, "order", &order.ID,
		fmt.Sprintf("placed order %s (%d VND)", order.Code, order.FinalAmount))

	order.Items = items
	return order, nil
}

// Get returns one order with items and customer
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// List returns orders matching the filters
func (s *OrderService) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, *pagination.Pagination, error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	return orders, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total), nil
}

// UpdateStatus moves an order along the allowed status transitions.
// Cancelling restores stock and appends compensating ledger rows.
func (s *OrderService) UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, next enum.OrderStatus) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot change order status from %s to %s", order.Status, next))
	}

	if next == enum.OrderStatusCancelled {
		// Status flip, restock and reversal ledger rows commit
		// together, so a failed cancellation cannot inflate stock.
		increments := make(map[uuid.UUID]int, len(order.Items))
		ledger := make([]entity.InventoryTransaction, 0, len(order.Items))
		for _, item := range order.Items {
			increments[item.ProductID] += item.Quantity
			reason := fmt.Sprintf("Restocked from cancelled order %s", order.Code)
			ledger = append(ledger, entity.InventoryTransaction{
				Code:        utils.GenerateCode(utils.PrefixStockIn),
				ProductID:   item.ProductID,
				Type:        enum.TransactionTypeIn,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				TotalAmount: item.TotalPrice,
				Reason:      &reason,
				ReferenceID: &order.ID,
				CreatedBy:   actor.UserID,
			})
		}

		if err := s.orderRepo.CancelWithRestock(ctx, order.ID, increments, ledger); err != nil {
			return nil, err
		}
	} else {
		if err := s.orderRepo.UpdateStatus(ctx, id, next); err != nil {
			return nil, err
		}
	}
	order.Status = next

	s.activity.Log(ctx, actor, enum.ActivityActionUpdate, "order", &order.ID,
		fmt.Sprintf("order %s moved to %s", order.Code, next))

	return order, nil
}
