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

// ProductService handles product catalog operations
type ProductService struct {
	productRepo       repository.ProductRepository
	inventoryRepo     repository.InventoryTransactionRepository
	activity          *ActivityService
	lowStockThreshold int
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryTransactionRepository,
	activity *ActivityService,
	lowStockThreshold int,
) *ProductService {
	return &ProductService{
		productRepo:       productRepo,
		inventoryRepo:     inventoryRepo,
		activity:          activity,
		lowStockThreshold: lowStockThreshold,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name          string
	Category      string
	WoodType      string
	Quantity      int
	PurchasePrice int64
	SellingPrice  int64
	Location      *string
	Description   *string
	ImageURL      *string
}

// Create adds a product to the catalog with a server-issued code
func (s *ProductService) Create(ctx context.Context, actor Actor, input *CreateProductInput) (*entity.Product, error) {
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity cannot be negative")
	}
	if input.PurchasePrice < 0 || input.SellingPrice < 0 {
		return nil, apperror.NewBadRequestError("Prices cannot be negative")
	}

	code := utils.GenerateCode(utils.PrefixProduct)
	existing, err := s.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product code already exists")
	}

	product := &entity.Product{
		Code:          code,
		Name:          input.Name,
		Category:      input.Category,
		WoodType:      input.WoodType,
		Quantity:      input.Quantity,
		PurchasePrice: input.PurchasePrice,
		SellingPrice:  input.SellingPrice,
		Location:      input.Location,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionCreate, "product", &product.ID,
		fmt.Sprintf("created product %s (%s)", product.Name, product.Code))

	return product, nil
}

// UpdateProductInput represents the update product input. Nil fields
// are left unchanged; quantity is deliberately absent, stock moves
// only through orders and inventory transactions.
type UpdateProductInput struct {
	Name          *string
	Category      *string
	WoodType      *string
	PurchasePrice *int64
	SellingPrice  *int64
	Location      *string
	Description   *string
	ImageURL      *string
}

// Update modifies catalog fields of a product
func (s *ProductService) Update(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.WoodType != nil {
		product.WoodType = *input.WoodType
	}
	if input.PurchasePrice != nil {
		if *input.PurchasePrice < 0 {
			return nil, apperror.NewBadRequestError("Prices cannot be negative")
		}
		product.PurchasePrice = *input.PurchasePrice
	}
	if input.SellingPrice != nil {
		if *input.SellingPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices cannot be negative")
		}
		product.SellingPrice = *input.SellingPrice
	}
	if input.Location != nil {
		product.Location = input.Location
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionUpdate, "product", &product.ID,
		fmt.Sprintf("updated product %s", product.Code))

	return product, nil
}

// Get returns one product
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// List returns products matching the filters
func (s *ProductService) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, *pagination.Pagination, error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	return products, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total), nil
}

// GetLowStock returns products under the low stock threshold
func (s *ProductService) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx, s.lowStockThreshold)
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	// A product with ledger history stays on the books
	history, err := s.inventoryRepo.ListByProduct(ctx, id)
	if err != nil {
		return err
	}
	if len(history) > 0 {
		return apperror.NewConflictError("Product has inventory history and cannot be deleted")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionDelete, "product", &id,
		fmt.Sprintf("deleted product %s (%s)", product.Name, product.Code))

	return nil
}
