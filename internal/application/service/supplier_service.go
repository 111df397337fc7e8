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

// SupplierService handles supplier directory operations
type SupplierService struct {
	supplierRepo repository.SupplierRepository
	activity     *ActivityService
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository, activity *ActivityService) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		activity:     activity,
	}
}

// CreateSupplierInput represents the create supplier input
type CreateSupplierInput struct {
	CompanyName  string
	DirectorName *string
	Phone        *string
	Email        *string
	Address      *string
	Notes        *string
}

// Create adds a supplier with a server-issued code
func (s *SupplierService) Create(ctx context.Context, actor Actor, input *CreateSupplierInput) (*entity.Supplier, error) {
	code := utils.GenerateCode(utils.PrefixSupplier)
	existing, err := s.supplierRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Supplier code already exists")
	}

	supplier := &entity.Supplier{
		Code:         code,
		CompanyName:  input.CompanyName,
		DirectorName: input.DirectorName,
		Phone:        input.Phone,
		Email:        input.Email,
		Address:      input.Address,
		Notes:        input.Notes,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionCreate, "supplier", &supplier.ID,
		fmt.Sprintf("created supplier %s (%s)", supplier.CompanyName, supplier.Code))

	return supplier, nil
}

// UpdateSupplierInput represents the update supplier input
type UpdateSupplierInput struct {
	CompanyName  *string
	DirectorName *string
	Phone        *string
	Email        *string
	Address      *string
	Notes        *string
}

// Update modifies a supplier
func (s *SupplierService) Update(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.CompanyName != nil {
		supplier.CompanyName = *input.CompanyName
	}
	if input.DirectorName != nil {
		supplier.DirectorName = input.DirectorName
	}
	if input.Phone != nil {
		supplier.Phone = input.Phone
	}
	if input.Email != nil {
		supplier.Email = input.Email
	}
	if input.Address != nil {
		supplier.Address = input.Address
	}
	if input.Notes != nil {
		supplier.Notes = input.Notes
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionUpdate, "supplier", &supplier.ID,
		fmt.Sprintf("updated supplier %s", supplier.Code))

	return supplier, nil
}

// Get returns one supplier
func (s *SupplierService) Get(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// List returns suppliers matching the search
func (s *SupplierService) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, *pagination.Pagination, error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}

	suppliers, total, err := s.supplierRepo.List(ctx, params, search)
	if err != nil {
		return nil, nil, err
	}

	return suppliers, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}

	if err := s.supplierRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionDelete, "supplier", &id,
		fmt.Sprintf("deleted supplier %s (%s)", supplier.CompanyName, supplier.Code))

	return nil
}
