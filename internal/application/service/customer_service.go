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

// CustomerService handles customer directory operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	activity     *ActivityService
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, activity *ActivityService) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		activity:     activity,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	FullName     string
	Phone        string
	Email        *string
	Address      *string
	CustomerType enum.CustomerType
	Notes        *string
}

// Create adds a customer with a server-issued code. Phone numbers are
// unique so walk-in customers are not registered twice.
func (s *CustomerService) Create(ctx context.Context, actor Actor, input *CreateCustomerInput) (*entity.Customer, error) {
	existing, err := s.customerRepo.GetByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A customer with this phone number already exists")
	}

	customerType := input.CustomerType
	if customerType == "" {
		customerType = enum.CustomerTypeRetail
	}

	code := utils.GenerateCode(utils.PrefixCustomer)
	if taken, err := s.customerRepo.GetByCode(ctx, code); err != nil {
		return nil, err
	} else if taken != nil {
		return nil, apperror.NewConflictError("Customer code already exists")
	}

	customer := &entity.Customer{
		Code:         code,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Email:        input.Email,
		Address:      input.Address,
		CustomerType: customerType,
		Notes:        input.Notes,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionCreate, "customer", &customer.ID,
		fmt.Sprintf("created customer %s (%s)", customer.FullName, customer.Code))

	return customer, nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	FullName     *string
	Phone        *string
	Email        *string
	Address      *string
	CustomerType *enum.CustomerType
	Notes        *string
}

// Update modifies a customer
func (s *CustomerService) Update(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Phone != nil && *input.Phone != customer.Phone {
		existing, err := s.customerRepo.GetByPhone(ctx, *input.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A customer with this phone number already exists")
		}
		customer.Phone = *input.Phone
	}

	if input.FullName != nil {
		customer.FullName = *input.FullName
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.CustomerType != nil {
		customer.CustomerType = *input.CustomerType
	}
	if input.Notes != nil {
		customer.Notes = input.Notes
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionUpdate, "customer", &customer.ID,
		fmt.Sprintf("updated customer %s", customer.Code))

	return customer, nil
}

// Get returns one customer with lifetime spend filled in
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	total, err := s.customerRepo.TotalSpent(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.TotalSpent = total

	return customer, nil
}

// List returns customers with lifetime spend filled in per row
func (s *CustomerService) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, *pagination.Pagination, error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}

	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]uuid.UUID, len(customers))
	for i := range customers {
		ids[i] = customers[i].ID
	}

	totals, err := s.customerRepo.TotalSpentBatch(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	for i := range customers {
		customers[i].TotalSpent = totals[customers[i].ID]
	}

	return customers, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionDelete, "customer", &id,
		fmt.Sprintf("deleted customer %s (%s)", customer.FullName, customer.Code))

	return nil
}
