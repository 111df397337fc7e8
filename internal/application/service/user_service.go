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
)

// UserService handles account administration
type UserService struct {
	userRepo     repository.UserRepository
	userRoleRepo repository.UserRoleRepository
	activity     *ActivityService
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repository.UserRepository,
	userRoleRepo repository.UserRoleRepository,
	activity *ActivityService,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		userRoleRepo: userRoleRepo,
		activity:     activity,
	}
}

// List returns user accounts with their roles
func (s *UserService) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.User, *pagination.Pagination, error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}

	users, total, err := s.userRepo.List(ctx, params, search)
	if err != nil {
		return nil, nil, err
	}

	return users, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// Get returns one user account with role
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// AssignRole sets the target user's role, replacing any existing one.
// An owner cannot demote themselves, which would leave the system
// without anyone able to manage roles.
func (s *UserService) AssignRole(ctx context.Context, actor Actor, targetUserID uuid.UUID, role enum.Role) (*entity.UserRole, error) {
	if !role.IsAssigned() {
		return nil, apperror.NewBadRequestError("Invalid role")
	}

	if actor.UserID == targetUserID && role != enum.RoleOwner {
		return nil, apperror.NewBadRequestError("Cannot change your own role")
	}

	user, err := s.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	row, err := s.userRoleRepo.Upsert(ctx, targetUserID, role)
	if err != nil {
		return nil, err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionUpdate, "user_role", &targetUserID,
		fmt.Sprintf("assigned role %s to %s", role, user.Email))

	return row, nil
}

// Delete removes a user account. Owners cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if actor.UserID == id {
		return apperror.NewBadRequestError("Cannot delete your own account")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionDelete, "user", &id,
		fmt.Sprintf("deleted account %s", user.Email))

	return nil
}
