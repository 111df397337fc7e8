package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"github.com/hoanggia/woodshop-api/pkg/apperror"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.User, int64, error) {
	args := m.Called(ctx, params, search)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.User), args.Get(1).(int64), args.Error(2)
}

// MockUserRoleRepository is a mock implementation of repository.UserRoleRepository
type MockUserRoleRepository struct {
	mock.Mock
}

func (m *MockUserRoleRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserRole, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserRole), args.Error(1)
}

func (m *MockUserRoleRepository) Upsert(ctx context.Context, userID uuid.UUID, role enum.Role) (*entity.UserRole, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserRole), args.Error(1)
}

func newUserServiceForTest() (*UserService, *MockUserRepository, *MockUserRoleRepository, *MockActivityLogRepository) {
	userRepo := new(MockUserRepository)
	userRoleRepo := new(MockUserRoleRepository)
	activityRepo := new(MockActivityLogRepository)

	svc := NewUserService(userRepo, userRoleRepo, NewActivityService(activityRepo))
	return svc, userRepo, userRoleRepo, activityRepo
}

func TestAssignRole_ReplacesExistingRole(t *testing.T) {
	svc, userRepo, userRoleRepo, activityRepo := newUserServiceForTest()

	actor := Actor{UserID: uuid.New(), Email: "owner@woodshop.vn", Role: enum.RoleOwner}
	target := &entity.User{ID: uuid.New(), Email: "staff@woodshop.vn"}

	userRepo.On("GetByID", mock.Anything, target.ID).Return(target, nil)
	userRoleRepo.On("Upsert", mock.Anything, target.ID, enum.RoleManager).
		Return(&entity.UserRole{UserID: target.ID, Role: enum.RoleManager}, nil)
	activityRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	row, err := svc.AssignRole(context.Background(), actor, target.ID, enum.RoleManager)

	require.NoError(t, err)
	assert.Equal(t, enum.RoleManager, row.Role)
	userRoleRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
}

func TestAssignRole_RejectsUnassignedRole(t *testing.T) {
	svc, _, userRoleRepo, _ := newUserServiceForTest()

	actor := Actor{UserID: uuid.New(), Role: enum.RoleOwner}

	row, err := svc.AssignRole(context.Background(), actor, uuid.New(), enum.RoleUnassigned)

	require.Error(t, err)
	assert.Nil(t, row)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	userRoleRepo.AssertNotCalled(t, "Upsert")
}

func TestAssignRole_OwnerCannotDemoteSelf(t *testing.T) {
	svc, _, userRoleRepo, _ := newUserServiceForTest()

	actor := Actor{UserID: uuid.New(), Email: "owner@woodshop.vn", Role: enum.RoleOwner}

	row, err := svc.AssignRole(context.Background(), actor, actor.UserID, enum.RoleStaff)

	require.Error(t, err)
	assert.Nil(t, row)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	userRoleRepo.AssertNotCalled(t, "Upsert")
}

func TestUserDelete_RejectsSelf(t *testing.T) {
	svc, userRepo, _, _ := newUserServiceForTest()

	actor := Actor{UserID: uuid.New(), Role: enum.RoleOwner}

	err := svc.Delete(context.Background(), actor, actor.UserID)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	userRepo.AssertNotCalled(t, "Delete")
}

func TestUserDelete_RemovesAccount(t *testing.T) {
	svc, userRepo, _, activityRepo := newUserServiceForTest()

	actor := Actor{UserID: uuid.New(), Email: "owner@woodshop.vn", Role: enum.RoleOwner}
	target := &entity.User{ID: uuid.New(), Email: "former@woodshop.vn"}

	userRepo.On("GetByID", mock.Anything, target.ID).Return(target, nil)
	userRepo.On("Delete", mock.Anything, target.ID).Return(nil)
	activityRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	err := svc.Delete(context.Background(), actor, target.ID)

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestAssignRole_UnknownUser(t *testing.T) {
	svc, userRepo, userRoleRepo, _ := newUserServiceForTest()

	actor := Actor{UserID: uuid.New(), Role: enum.RoleOwner}
	targetID := uuid.New()
	userRepo.On("GetByID", mock.Anything, targetID).Return(nil, nil)

	row, err := svc.AssignRole(context.Background(), actor, targetID, enum.RoleStaff)

	require.Error(t, err)
	assert.Nil(t, row)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	userRoleRepo.AssertNotCalled(t, "Upsert")
}
