package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"github.com/hoanggia/woodshop-api/pkg/apperror"
	"github.com/hoanggia/woodshop-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest() (*AuthService, *MockUserRepository, *utils.JWTManager) {
	userRepo := new(MockUserRepository)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(userRepo, jwtManager), userRepo, jwtManager
}

func TestLogin_Success(t *testing.T) {
	svc, userRepo, jwtManager := newAuthServiceForTest()

	hashed, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	user := &entity.User{
		ID:       uuid.New(),
		Email:    "staff@woodshop.vn",
		Password: hashed,
		UserRole: &entity.UserRole{Role: enum.RoleStaff},
	}
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	out, err := svc.Login(context.Background(), &LoginInput{
		Email:    user.Email,
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)

	claims, err := jwtManager.ValidateAccessToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "staff", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo, _ := newAuthServiceForTest()

	hashed, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Email: "staff@woodshop.vn", Password: hashed}
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	out, err := svc.Login(context.Background(), &LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.Equal(t, http.StatusUnauthorized, apperror.GetAppError(err).Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, userRepo, _ := newAuthServiceForTest()

	userRepo.On("GetByEmail", mock.Anything, "nobody@woodshop.vn").Return(nil, nil)

	out, err := svc.Login(context.Background(), &LoginInput{
		Email:    "nobody@woodshop.vn",
		Password: "anything",
	})

	require.Error(t, err)
	assert.Nil(t, out)
	// Same error as a wrong password, no account enumeration
	assert.Equal(t, http.StatusUnauthorized, apperror.GetAppError(err).Code)
}

func TestRegister_NewAccountHasNoRole(t *testing.T) {
	svc, userRepo, _ := newAuthServiceForTest()

	userRepo.On("GetByEmail", mock.Anything, "new@woodshop.vn").Return(nil, nil)

	var created *entity.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil)

	user, err := svc.Register(context.Background(), &RegisterInput{
		FullName: "Nguyen Van An",
		Email:    "new@woodshop.vn",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, enum.RoleUnassigned, user.Role())

	require.NotNil(t, created)
	assert.NotEqual(t, "secret-password", created.Password)
	assert.True(t, utils.CheckPasswordHash("secret-password", created.Password))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, userRepo, _ := newAuthServiceForTest()

	existing := &entity.User{ID: uuid.New(), Email: "taken@woodshop.vn"}
	userRepo.On("GetByEmail", mock.Anything, existing.Email).Return(existing, nil)

	user, err := svc.Register(context.Background(), &RegisterInput{
		FullName: "Nguyen Van An",
		Email:    existing.Email,
		Password: "secret-password",
	})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
	userRepo.AssertNotCalled(t, "Create")
}

func TestRefreshToken_Invalid(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	out, err := svc.RefreshToken(context.Background(), "not-a-token")

	require.Error(t, err)
	assert.Nil(t, out)
	assert.Equal(t, http.StatusUnauthorized, apperror.GetAppError(err).Code)
}
