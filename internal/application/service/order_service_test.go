package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"github.com/hoanggia/woodshop-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderServiceForTest() (*OrderService, *MockOrderRepository, *MockProductRepository, *MockCustomerRepository, *MockActivityLogRepository) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	customerRepo := new(MockCustomerRepository)
	activityRepo := new(MockActivityLogRepository)

	svc := NewOrderService(orderRepo, productRepo, customerRepo, NewActivityService(activityRepo))
	return svc, orderRepo, productRepo, customerRepo, activityRepo
}

func testActor() Actor {
	return Actor{UserID: uuid.New(), Email: "staff@woodshop.vn", Role: enum.RoleStaff}
}

func TestCreateOrder_Success(t *testing.T) {
	svc, orderRepo, productRepo, _, activityRepo := newOrderServiceForTest()
	actor := testActor()

	chair := entity.Product{ID: uuid.New(), Name: "Oak Chair", SellingPrice: 1_500_000, Quantity: 10}
	table := entity.Product{ID: uuid.New(), Name: "Oak Table", SellingPrice: 4_000_000, Quantity: 3}

	productRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.Product{chair, table}, nil)
	orderRepo.On("GetByCode", mock.Anything, mock.AnythingOfType("string")).Return(nil, nil)
	productRepo.On("AtomicDecrementBatch", mock.Anything, map[uuid.UUID]int{chair.ID: 2, table.ID: 1}).
		Return([]uuid.UUID{}, nil)

	var capturedItems []entity.OrderItem
	var capturedLedger []entity.InventoryTransaction
	orderRepo.On("CreateWithItems", mock.Anything, mock.AnythingOfType("*entity.Order"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedItems = args.Get(2).([]entity.OrderItem)
			capturedLedger = args.Get(3).([]entity.InventoryTransaction)
		}).
		Return(nil)
	activityRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	order, err := svc.CreateOrder(context.Background(), actor, &CreateOrderInput{
		DiscountAmount: 500_000,
		Items: []OrderItemInput{
			{ProductID: chair.ID, Quantity: 2},
			{ProductID: table.ID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, order)

	assert.True(t, strings.HasPrefix(order.Code, "DH-"))
	assert.Equal(t, enum.OrderStatusCompleted, order.Status)
	assert.Equal(t, enum.PaymentMethodCash, order.PaymentMethod)
	assert.Equal(t, int64(7_000_000), order.TotalAmount)
	assert.Equal(t, int64(500_000), order.DiscountAmount)
	assert.Equal(t, int64(6_500_000), order.FinalAmount)
	assert.Equal(t, actor.UserID, order.CreatedBy)

	require.Len(t, capturedItems, 2)
	assert.Equal(t, "Oak Chair", capturedItems[0].ProductName)
	assert.Equal(t, int64(1_500_000), capturedItems[0].UnitPrice)
	assert.Equal(t, int64(3_000_000), capturedItems[0].TotalPrice)

	require.Len(t, capturedLedger, 2)
	for _, txn := range capturedLedger {
		assert.Equal(t, enum.TransactionTypeOut, txn.Type)
		assert.True(t, strings.HasPrefix(txn.Code, "XT-"))
	}

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	productRepo.AssertNotCalled(t, "AtomicIncrementBatch")
}

func TestCreateOrder_PendingReservesStock(t *testing.T) {
	svc, orderRepo, productRepo, _, activityRepo := newOrderServiceForTest()

	chair := entity.Product{ID: uuid.New(), Name: "Oak Chair", SellingPrice: 1_500_000, Quantity: 10}

	productRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.Product{chair}, nil)
	orderRepo.On("GetByCode", mock.Anything, mock.AnythingOfType("string")).Return(nil, nil)
	productRepo.On("AtomicDecrementBatch", mock.Anything, map[uuid.UUID]int{chair.ID: 1}).
		Return([]uuid.UUID{}, nil)
	orderRepo.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	activityRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	order, err := svc.CreateOrder(context.Background(), testActor(), &CreateOrderInput{
		Status:        enum.OrderStatusPending,
		PaymentMethod: enum.PaymentMethodBankTransfer,
		Items:         []OrderItemInput{{ProductID: chair.ID, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPending, order.Status)
	assert.Equal(t, enum.PaymentMethodBankTransfer, order.PaymentMethod)
	productRepo.AssertExpectations(t)
}

func TestCreateOrder_RejectsUnplaceableStatus(t *testing.T) {
	svc, _, productRepo, _, _ := newOrderServiceForTest()

	for _, status := range []enum.OrderStatus{enum.OrderStatusProcessing, enum.OrderStatusCancelled} {
		order, err := svc.CreateOrder(context.Background(), testActor(), &CreateOrderInput{
			Status: status,
			Items:  []OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
		})

		require.Error(t, err)
		assert.Nil(t, order)
		assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	}

	productRepo.AssertNotCalled(t, "AtomicDecrementBatch")
}

func TestCreateOrder_RejectsUnknownPaymentMethod(t *testing.T) {
	svc, _, productRepo, _, _ := newOrderServiceForTest()

	order, err := svc.CreateOrder(context.Background(), testActor(), &CreateOrderInput{
		PaymentMethod: enum.PaymentMethod("cheque"),
		Items:         []OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	productRepo.AssertNotCalled(t, "AtomicDecrementBatch")
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	svc, orderRepo, productRepo, _, _ := newOrderServiceForTest()

	chair := entity.Product{ID: uuid.New(), Name: "Oak Chair", SellingPrice: 1_500_000, Quantity: 1}

	productRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.Product{chair}, nil)
	orderRepo.On("GetByCode", mock.Anything, mock.AnythingOfType("string")).Return(nil, nil)
	productRepo.On("AtomicDecrementBatch", mock.Anything, mock.Anything).
		Return([]uuid.UUID{chair.ID}, nil)

	order, err := svc.CreateOrder(context.Background(), testActor(), &CreateOrderInput{
		Items: []OrderItemInput{{ProductID: chair.ID, Quantity: 5}},
	})

	require.Error(t, err)
	assert.Nil(t, order)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusConflict, appErr.Code)
	assert.Contains(t, appErr.Message, "Oak Chair")

	orderRepo.AssertNotCalled(t, "CreateWithItems")
	productRepo.AssertNotCalled(t, "AtomicIncrementBatch")
}

func TestCreateOrder_CompensatesWhenWriteFails(t *testing.T) {
	svc, orderRepo, productRepo, _, _ := newOrderServiceForTest()

	chair := entity.Product{ID: uuid.New(), Name: "Oak Chair", SellingPrice: 1_500_000, Quantity: 10}
	decrements := map[uuid.UUID]int{chair.ID: 2}

	productRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.Product{chair}, nil)
	orderRepo.On("GetByCode", mock.Anything, mock.AnythingOfType("string")).Return(nil, nil)
	productRepo.On("AtomicDecrementBatch", mock.Anything, decrements).Return([]uuid.UUID{}, nil)
	orderRepo.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("database write error"))
	// The decrement must be undone when the order write fails
	productRepo.On("AtomicIncrementBatch", mock.Anything, decrements).Return(nil)

	order, err := svc.CreateOrder(context.Background(), testActor(), &CreateOrderInput{
		Items: []OrderItemInput{{ProductID: chair.ID, Quantity: 2}},
	})

	require.Error(t, err)
	assert.Nil(t, order)
	productRepo.AssertExpectations(t)
}

func TestCreateOrder_RejectsInvalidInput(t *testing.T) {
	svc, _, productRepo, _, _ := newOrderServiceForTest()
	productID := uuid.New()

	tests := []struct {
		name  string
		input *CreateOrderInput
	}{
		{"no items", &CreateOrderInput{}},
		{"zero quantity", &CreateOrderInput{
			Items: []OrderItemInput{{ProductID: productID, Quantity: 0}},
		}},
		{"negative discount", &CreateOrderInput{
			DiscountAmount: -1,
			Items:          []OrderItemInput{{ProductID: productID, Quantity: 1}},
		}},
		{"duplicate product", &CreateOrderInput{
			Items: []OrderItemInput{
				{ProductID: productID, Quantity: 1},
				{ProductID: productID, Quantity: 2},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := svc.CreateOrder(context.Background(), testActor(), tt.input)
			require.Error(t, err)
			assert.Nil(t, order)

			appErr := apperror.GetAppError(err)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
		})
	}

	productRepo.AssertNotCalled(t, "AtomicDecrementBatch")
}

func TestCreateOrder_DiscountCannotExceedTotal(t *testing.T) {
	svc, _, productRepo, _, _ := newOrderServiceForTest()

	chair := entity.Product{ID: uuid.New(), Name: "Oak Chair", SellingPrice: 1_000_000, Quantity: 10}
	productRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.Product{chair}, nil)

	order, err := svc.CreateOrder(context.Background(), testActor(), &CreateOrderInput{
		DiscountAmount: 2_000_000,
		Items:          []OrderItemInput{{ProductID: chair.ID, Quantity: 1}},
	})

	require.Error(t, err)
	assert.Nil(t, order)
	productRepo.AssertNotCalled(t, "AtomicDecrementBatch")
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	svc, _, _, customerRepo, _ := newOrderServiceForTest()

	customerID := uuid.New()
	customerRepo.On("GetByID", mock.Anything, customerID).Return(nil, nil)

	order, err := svc.CreateOrder(context.Background(), testActor(), &CreateOrderInput{
		CustomerID: &customerID,
		Items:      []OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})

	require.Error(t, err)
	assert.Nil(t, order)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestUpdateStatus_CancelRestocks(t *testing.T) {
	svc, orderRepo, productRepo, _, activityRepo := newOrderServiceForTest()
	actor := testActor()

	productID := uuid.New()
	order := &entity.Order{
		ID:     uuid.New(),
		Code:   "DH-ABCD1234",
		Status: enum.OrderStatusPending,
		Items: []entity.OrderItem{
			{ProductID: productID, ProductName: "Oak Chair", Quantity: 2, UnitPrice: 1_500_000, TotalPrice: 3_000_000},
		},
	}

	orderRepo.On("GetByID", mock.Anything, order.ID).Return(order, nil)

	var capturedLedger []entity.InventoryTransaction
	orderRepo.On("CancelWithRestock", mock.Anything, order.ID, map[uuid.UUID]int{productID: 2}, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedLedger = args.Get(3).([]entity.InventoryTransaction)
		}).
		Return(nil)
	activityRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	updated, err := svc.UpdateStatus(context.Background(), actor, order.ID, enum.OrderStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCancelled, updated.Status)

	require.Len(t, capturedLedger, 1)
	assert.Equal(t, enum.TransactionTypeIn, capturedLedger[0].Type)
	assert.Equal(t, 2, capturedLedger[0].Quantity)
	require.NotNil(t, capturedLedger[0].ReferenceID)
	assert.Equal(t, order.ID, *capturedLedger[0].ReferenceID)
	assert.True(t, strings.HasPrefix(capturedLedger[0].Code, "IN-"))

	// Restock rides inside CancelWithRestock, never as a separate write
	orderRepo.AssertNotCalled(t, "UpdateStatus")
	productRepo.AssertNotCalled(t, "AtomicIncrementBatch")
	orderRepo.AssertExpectations(t)
}

func TestUpdateStatus_CancelFailureChangesNothing(t *testing.T) {
	svc, orderRepo, productRepo, _, activityRepo := newOrderServiceForTest()

	order := &entity.Order{
		ID:     uuid.New(),
		Code:   "DH-ABCD1234",
		Status: enum.OrderStatusProcessing,
		Items: []entity.OrderItem{
			{ProductID: uuid.New(), ProductName: "Oak Chair", Quantity: 1, UnitPrice: 1_500_000, TotalPrice: 1_500_000},
		},
	}

	orderRepo.On("GetByID", mock.Anything, order.ID).Return(order, nil)
	orderRepo.On("CancelWithRestock", mock.Anything, order.ID, mock.Anything, mock.Anything).
		Return(errors.New("database write error"))

	updated, err := svc.UpdateStatus(context.Background(), testActor(), order.ID, enum.OrderStatusCancelled)

	require.Error(t, err)
	assert.Nil(t, updated)

	productRepo.AssertNotCalled(t, "AtomicIncrementBatch")
	activityRepo.AssertNotCalled(t, "Create")
}

func TestUpdateStatus_PendingCompletes(t *testing.T) {
	svc, orderRepo, _, _, activityRepo := newOrderServiceForTest()

	order := &entity.Order{ID: uuid.New(), Code: "DH-ABCD1234", Status: enum.OrderStatusPending}
	orderRepo.On("GetByID", mock.Anything, order.ID).Return(order, nil)
	orderRepo.On("UpdateStatus", mock.Anything, order.ID, enum.OrderStatusCompleted).Return(nil)
	activityRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	updated, err := svc.UpdateStatus(context.Background(), testActor(), order.ID, enum.OrderStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCompleted, updated.Status)
	orderRepo.AssertNotCalled(t, "CancelWithRestock")
}

func TestUpdateStatus_CompletedIsTerminal(t *testing.T) {
	svc, orderRepo, productRepo, _, _ := newOrderServiceForTest()

	order := &entity.Order{ID: uuid.New(), Code: "DH-ABCD1234", Status: enum.OrderStatusCompleted}
	orderRepo.On("GetByID", mock.Anything, order.ID).Return(order, nil)

	updated, err := svc.UpdateStatus(context.Background(), testActor(), order.ID, enum.OrderStatusCancelled)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)

	orderRepo.AssertNotCalled(t, "CancelWithRestock")
	orderRepo.AssertNotCalled(t, "UpdateStatus")
	productRepo.AssertNotCalled(t, "AtomicIncrementBatch")
}

func TestUpdateStatus_RejectsInvalidTransition(t *testing.T) {
	svc, orderRepo, productRepo, _, _ := newOrderServiceForTest()

	order := &entity.Order{ID: uuid.New(), Code: "DH-ABCD1234", Status: enum.OrderStatusCancelled}
	orderRepo.On("GetByID", mock.Anything, order.ID).Return(order, nil)

	updated, err := svc.UpdateStatus(context.Background(), testActor(), order.ID, enum.OrderStatusCompleted)

	require.Error(t, err)
	assert.Nil(t, updated)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusConflict, appErr.Code)

	orderRepo.AssertNotCalled(t, "UpdateStatus")
	productRepo.AssertNotCalled(t, "AtomicIncrementBatch")
}
