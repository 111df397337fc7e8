package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportOrder(id uuid.UUID, createdAt time.Time, finalAmount int64, items ...entity.OrderItem) entity.Order {
	return entity.Order{
		ID:          id,
		FinalAmount: finalAmount,
		Items:       items,
		CreatedAt:   createdAt,
	}
}

func TestBuildRevenueReport_DailyBuckets(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	chairID := uuid.New()
	tableID := uuid.New()

	firstOrder := uuid.New()
	secondOrder := uuid.New()
	thirdOrder := uuid.New()

	orders := []entity.Order{
		reportOrder(firstOrder, time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC), 100,
			entity.OrderItem{ProductID: chairID, ProductName: "Oak Chair", Quantity: 1, TotalPrice: 100}),
		reportOrder(secondOrder, time.Date(2025, 3, 5, 15, 0, 0, 0, time.UTC), 200,
			entity.OrderItem{ProductID: chairID, ProductName: "Oak Chair", Quantity: 2, TotalPrice: 200}),
		reportOrder(thirdOrder, time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC), 300,
			entity.OrderItem{ProductID: tableID, ProductName: "Oak Table", Quantity: 1, TotalPrice: 300}),
	}

	report := BuildRevenueReport(orders, from, to, GranularityDaily)

	assert.Equal(t, int64(600), report.TotalRevenue)
	assert.Equal(t, 3, report.TotalOrders)
	assert.Equal(t, int64(200), report.AverageOrder)

	require.Len(t, report.Buckets, 2)
	assert.Equal(t, "05/03/2025", report.Buckets[0].Label)
	assert.Equal(t, int64(300), report.Buckets[0].Revenue)
	assert.Equal(t, 2, report.Buckets[0].OrderCount)
	assert.Equal(t, "12/03/2025", report.Buckets[1].Label)
	assert.Equal(t, int64(300), report.Buckets[1].Revenue)

	require.Len(t, report.TopProducts, 2)
	// Chair and table tie on revenue, name breaks the tie
	assert.Equal(t, "Oak Chair", report.TopProducts[0].ProductName)
	assert.Equal(t, 3, report.TopProducts[0].QuantitySold)
	assert.Equal(t, 2, report.TopProducts[0].OrderCount)
	assert.Equal(t, "Oak Table", report.TopProducts[1].ProductName)
	assert.Equal(t, 1, report.TopProducts[1].OrderCount)
}

func TestBuildRevenueReport_MonthlyBuckets(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	orders := []entity.Order{
		reportOrder(uuid.New(), time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), 500),
		reportOrder(uuid.New(), time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), 400),
		reportOrder(uuid.New(), time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC), 100),
	}

	report := BuildRevenueReport(orders, from, to, GranularityMonthly)

	require.Len(t, report.Buckets, 2)
	assert.Equal(t, "01/2025", report.Buckets[0].Label)
	assert.Equal(t, int64(400), report.Buckets[0].Revenue)
	assert.Equal(t, "02/2025", report.Buckets[1].Label)
	assert.Equal(t, int64(600), report.Buckets[1].Revenue)
	assert.Equal(t, 2, report.Buckets[1].OrderCount)
}

func TestBuildRevenueReport_Empty(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	report := BuildRevenueReport(nil, from, from.AddDate(0, 1, 0), GranularityDaily)

	assert.Equal(t, int64(0), report.TotalRevenue)
	assert.Equal(t, 0, report.TotalOrders)
	assert.Equal(t, int64(0), report.AverageOrder)
	assert.Empty(t, report.Buckets)
	assert.Empty(t, report.TopProducts)
}

func TestBuildRevenueReport_TopProductsTruncatedToTen(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	items := make([]entity.OrderItem, 0, 15)
	for i := 0; i < 15; i++ {
		items = append(items, entity.OrderItem{
			ProductID:   uuid.New(),
			ProductName: fmt.Sprintf("Product %02d", i),
			Quantity:    1,
			TotalPrice:  int64(1000 - i),
		})
	}
	orders := []entity.Order{reportOrder(uuid.New(), from, 15000, items...)}

	report := BuildRevenueReport(orders, from, from.AddDate(0, 0, 1), GranularityDaily)

	require.Len(t, report.TopProducts, 10)
	assert.Equal(t, "Product 00", report.TopProducts[0].ProductName)
	assert.Equal(t, "Product 09", report.TopProducts[9].ProductName)
}

func TestBuildRevenueReport_Deterministic(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	orders := []entity.Order{
		reportOrder(uuid.New(), from.AddDate(0, 0, 3), 250,
			entity.OrderItem{ProductID: uuid.New(), ProductName: "Oak Chair", Quantity: 1, TotalPrice: 250}),
		reportOrder(uuid.New(), from.AddDate(0, 0, 8), 750,
			entity.OrderItem{ProductID: uuid.New(), ProductName: "Oak Table", Quantity: 1, TotalPrice: 750}),
	}

	first := BuildRevenueReport(orders, from, to, GranularityDaily)
	second := BuildRevenueReport(orders, from, to, GranularityDaily)
	assert.Equal(t, first, second)
}

func TestRevenue_RejectsEmptyPeriod(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	svc := NewReportService(orderRepo, productRepo, 10)

	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Revenue(context.Background(), at, at, GranularityDaily)
	require.Error(t, err)

	_, err = svc.Revenue(context.Background(), at, at.AddDate(0, 0, -1), GranularityDaily)
	require.Error(t, err)
	orderRepo.AssertNotCalled(t, "ListCompletedBetween")
}
