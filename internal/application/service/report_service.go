package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/repository"
	"github.com/hoanggia/woodshop-api/pkg/apperror"
	"github.com/hoanggia/woodshop-api/pkg/excel"
)

const (
	dailyBucketLayout   = "02/01/2006"
	monthlyBucketLayout = "01/2006"
)

// ReportGranularity selects daily or monthly revenue buckets
type ReportGranularity string

const (
	GranularityDaily   ReportGranularity = "daily"
	GranularityMonthly ReportGranularity = "monthly"
)

// ReportService aggregates completed orders into revenue reports.
// Aggregation is pure: the same orders always produce the same report.
type ReportService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	threshold   int
}

// NewReportService creates a new report service
func NewReportService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, lowStockThreshold int) *ReportService {
	return &ReportService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		threshold:   lowStockThreshold,
	}
}

// RevenueBucket is one time bucket of the revenue report
type RevenueBucket struct {
	Label      string `json:"label"`
	Revenue    int64  `json:"revenue"`
	OrderCount int    `json:"order_count"`
}

// ProductRank is one row of the product ranking
type ProductRank struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	QuantitySold int       `json:"quantity_sold"`
	Revenue      int64     `json:"revenue"`
	OrderCount   int       `json:"order_count"`
}

// RevenueReport is the aggregate over a reporting period
type RevenueReport struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	Granularity   string          `json:"granularity"`
	TotalRevenue  int64           `json:"total_revenue"`
	TotalOrders   int             `json:"total_orders"`
	AverageOrder  int64           `json:"average_order"`
	Buckets       []RevenueBucket `json:"buckets"`
	TopProducts   []ProductRank   `json:"top_products"`
}

// Revenue builds the revenue report for [from, to) at the given
// granularity. Buckets are sorted chronologically and only cover
// periods that had orders.
func (s *ReportService) Revenue(ctx context.Context, from, to time.Time, granularity ReportGranularity) (*RevenueReport, error) {
	if !from.Before(to) {
		return nil, apperror.NewBadRequestError("Report period is empty")
	}

	orders, err := s.orderRepo.ListCompletedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return BuildRevenueReport(orders, from, to, granularity), nil
}

// BuildRevenueReport aggregates completed orders into a report
func BuildRevenueReport(orders []entity.Order, from, to time.Time, granularity ReportGranularity) *RevenueReport {
	layout := dailyBucketLayout
	if granularity == GranularityMonthly {
		layout = monthlyBucketLayout
	}

	type bucketAgg struct {
		at      time.Time
		revenue int64
		orders  int
	}
	buckets := make(map[string]*bucketAgg)

	type productAgg struct {
		name     string
		quantity int
		revenue  int64
		orders   map[uuid.UUID]bool
	}
	products := make(map[uuid.UUID]*productAgg)

	var totalRevenue int64
	for _, order := range orders {
		label := order.CreatedAt.Format(layout)
		b := buckets[label]
		if b == nil {
			b = &bucketAgg{at: order.CreatedAt}
			buckets[label] = b
		}
		b.revenue += order.FinalAmount
		b.orders++
		totalRevenue += order.FinalAmount

		for _, item := range order.Items {
			p := products[item.ProductID]
			if p == nil {
				p = &productAgg{name: item.ProductName, orders: make(map[uuid.UUID]bool)}
				products[item.ProductID] = p
			}
			p.quantity += item.Quantity
			p.revenue += item.TotalPrice
			p.orders[order.ID] = true
		}
	}

	report := &RevenueReport{
		From:         from,
		To:           to,
		Granularity:  string(granularity),
		TotalRevenue: totalRevenue,
		TotalOrders:  len(orders),
	}
	if len(orders) > 0 {
		report.AverageOrder = totalRevenue / int64(len(orders))
	}

	report.Buckets = make([]RevenueBucket, 0, len(buckets))
	for label, b := range buckets {
		report.Buckets = append(report.Buckets, RevenueBucket{
			Label:      label,
			Revenue:    b.revenue,
			OrderCount: b.orders,
		})
	}
	bucketTimes := make(map[string]time.Time, len(buckets))
	for label, b := range buckets {
		bucketTimes[label] = b.at
	}
	sort.Slice(report.Buckets, func(i, j int) bool {
		return bucketTimes[report.Buckets[i].Label].Before(bucketTimes[report.Buckets[j].Label])
	})

	report.TopProducts = make([]ProductRank, 0, len(products))
	for id, p := range products {
		report.TopProducts = append(report.TopProducts, ProductRank{
			ProductID:    id,
			ProductName:  p.name,
			QuantitySold: p.quantity,
			Revenue:      p.revenue,
			OrderCount:   len(p.orders),
		})
	}
	sort.Slice(report.TopProducts, func(i, j int) bool {
		if report.TopProducts[i].Revenue != report.TopProducts[j].Revenue {
			return report.TopProducts[i].Revenue > report.TopProducts[j].Revenue
		}
		return report.TopProducts[i].ProductName < report.TopProducts[j].ProductName
	})
	if len(report.TopProducts) > 10 {
		report.TopProducts = report.TopProducts[:10]
	}

	return report
}

// Dashboard summarizes today's trading and stock alerts
type Dashboard struct {
	OrdersToday   int64            `json:"orders_today"`
	RevenueToday  int64            `json:"revenue_today"`
	WeeklySales   []RevenueBucket  `json:"weekly_sales"`
	LowStockCount int              `json:"low_stock_count"`
	LowStock      []entity.Product `json:"low_stock"`
}

// GetDashboard builds the landing page summary. One query covers the
// trailing 7 days; today's revenue is derived from the same set.
func (s *ReportService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	ordersToday, err := s.orderRepo.CountToday(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := startOfDay.AddDate(0, 0, -6)
	weekEnd := startOfDay.AddDate(0, 0, 1)

	week, err := s.orderRepo.ListCompletedBetween(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	var revenueToday int64
	for _, order := range week {
		if !order.CreatedAt.Before(startOfDay) {
			revenueToday += order.FinalAmount
		}
	}

	weekly := BuildRevenueReport(week, weekStart, weekEnd, GranularityDaily)

	lowStock, err := s.productRepo.GetLowStock(ctx, s.threshold)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		OrdersToday:   ordersToday,
		RevenueToday:  revenueToday,
		WeeklySales:   weekly.Buckets,
		LowStockCount: len(lowStock),
		LowStock:      lowStock,
	}, nil
}

// Export renders the revenue report as a spreadsheet with one sheet of
// revenue buckets and one of product rankings
func (s *ReportService) Export(ctx context.Context, from, to time.Time, granularity ReportGranularity) ([]byte, error) {
	report, err := s.Revenue(ctx, from, to, granularity)
	if err != nil {
		return nil, err
	}

	revenueRows := make([][]interface{}, 0, len(report.Buckets))
	for _, bucket := range report.Buckets {
		revenueRows = append(revenueRows, []interface{}{
			bucket.Label,
			bucket.OrderCount,
			bucket.Revenue,
		})
	}

	productRows := make([][]interface{}, 0, len(report.TopProducts))
	for _, rank := range report.TopProducts {
		productRows = append(productRows, []interface{}{
			rank.ProductName,
			rank.QuantitySold,
			rank.OrderCount,
			rank.Revenue,
		})
	}

	return excel.Build(
		excel.Sheet{
			Name:    "Revenue",
			Headers: []string{"Period", "Orders", "Revenue"},
			Widths:  []float64{16, 12, 18},
			Rows:    revenueRows,
		},
		excel.Sheet{
			Name:    "Top Products",
			Headers: []string{"Product", "Quantity Sold", "Orders", "Revenue"},
			Widths:  []float64{32, 16, 12, 18},
			Rows:    productRows,
		},
	)
}
