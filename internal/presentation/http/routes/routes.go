package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoanggia/woodshop-api/internal/config"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	domainRepo "github.com/hoanggia/woodshop-api/internal/domain/repository"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/handler"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/middleware"
	"github.com/hoanggia/woodshop-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Product    *handler.ProductHandler
	Supplier   *handler.SupplierHandler
	Customer   *handler.CustomerHandler
	Employee   *handler.EmployeeHandler
	Order      *handler.OrderHandler
	Inventory  *handler.InventoryHandler
	Attendance *handler.AttendanceHandler
	Report     *handler.ReportHandler
	Activity   *handler.ActivityHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewKeyedRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	anyRole := middleware.RequireRole(enum.RoleOwner, enum.RoleManager, enum.RoleStaff)
	managerUp := middleware.RequireRole(enum.RoleOwner, enum.RoleManager)
	ownerOnly := middleware.RequireRole(enum.RoleOwner)

	// Profile
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	// Account administration (owner only)
	users := protected.Group("/users", ownerOnly)
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/role", h.User.AssignRole)
		users.DELETE("/:id", h.User.Delete)
	}

	// Products: everyone sells, managers maintain the catalog
	products := protected.Group("/products", anyRole)
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.POST("", managerUp, h.Product.Create)
		products.PUT("/:id", managerUp, h.Product.Update)
		products.DELETE("/:id", managerUp, h.Product.Delete)
	}

	// Suppliers (manager and up)
	suppliers := protected.Group("/suppliers", managerUp)
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.POST("", h.Supplier.Create)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}

	// Customers: staff register walk-ins, managers curate
	customers := protected.Group("/customers", anyRole)
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.POST("", h.Customer.Create)
		customers.PUT("/:id", managerUp, h.Customer.Update)
		customers.DELETE("/:id", managerUp, h.Customer.Delete)
	}

	// Employees (manager and up)
	employees := protected.Group("/employees", managerUp)
	{
		employees.GET("", h.Employee.List)
		employees.GET("/export", h.Employee.Export)
		employees.GET("/:id", h.Employee.Get)
		employees.POST("", h.Employee.Create)
		employees.PUT("/:id", h.Employee.Update)
		employees.DELETE("/:id", h.Employee.Delete)
	}

	// Orders: placement requires an idempotency key so a retried
	// request cannot sell the same stock twice
	orders := protected.Group("/orders", anyRole)
	{
		orders.POST("", middleware.IdempotencyRequired(deps.IdempotencyRepo), h.Order.Create)
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.PATCH("/:id/status", managerUp, h.Order.UpdateStatus)
	}

	// Inventory ledger (manager and up for movements, any role reads)
	inventory := protected.Group("/inventory", anyRole)
	{
		inventory.GET("", h.Inventory.List)
		inventory.GET("/products/:id", h.Inventory.History)
		inventory.POST("/in", managerUp, h.Inventory.StockIn)
		inventory.POST("/out", managerUp, h.Inventory.StockOut)
	}

	// Attendance: staff record their day, payroll is manager and up
	attendance := protected.Group("/attendance", anyRole)
	{
		attendance.POST("/check-in", h.Attendance.CheckIn)
		attendance.POST("/check-out", h.Attendance.CheckOut)
		attendance.GET("/today", h.Attendance.Today)
		attendance.GET("", h.Attendance.List)
		attendance.GET("/summary", managerUp, h.Attendance.MonthlySummary)
		attendance.GET("/export", managerUp, h.Attendance.Export)
	}

	// Reports (manager and up)
	reports := protected.Group("/reports", managerUp)
	{
		reports.GET("/dashboard", h.Report.Dashboard)
		reports.GET("/revenue", h.Report.Revenue)
		reports.GET("/export", h.Report.Export)
	}

	// Audit trail (owner only)
	protected.GET("/activity-logs", ownerOnly, h.Activity.List)
	protected.GET("/activity-logs/export", ownerOnly, h.Activity.Export)
}
