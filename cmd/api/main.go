package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoanggia/woodshop-api/internal/application/service"
	"github.com/hoanggia/woodshop-api/internal/config"
	"github.com/hoanggia/woodshop-api/internal/infrastructure/database"
	"github.com/hoanggia/woodshop-api/internal/infrastructure/repository"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/handler"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/routes"
	"github.com/hoanggia/woodshop-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the owner account
	if err := database.SeedOwner(db, &cfg.Seed); err != nil {
		log.Printf("Warning: Failed to seed owner account: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	userRoleRepo := repository.NewUserRoleRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	inventoryRepo := repository.NewInventoryTransactionRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Hourly sweep of expired idempotency keys
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if n, err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: idempotency cleanup failed: %v", err)
			} else if n > 0 {
				log.Printf("Removed %d expired idempotency keys", n)
			}
		}
	}()

	// Initialize services
	activityService := service.NewActivityService(activityRepo)
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo, userRoleRepo, activityService)
	productService := service.NewProductService(productRepo, inventoryRepo, activityService, cfg.Inventory.LowStockThreshold)
	supplierService := service.NewSupplierService(supplierRepo, activityService)
	customerService := service.NewCustomerService(customerRepo, activityService)
	employeeService := service.NewEmployeeService(employeeRepo, activityService)
	orderService := service.NewOrderService(orderRepo, productRepo, customerRepo, activityService)
	inventoryService := service.NewInventoryService(inventoryRepo, productRepo, activityService)
	attendanceService := service.NewAttendanceService(attendanceRepo, employeeRepo, cfg.Payroll.WorkingDaysPerMonth)
	reportService := service.NewReportService(orderRepo, productRepo, cfg.Inventory.LowStockThreshold)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		User:       handler.NewUserHandler(userService),
		Product:    handler.NewProductHandler(productService),
		Supplier:   handler.NewSupplierHandler(supplierService),
		Customer:   handler.NewCustomerHandler(customerService),
		Employee:   handler.NewEmployeeHandler(employeeService),
		Order:      handler.NewOrderHandler(orderService),
		Inventory:  handler.NewInventoryHandler(inventoryService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Report:     handler.NewReportHandler(reportService),
		Activity:   handler.NewActivityHandler(activityService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
