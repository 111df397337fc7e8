package database

import (
	"fmt"
	"log"

	"github.com/hoanggia/woodshop-api/internal/config"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Account entities
		&entity.User{},
		&entity.UserRole{},

		// Master data
		&entity.Product{},
		&entity.Supplier{},
		&entity.Customer{},
		&entity.Employee{},

		// Transaction entities
		&entity.Order{},
		&entity.OrderItem{},
		&entity.InventoryTransaction{},
		&entity.AttendanceRecord{},

		// System entities
		&entity.ActivityLog{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedOwner creates the bootstrap owner account on first run. Without
// it a fresh install has no one able to assign roles.
func SeedOwner(db *gorm.DB, cfg *config.SeedConfig) error {
	if cfg.OwnerEmail == "" || cfg.OwnerPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.OwnerEmail).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check owner account: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash owner password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		owner := &entity.User{
			Email:    cfg.OwnerEmail,
			Password: string(hashed),
			FullName: cfg.OwnerName,
		}
		if err := tx.Create(owner).Error; err != nil {
			return fmt.Errorf("failed to create owner account: %w", err)
		}

		role := &entity.UserRole{
			UserID: owner.ID,
			Role:   enum.RoleOwner,
		}
		if err := tx.Create(role).Error; err != nil {
			return fmt.Errorf("failed to assign owner role: %w", err)
		}

		log.Printf("Seeded owner account %s", cfg.OwnerEmail)
		return nil
	})
}
