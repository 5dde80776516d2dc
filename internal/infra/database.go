package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kioskopos/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and migrates the
// schema. AutoMigrate is safe here: the schema is small and owned entirely
// by this service.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

// RunMigrations creates or updates all tables. Also used by integration tests
// against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	// gen_random_uuid() ships with Postgres 13+, but only with pgcrypto on
	// older point releases.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Shift{},
		&model.Sale{},
		&model.SaleItem{},
		&model.SalePayment{},
		&model.CashTransaction{},
		&model.InventoryMovement{},
		&model.Configuration{},
	)
}
