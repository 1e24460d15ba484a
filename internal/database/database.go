package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/valbrand/crm-backend/internal/config"
	"github.com/valbrand/crm-backend/internal/domain"
)

// Open connects to the configured database. Postgres serves deployments;
// sqlite keeps local development and tests self-contained.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DatabaseDriver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), gormCfg)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DatabaseDSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DatabaseDriver, err)
	}
	return db, nil
}

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.AuditLog{},
		&domain.Client{},
		&domain.ProjectType{},
		&domain.Project{},
		&domain.Mold{},
		&domain.Sample{},
		&domain.ProductionPlan{},
		&domain.BrandingProject{},
		&domain.EcommerceProject{},
		&domain.Invoice{},
		&domain.Payment{},
		&domain.Expense{},
	)
}
