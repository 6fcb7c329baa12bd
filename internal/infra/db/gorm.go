package db

import (
	"fmt"
	"time"

	"github.com/cafeanalog/coffeecard-api/internal/config"
	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the active storage backend. This is the schema configuration
// entry point: it is called once at startup, before any request handling,
// and a failure here aborts the process.
func New(cfg *config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var dialector gorm.Dialector
	if cfg.Database.Ephemeral() {
		// Shared-cache in-memory database: every connection in the pool
		// sees the same seeded schema for the lifetime of the process.
		dialector = sqlite.Open("file::memory:?cache=shared")
	} else {
		dialector = postgres.Open(dsnWithSearchPath(cfg.Database.DSN, cfg.Database.Schema))
	}

	db, err := gorm.Open(dialector, gcfg)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Database.Backend, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return db, nil
}

// dsnWithSearchPath pins the active schema namespace for the postgres
// backend. The sqlite backend has no schema concept and ignores it.
func dsnWithSearchPath(dsn, schemaName string) string {
	if schemaName == "" {
		return dsn
	}
	return dsn + " search_path=" + schemaName
}

// Migrate creates every entity table. Order follows foreign key
// dependencies so backends that enforce referential integrity accept the
// schema: referenced entities (Programme, User, Product, MenuItem) come
// before their dependents. A declaration error here is fatal at startup,
// never at query time.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Programme{},
		&model.User{},
		&model.Product{},
		&model.MenuItem{},
		&model.ProductUserGroup{},
		&model.MenuItemProduct{},
		&model.Purchase{},
		&model.PosPurchase{},
		&model.Ticket{},
		&model.Voucher{},
		&model.Token{},
		&model.Statistic{},
		&model.WebhookConfiguration{},
	)
}
