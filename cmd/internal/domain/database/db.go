package database

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"os"
	"path/filepath"
	"time"
	"zscore/cmd/internal/domain/entity"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Init opens the database selected by DB_DRIVER (sqlite by default) and
// migrates the schema.
func Init() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = DriverSQLite
	}

	switch driver {
	case DriverSQLite:
		dbPath := os.Getenv("DB_PATH")
		if dbPath == "" {
			dbPath = filepath.Join(".", "database.db")
		}
		return Open(sqlite.Open(dbPath+"?_pragma=foreign_keys(1)"), 1)

	case DriverPostgres:
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return nil, fmt.Errorf("database: DATABASE_URL is required for driver %q", driver)
		}
		return Open(postgres.Open(dsn), 10)

	default:
		return nil, fmt.Errorf("database: unsupported driver %q", driver)
	}
}

// Open connects through the given dialector, runs AutoMigrate and applies the
// pool limits. SQLite must stay at a single open connection.
func Open(dialector gorm.Dialector, maxOpenConns int) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Order matters, companies reference countries and scores reference companies
	err = db.AutoMigrate(&entity.Country{}, &entity.Company{}, &entity.Score{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Debugf("database opened with dialect %s", dialector.Name())
	return db, nil
}
