package database

import (
	"io"
	stdlog "log"
	"os"
	"time"

	"vastgoed-sync/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens a GORM DB. A postgres DSN wins; otherwise the SQLite file at
// sqlitePath is used (the original deployment ran on a single SQLite file).
// PreferSimpleProtocol disables prepared statement caching to avoid 42P05
// ("prepared statement already exists") behind connection poolers.
func Open(dsn, sqlitePath string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: newLogger(os.Stderr)}
	if dsn != "" {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), cfg)
	}
	return gorm.Open(sqlite.Open(sqlitePath), cfg)
}

// newLogger logs slow queries and real failures. A lookup that finds nothing
// is a normal outcome (every new URL on a scrape) and is not logged.
func newLogger(w io.Writer) logger.Interface {
	return logger.New(stdlog.New(w, "\r\n", stdlog.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// AutoMigrate runs migrations for every persisted model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Listing{}, &domain.Subscriber{})
}

// OpenInMemory returns a migrated in-memory SQLite DB pinned to a single
// connection, so every query sees the same database.
func OpenInMemory() (*gorm.DB, error) {
	db, err := Open("", ":memory:")
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
