package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"todo-api/internal/config"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// sqliteOptions are appended to SQLite DSNs that carry no options of their own
const sqliteOptions = "_busy_timeout=5000&_journal_mode=WAL"

// Open opens the configured store and verifies it is reachable
func Open(ctx context.Context, cfg *config.DatabaseConfig, logger *logrus.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = logrus.New()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	dsn := cfg.DSN
	if cfg.Driver == config.DriverSQLite {
		if err := ensureSQLiteDirectory(cfg); err != nil {
			return nil, err
		}
		if !strings.Contains(dsn, "?") {
			dsn += "?" + sqliteOptions
		}
	}

	db, err := sql.Open(string(cfg.Driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	configurePool(db, cfg)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"driver": cfg.Driver,
		"url":    cfg.Redacted(),
	}).Info("Database connection established")

	return db, nil
}

// Initialize opens the store and ensures the schema exists.
// It is safe to call on every boot.
func Initialize(ctx context.Context, cfg *config.DatabaseConfig, logger *logrus.Logger) (*sql.DB, error) {
	db, err := Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := NewMigrationManager(cfg, logger).RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func configurePool(db *sql.DB, cfg *config.DatabaseConfig) {
	if cfg.Driver == config.DriverSQLite {
		// SQLite works best with a single writer connection
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

func ensureSQLiteDirectory(cfg *config.DatabaseConfig) error {
	dir := filepath.Dir(cfg.SQLitePath())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}
