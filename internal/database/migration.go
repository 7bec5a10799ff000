package database

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"todo-api/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations
var migrationsFS embed.FS

// MigrationManager ensures the schema for the configured driver is current
type MigrationManager struct {
	config *config.DatabaseConfig
	logger *logrus.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(cfg *config.DatabaseConfig, logger *logrus.Logger) *MigrationManager {
	if logger == nil {
		logger = logrus.New()
	}
	return &MigrationManager{
		config: cfg,
		logger: logger,
	}
}

// RunMigrations applies every pending migration. Running it against an
// up-to-date schema is a no-op.
func (m *MigrationManager) RunMigrations() error {
	mg, err := m.initMigrate()
	if err != nil {
		return fmt.Errorf("failed to initialize migrate: %w", err)
	}
	defer m.closeMigrate(mg)

	currentVersion, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	if dirty {
		m.logger.WithField("version", currentVersion).Warn("Database is in dirty state, forcing version")
		if err := mg.Force(int(currentVersion)); err != nil {
			return fmt.Errorf("failed to force migration version: %w", err)
		}
	}

	if err := mg.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.logger.WithField("version", currentVersion).Debug("Schema already up to date")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	newVersion, _, err := mg.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}

	m.logger.WithFields(logrus.Fields{
		"from_version": currentVersion,
		"to_version":   newVersion,
	}).Info("Schema migrations applied")
	return nil
}

// initMigrate builds a migrate instance over the embedded migrations for the driver.
// The instance opens its own connection, closed by closeMigrate.
func (m *MigrationManager) initMigrate() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations/"+string(m.config.Driver))
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	mg, err := migrate.NewWithSourceInstance("iofs", source, m.config.MigrationURL())
	if err != nil {
		source.Close()
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	mg.Log = &migrateLogger{logger: m.logger}
	return mg, nil
}

func (m *MigrationManager) closeMigrate(mg *migrate.Migrate) {
	sourceErr, dbErr := mg.Close()
	if sourceErr != nil {
		m.logger.WithError(sourceErr).Warn("Failed to close migration source")
	}
	if dbErr != nil {
		m.logger.WithError(dbErr).Warn("Failed to close migration database")
	}
}

// migrateLogger adapts logrus to migrate.Logger
type migrateLogger struct {
	logger *logrus.Logger
}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"))
}

func (l *migrateLogger) Verbose() bool {
	return l.logger.IsLevelEnabled(logrus.DebugLevel)
}
