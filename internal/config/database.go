package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Driver identifies the SQL backend behind DATABASE_URL
type Driver string

const (
	DriverSQLite   Driver = "sqlite3"
	DriverPostgres Driver = "postgres"
)

// DefaultDatabaseURL is used when DATABASE_URL is not set
const DefaultDatabaseURL = "sqlite3://./data/todos.db"

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	URL             string
	Driver          Driver
	DSN             string // data source name passed to sql.Open
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ParseDatabaseURL derives the driver and DSN from a connection string.
//
// postgres:// and postgresql:// URLs select PostgreSQL and are passed through
// unchanged. sqlite3:// and sqlite:// URLs, as well as bare file paths, select
// SQLite.
func ParseDatabaseURL(raw string) (*DatabaseConfig, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultDatabaseURL
	}

	config := &DatabaseConfig{URL: raw}

	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		config.Driver = DriverPostgres
		config.DSN = raw
	case strings.HasPrefix(raw, "sqlite3://"):
		config.Driver = DriverSQLite
		config.DSN = strings.TrimPrefix(raw, "sqlite3://")
	case strings.HasPrefix(raw, "sqlite://"):
		config.Driver = DriverSQLite
		config.DSN = strings.TrimPrefix(raw, "sqlite://")
	case strings.Contains(raw, "://"):
		return nil, fmt.Errorf("unsupported database scheme in %q", redact(raw))
	default:
		config.Driver = DriverSQLite
		config.DSN = raw
	}

	if config.DSN == "" {
		return nil, fmt.Errorf("database location cannot be empty")
	}

	return config, nil
}

// Validate validates the database configuration
func (c *DatabaseConfig) Validate() error {
	if c.DSN == "" {
		return fmt.Errorf("database DSN cannot be empty")
	}

	if c.Driver != DriverSQLite && c.Driver != DriverPostgres {
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns < 0 {
		return fmt.Errorf("max open connections must not be negative")
	}

	return nil
}

// SQLitePath returns the database file path without connection options
func (c *DatabaseConfig) SQLitePath() string {
	path, _, _ := strings.Cut(c.DSN, "?")
	return filepath.Clean(path)
}

// MigrationURL returns the URL understood by golang-migrate's database drivers
func (c *DatabaseConfig) MigrationURL() string {
	if c.Driver == DriverPostgres {
		return c.DSN
	}
	return "sqlite3://" + c.DSN
}

// Redacted returns the connection string with any password removed, for logging
func (c *DatabaseConfig) Redacted() string {
	return redact(c.URL)
}

func redact(raw string) string {
	scheme, rest, found := strings.Cut(raw, "://")
	if !found {
		return raw
	}

	userinfo, host, found := strings.Cut(rest, "@")
	if !found {
		return raw
	}

	user, _, hasPassword := strings.Cut(userinfo, ":")
	if !hasPassword {
		return raw
	}

	return scheme + "://" + user + ":xxxxx@" + host
}
