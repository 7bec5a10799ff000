package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"todo-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// Dialect selects the SQL flavour a repository speaks
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// DialectForDriver maps a database/sql driver name to its dialect.
// Unknown drivers get the SQLite dialect.
func DialectForDriver(driver string) Dialect {
	if driver == string(DialectPostgres) {
		return DialectPostgres
	}
	return DialectSQLite
}

// Placeholder returns the bind parameter for the n-th (1-based) argument
func (d Dialect) Placeholder(n int) string {
	if d == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// BaseRepository provides common functionality for the SQL repositories
type BaseRepository struct {
	db      *sql.DB
	table   string
	dialect Dialect
	logger  *logrus.Logger
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *sql.DB, table string, dialect Dialect, logger *logrus.Logger) *BaseRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &BaseRepository{
		db:      db,
		table:   table,
		dialect: dialect,
		logger:  logger,
	}
}

// Health checks that the store is reachable
func (r *BaseRepository) Health(ctx context.Context) error {
	return r.withConn(ctx, "health", func(conn *sql.Conn) error {
		if err := conn.PingContext(ctx); err != nil {
			return repositories.ConnectionError("health", err)
		}
		return nil
	})
}

// Count returns the total number of rows in the table
func (r *BaseRepository) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", r.table)

	var count int64
	err := r.withConn(ctx, "count", func(conn *sql.Conn) error {
		if err := r.executeQueryRow(ctx, conn, "count", query).Scan(&count); err != nil {
			return repositories.NewRepositoryError("count", r.table, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// withConn acquires a dedicated connection for fn and releases it on every
// exit path.
func (r *BaseRepository) withConn(ctx context.Context, operation string, fn func(conn *sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"operation": operation,
			"table":     r.table,
		}).WithError(err).Error("Failed to acquire database connection")
		return repositories.ConnectionError(operation, err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			r.logger.WithError(cerr).Warn("Failed to release database connection")
		}
	}()

	return fn(conn)
}

// logQuery logs a query with its execution time
func (r *BaseRepository) logQuery(operation string, query string, args []interface{}, duration time.Duration, err error) {
	fields := logrus.Fields{
		"operation": operation,
		"table":     r.table,
		"query":     query,
		"args":      args,
		"duration":  duration,
	}

	if err != nil {
		fields["error"] = err.Error()
		r.logger.WithFields(fields).Error("Query failed")
	} else {
		r.logger.WithFields(fields).Debug("Query executed")
	}
}

// executeQuery executes a query and logs the result
func (r *BaseRepository) executeQuery(ctx context.Context, conn *sql.Conn, operation, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := conn.QueryContext(ctx, query, args...)
	duration := time.Since(start)

	r.logQuery(operation, query, args, duration, err)

	if err != nil {
		return nil, repositories.NewRepositoryError(operation, r.table, err)
	}

	return rows, nil
}

// executeQueryRow executes a single-row query and logs the result
func (r *BaseRepository) executeQueryRow(ctx context.Context, conn *sql.Conn, operation, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := conn.QueryRowContext(ctx, query, args...)
	duration := time.Since(start)

	r.logQuery(operation, query, args, duration, row.Err())

	return row
}
