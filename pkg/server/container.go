package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"todo-api/internal/config"
	"todo-api/internal/database"
	"todo-api/internal/metrics"
	"todo-api/internal/repositories/sqlstore"
	"todo-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	TodoService services.TodoService
	Metrics     *metrics.Collector
	Registry    *prometheus.Registry

	// Internal dependencies
	db *sql.DB
}

// NewContainer opens the store, ensures the schema exists and wires the
// services. It fails when the store is unreachable.
func NewContainer(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		logger = config.NewLogger(cfg.Log)
	}

	db, err := database.Initialize(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	collector := metrics.NewCollector()
	registry, err := metrics.NewRegistry(collector)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create metrics registry: %w", err)
	}

	todoRepo := sqlstore.NewTodoRepository(db, sqlstore.DialectForDriver(string(cfg.Database.Driver)), logger)

	container := &Container{
		Config:      cfg,
		Logger:      logger,
		TodoService: services.NewTodoService(todoRepo, logger),
		Metrics:     collector,
		Registry:    registry,
		db:          db,
	}

	return container, nil
}

// Health reports whether the container's store is reachable
func (c *Container) Health(ctx context.Context) error {
	return c.TodoService.Health(ctx)
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
