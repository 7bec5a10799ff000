package handlers

// @title Todo API
// @version 1.0
// @description A small todo service with a liveness route and Prometheus metrics

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

// @tag.name todos
// @tag.description Todo list operations

// @tag.name system
// @tag.description Liveness, health and metrics
