package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Feedback API
	api := s.echo.Group("/api")
	api.POST("/feedback", s.handleSubmit)
	api.GET("/feedback", s.handleQuery)
	api.GET("/feedback/summary", s.handleSummary)
	api.GET("/feedback/categories", s.handleCategories)
	api.GET("/feedback/:id", s.handleGet)
	api.PATCH("/feedback/:id/status", s.handleUpdateStatus)
}
