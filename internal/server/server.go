package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/config"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/domain"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/errors"
)

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	app       domain.AppService
	pool      *pgxpool.Pool   // nil in memory-store mode
	redis     *goredis.Client // nil when no cache is configured
	startTime time.Time
}

// NewServer wires the HTTP layer. pool and redis may be nil; readiness
// checks only cover the backends that are actually configured.
func NewServer(cfg *config.Config, app domain.AppService, pool *pgxpool.Pool, redis *goredis.Client) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(errors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		app:       app,
		pool:      pool,
		redis:     redis,
		startTime: time.Now(),
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
