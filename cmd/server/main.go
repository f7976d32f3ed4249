package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/vessel-intervals-go/internal/analysis"
	"github.com/jengzang/vessel-intervals-go/internal/api"
	"github.com/jengzang/vessel-intervals-go/internal/config"
	"github.com/jengzang/vessel-intervals-go/internal/logging"
	"github.com/jengzang/vessel-intervals-go/internal/middleware"
	"github.com/jengzang/vessel-intervals-go/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.LogError(slog.Default(), "invalid configuration", err)
		os.Exit(1)
	}

	logger := logging.NewStructuredLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)
	gin.SetMode(gin.ReleaseMode)

	catalog, err := cfg.Catalog()
	if err != nil {
		logging.LogError(logger, "failed to load port catalog", err, slog.String("path", cfg.PortsFile))
		os.Exit(1)
	}

	engine := analysis.NewEngine(catalog, cfg.AnalysisOptions())
	svc := service.NewAnalysisService(engine)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           api.SetupRouter(cfg, svc, logger, limiter),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Port),
			slog.Int("ports", catalog.Len()),
			slog.Duration("gap_threshold", cfg.GapThreshold),
			slog.Bool("auth", cfg.JWTSecret != ""))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.LogError(logger, "server failed", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.LogError(logger, "shutdown failed", err)
	}
	logger.Info("server stopped")
}
