package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/vessel-intervals-go/internal/config"
	"github.com/jengzang/vessel-intervals-go/internal/handler"
	"github.com/jengzang/vessel-intervals-go/internal/middleware"
	"github.com/jengzang/vessel-intervals-go/internal/service"
)

// SetupRouter wires the handlers. limiter may be nil to disable rate limiting.
func SetupRouter(cfg *config.Config, svc *service.AnalysisService, logger *slog.Logger, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadBytes
	r.Use(gin.Recovery(), middleware.Logger(logger))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+middleware.RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", handler.Health)

	h := handler.NewAnalysisHandler(svc)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth(cfg.JWTSecret))
	{
		v1.GET("/ports", h.Ports)
		v1.POST("/classify", h.Classify)

		intervals := v1.Group("/intervals")
		intervals.Use(middleware.RateLimit(limiter))
		{
			intervals.POST("/analyze", h.Analyze)
			intervals.POST("/raw", h.RawRows)
		}
	}

	return r
}
