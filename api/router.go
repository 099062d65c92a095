package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Domenick1991/airport/internal/service/airport"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every handler onto a fresh engine. An empty origins list allows any origin.
func NewRouter(service airport.AirportUseCase, logger *slog.Logger, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), loggingMiddleware(logger), corsMiddleware(origins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/statistics", func(c *gin.Context) {
		c.JSON(http.StatusOK, service.Statistics())
	})

	NewPassengerHandler(service).Register(r.Group("/passengers"))

	flights := r.Group("/flights")
	NewFlightHandler(service).Register(flights)
	NewBoardingHandler(service).Register(flights)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func loggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("http",
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
