package api

import (
	"database/sql"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajharbinger/leaderboard-api/internal/errors"
	"github.com/ajharbinger/leaderboard-api/internal/logger"
	"github.com/ajharbinger/leaderboard-api/internal/metrics"
	"github.com/ajharbinger/leaderboard-api/internal/middleware"
	"github.com/ajharbinger/leaderboard-api/internal/services"
	"github.com/ajharbinger/leaderboard-api/pkg/config"
)

//go:embed static/index.html
var indexHTML []byte

// NewRouter creates the gin engine with the middleware chain applied
func NewRouter(cfg *config.Config, log logger.Logger, m *metrics.Metrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.CustomRecovery(recoverPanic))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(log))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(cfg))
	r.Use(middleware.InputValidationMiddleware(cfg.MaxRequestSize))
	r.Use(middleware.MetricsMiddleware(m))

	return r
}

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *sql.DB, log logger.Logger, m *metrics.Metrics) {
	svcs := services.NewServices(db, log, m)
	RegisterRoutes(r, NewScoreHandler(svcs.Score))
}

// RegisterRoutes mounts the landing page and the leaderboard endpoints
func RegisterRoutes(r gin.IRoutes, scoreHandler *ScoreHandler) {
	r.GET("/", Index)
	r.GET("/scores", scoreHandler.GetScores)
	r.POST("/scores", scoreHandler.CreateScore)
}

// recoverPanic turns a handler panic into the standard JSON error body
func recoverPanic(c *gin.Context, recovered interface{}) {
	respondError(c, errors.InternalError("internal server error", fmt.Errorf("panic: %v", recovered)))
	c.Abort()
}

// Index serves the static landing page
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}
