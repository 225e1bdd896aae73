package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"research-backend/internal/feedback"
	"research-backend/internal/researches"
	"research-backend/internal/services/health"
	"research-backend/internal/shared/config"
	"research-backend/internal/shared/metrics"
	"research-backend/internal/shared/server/middleware"
	"research-backend/internal/shared/server/respond"
)

// RouterDeps holds the handlers the router needs.
type RouterDeps struct {
	Config          config.Config
	Health          *health.Service
	ResearchHandler *researches.Handler
	FeedbackHandler *feedback.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	deps.ResearchHandler.RegisterRoutes(api)
	deps.FeedbackHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
