// README: HTTP router registration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"trailhead/internal/http/handlers"
	"trailhead/internal/http/middleware"
	"trailhead/internal/modules/recommendation"
)

func NewRouter(
	recommendations *recommendation.Service,
	tools handlers.ToolLister,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(logger), middleware.Recovery())

	recHandler := handlers.NewRecommendationHandler(recommendations)
	r.POST("/api/recommend", recHandler.Create)
	r.GET("/api/recommendations", recHandler.List)
	r.GET("/api/recommendations/:id", recHandler.Get)

	destHandler := handlers.NewDestinationHandler()
	r.GET("/api/destinations", destHandler.List)

	toolHandler := handlers.NewToolHandler(tools)
	r.GET("/api/tools", toolHandler.List)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "trailhead"})
	})

	return r
}
