package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"agendo/handlers"
	"agendo/utils"
)

// RegisterAvailabilityRoutes sets up the slot-generation endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler) {
	api := r.Group("/api/providers")
	{
		api.GET("/:id/slots", ah.GetProviderSlotsHandler)
		api.GET("/:id/best-days", ah.GetBestDaysHandler)
	}
}

// RegisterRankingRoutes sets up the ranking and discovery endpoints.
func RegisterRankingRoutes(r *gin.Engine, rh *handlers.RankingHandler) {
	providers := r.Group("/api/providers")
	{
		providers.POST("/rank", rh.RankProvidersHandler)
		providers.GET("/:id/alternatives", rh.GetAlternativeProvidersHandler)
	}
	services := r.Group("/api/services")
	{
		services.GET("/:id/recommended", rh.GetRecommendedProvidersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler, rh *handlers.RankingHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, ah)
	RegisterRankingRoutes(r, rh)
}
