package routes

import (
	"github.com/gin-gonic/gin"

	"track-recommender/internal/api/v1/handlers"
	"track-recommender/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TrackService          services.TrackService
	RecommendationService services.RecommendationService
	CatalogService        services.CatalogService
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	trackHandler := handlers.NewTrackHandler(container.TrackService, container.RecommendationService)
	tracks := router.Group("/tracks")
	{
		tracks.GET("", trackHandler.List)
		tracks.GET("/:id", trackHandler.Get)
		tracks.GET("/:id/recommendations", trackHandler.Recommendations)
	}

	if container.CatalogService != nil {
		catalogHandler := handlers.NewCatalogHandler(container.CatalogService)
		tracks.POST("", catalogHandler.ImportTrack)
		router.GET("/search", catalogHandler.Search)
		router.POST("/imports", catalogHandler.Import)
	}
}
