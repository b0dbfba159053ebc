package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/landsight/lulc-backend-go/internal/config"
	"github.com/landsight/lulc-backend-go/internal/database"
	"github.com/landsight/lulc-backend-go/internal/handler"
	"github.com/landsight/lulc-backend-go/internal/middleware"
	"github.com/landsight/lulc-backend-go/internal/repository"
	"github.com/landsight/lulc-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers into the
// HTTP router
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	rateLimiter := middleware.NewRateLimiter(120, time.Minute)
	r.Use(rateLimiter.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "LULC Decision Backend is running",
		})
	})

	datasetRepo := repository.NewDatasetRepository(database.GetDB())
	datasetService := service.NewDatasetService(datasetRepo)
	analysisService := service.NewAnalysisService(datasetRepo)

	datasetHandler := handler.NewDatasetHandler(datasetService)
	analysisHandler := handler.NewAnalysisHandler(analysisService, cfg.DefaultCostPerSite)

	api := r.Group("/api/v1")
	{
		datasets := api.Group("/datasets")
		{
			datasets.GET("", datasetHandler.GetDatasetInfo)
			datasets.GET("/transitions", datasetHandler.GetTransitions)
			datasets.GET("/timeseries", datasetHandler.GetTimeSeries)

			// Uploads replace the stored table and require auth
			secured := datasets.Group("", middleware.Auth(cfg.JWTSecret))
			{
				secured.POST("/transitions", datasetHandler.UploadTransitions)
				secured.POST("/timeseries", datasetHandler.UploadTimeSeries)
			}
		}

		analysis := api.Group("/analysis")
		{
			analysis.GET("/snapshot", analysisHandler.GetSnapshot)
			analysis.GET("/eco-risk", analysisHandler.GetEcoRisk)
			analysis.GET("/policy", analysisHandler.GetPolicy)
			analysis.GET("/projection", analysisHandler.GetProjection)
			analysis.GET("/trust", analysisHandler.GetTrust)
			analysis.GET("/trend", analysisHandler.GetTrend)
			analysis.GET("/velocity", analysisHandler.GetVelocity)
			analysis.GET("/evolutions", analysisHandler.GetEvolutions)
			analysis.GET("/actions", analysisHandler.GetActions)
			analysis.GET("/alerts", analysisHandler.GetAlerts)
			analysis.GET("/priorities", analysisHandler.GetPriorities)
			analysis.GET("/survey", analysisHandler.GetSurvey)
			analysis.GET("/narrative", analysisHandler.GetNarrative)
		}
	}

	return r
}
