package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"doclens/actions"
	"doclens/api/handlers"
	"doclens/api/middleware"
	"doclens/auth"
	"doclens/config"
	"doclens/db"
	_ "doclens/docs"
)

// New assembles the gin engine with all routes. Extraction is open;
// everything that touches flows or persistence sits behind bearer auth.
func New(cfg *config.AppConfig, acts *actions.Actions, jwtManager *auth.JWTManager, database *mongo.Database) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())

	// Multipart bodies up to the upload limit plus form overhead.
	r.MaxMultipartMemory = 32 << 20

	processTimeout := time.Duration(cfg.Server.ProcessTimeoutSeconds) * time.Second
	maxFileSizeBytes := int64(cfg.Upload.MaxFileSizeMB) << 20

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if database == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		if err := db.Ping(ctx, database); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/extract-text", handlers.ExtractTextHandler(acts, maxFileSizeBytes))

		authed := api.Group("")
		authed.Use(middleware.OwnerAuth(jwtManager))
		{
			flowGroup := authed.Group("/flows")
			flowGroup.POST("/summarize", handlers.SummarizeHandler(acts, processTimeout))
			flowGroup.POST("/chat", handlers.ChatHandler(acts, processTimeout))
			flowGroup.POST("/mind-map", handlers.MindMapHandler(acts, processTimeout))
			flowGroup.POST("/tone", handlers.ToneHandler(acts, processTimeout))
			flowGroup.POST("/audio-summary", handlers.AudioSummaryHandler(acts, processTimeout))
			flowGroup.POST("/suggested-questions", handlers.SuggestedQuestionsHandler(acts, processTimeout))
			flowGroup.POST("/compare", handlers.CompareHandler(acts, processTimeout))

			authed.POST("/documents", handlers.CreateDocumentHandler(acts))
			authed.GET("/documents", handlers.ListDocumentsHandler(acts))
			authed.POST("/documents/demo", handlers.CreateDemoDocumentHandler(acts))
			authed.GET("/documents/:id", handlers.GetDocumentHandler(acts))
			authed.POST("/documents/:id/summaries", handlers.SaveSummaryHandler(acts))
			authed.GET("/documents/:id/summaries", handlers.ListDocumentSummariesHandler(acts))
			authed.GET("/summaries", handlers.ListSummariesHandler(acts))
		}
	}

	return r
}
