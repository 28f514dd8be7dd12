package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"doclens/actions"
	"doclens/api/router"
	"doclens/auth"
	"doclens/config"
	"doclens/db"
	"doclens/flows"
	"doclens/logger"
	"doclens/quota"
	"doclens/repositories"
)

// @title           DocLens API
// @version         1.0
// @description     Document intelligence service: text extraction, AI summaries, chat, mind maps and audio.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()

	client, database, err := db.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Log.Errorf("mongo disconnect: %v", err)
		}
	}()

	limiter := quota.NewLLMQuotaLimiter(cfg.LLMQuota)
	flowClient, err := flows.NewClient(ctx, cfg.Gemini, limiter)
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatalf("jwt: %v", err)
	}

	acts := actions.New(
		flowClient,
		repositories.NewDocumentRepository(database),
		repositories.NewSummaryRecordRepository(database),
	)

	engine := router.New(cfg, acts, jwtManager, database)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	})

	processTimeout := time.Duration(cfg.Server.ProcessTimeoutSeconds) * time.Second
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           corsMiddleware.Handler(engine),
		ReadHeaderTimeout: 10 * time.Second,
		// Flow requests may legitimately run for minutes; the write
		// timeout caps them at the processing budget.
		WriteTimeout: processTimeout + 10*time.Second,
	}

	logger.Log.Infof("listening on %s", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server: %v", err)
	}
}
