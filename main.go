package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ops-console/backend/internal/client"
	"github.com/ops-console/backend/internal/config"
	"github.com/ops-console/backend/internal/db"
	"github.com/ops-console/backend/internal/handler"
	"github.com/ops-console/backend/internal/service"
)

// @title Ops Console API
// @version 1.0
// @description Backend for the devops-console portfolio site.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env는 로컬 개발용. 없으면 그냥 환경변수만 사용
	if err := godotenv.Load(); err == nil {
		log.Printf("[App] Loaded .env")
	}

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// DB 초기화. 실패 시 프록시로 숨기지 않고 바로 종료한다
	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("[App] Failed to connect to database: %v", err)
	}
	defer pool.Close()
	store := db.NewPostgres(pool)

	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("[App] Failed to ensure schema: %v", err)
	}
	log.Printf("[App] Connected to Postgres, schema ready")

	// 외부 클라이언트
	githubClient := client.NewGitHubClient(cfg.GitHub.Token, cfg.GitHub.Username, cfg.GitHub.BaseURL)

	// 서비스
	githubSync := service.NewGitHubSyncService(githubClient, store)

	calendarSync := service.NewCalendarSyncService(nil, store)
	calendarClient, err := client.NewCalendarClient(ctx, cfg.Calendar.CalendarID, cfg.Calendar.CredentialsJSON, cfg.Calendar.KeyFile, cfg.Calendar.BaseURL)
	switch {
	case err == nil:
		calendarSync = service.NewCalendarSyncService(calendarClient, store)
	case errors.Is(err, client.ErrCredentialsNotFound):
		log.Printf("[Calendar] Service account not configured. Calendar sync disabled.")
	default:
		log.Printf("[Calendar] Failed to load service account: %v. Calendar sync disabled.", err)
	}

	scheduler := service.NewScheduler(githubSync, calendarSync, cfg.Sync.Interval)

	statusService := service.NewStatusService(store, cfg.Server.Region)
	logsService := service.NewLogsService(store, cfg.Privacy.AdminIPs)
	deploymentsService := service.NewDeploymentsService(store)
	incidentsService := service.NewIncidentsService(store)

	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		log.Fatalf("[App] Failed to init auth: %v", err)
	}

	// 백그라운드 sync 시작 (시작 직후 1회 + 주기 반복)
	go scheduler.Run(ctx)

	// 라우터
	router := gin.Default()
	router.Use(handler.CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(handler.VisitorMiddleware(store))

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	statusHandler := handler.NewStatusHandler(statusService)
	deploymentsHandler := handler.NewDeploymentsHandler(deploymentsService)
	incidentsHandler := handler.NewIncidentsHandler(incidentsService)
	logsHandler := handler.NewLogsHandler(logsService)
	syncHandler := handler.NewSyncHandler(scheduler)
	photoHandler := handler.NewPhotoHandler(store)
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(store)

	api := router.Group("/api")
	{
		api.GET("/status", statusHandler.GetStatus)
		api.GET("/deployments", deploymentsHandler.GetDeployments)
		api.GET("/incidents", incidentsHandler.GetIncidents)
		api.GET("/logs", logsHandler.GetLogs)
		api.POST("/action", logsHandler.RecordAction)
		api.GET("/sync", syncHandler.TriggerSync)
		api.GET("/profile-photo", photoHandler.GetProfilePhoto)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/login", authHandler.Login)

		protected := admin.Group("")
		protected.Use(handler.AuthMiddleware(authService))
		{
			protected.PUT("/config/:key", adminHandler.UpdateConfig)
			protected.POST("/incidents", incidentsHandler.CreateIncident)
			protected.POST("/profile-photo", photoHandler.UploadProfilePhoto)
		}
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		log.Printf("[App] Server running on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[App] Server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Printf("[App] Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[App] Shutdown error: %v", err)
		os.Exit(1)
	}
}
