package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/societyhub/societyhub-api/docs" // Swagger docs
	"github.com/societyhub/societyhub-api/internal/authz"
	"github.com/societyhub/societyhub-api/internal/config"
	"github.com/societyhub/societyhub-api/internal/database"
	"github.com/societyhub/societyhub-api/internal/handlers"
	"github.com/societyhub/societyhub-api/internal/jobs"
	"github.com/societyhub/societyhub-api/internal/middleware"
	"github.com/societyhub/societyhub-api/internal/repository"
	"github.com/societyhub/societyhub-api/internal/services"
	"github.com/societyhub/societyhub-api/pkg/logger"
)

// @title SocietyHub API
// @version 1.0
// @description REST API for residential society back-office management

// @license.name MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.Environment)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	repos := repository.NewRepositories(db)

	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	svcs := services.NewServices(repos, cfg, db, worker)

	scheduleJobs(worker, cfg, svcs)

	h := handlers.NewHandlers(svcs)

	router := setupRouter(h, cfg, repos)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	worker.Shutdown()
	logger.Info("Background worker stopped")

	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config, repos *repository.Repositories) *gin.Engine {
	router := gin.New()

	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Public
		v1.GET("/health", h.Health.Index)
		v1.POST("/auth/login", h.Auth.Login)

		// Authenticated
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret, repos.User))
		{
			protected.GET("/auth/me", h.Auth.Me)

			// Users
			protected.GET("/users", middleware.Authorize(authz.OpUserList), h.User.Index)
			protected.GET("/users/:id", h.User.Show)
			protected.POST("/users", middleware.Authorize(authz.OpUserCreate), h.User.Create)
			protected.PATCH("/users/:id", middleware.Authorize(authz.OpUserUpdate), h.User.Update)
			protected.DELETE("/users/:id", middleware.Authorize(authz.OpUserDelete), h.User.Destroy)

			// Flats
			protected.GET("/flats", h.Flat.Index)
			protected.GET("/flats/:id", h.Flat.Show)
			protected.POST("/flats", middleware.Authorize(authz.OpFlatCreate), h.Flat.Create)
			protected.PATCH("/flats/:id", middleware.Authorize(authz.OpFlatUpdate), h.Flat.Update)
			protected.DELETE("/flats/:id", middleware.Authorize(authz.OpFlatDelete), h.Flat.Destroy)

			// Tenancies
			protected.GET("/flats/:id/tenant", h.Tenancy.Current)
			protected.GET("/flats/:id/tenancies", h.Tenancy.History)
			protected.GET("/tenancies/:id", h.Tenancy.Show)
			protected.POST("/tenancies", middleware.Authorize(authz.OpTenancyCreate), h.Tenancy.Create)
			protected.PATCH("/tenancies/:id", middleware.Authorize(authz.OpTenancyUpdate), h.Tenancy.Update)
			protected.DELETE("/tenancies/:id", middleware.Authorize(authz.OpTenancyDelete), h.Tenancy.Destroy)

			// Residents
			protected.GET("/flats/:id/residents", h.Resident.IndexForFlat)
			protected.GET("/residents/:id", h.Resident.Show)
			protected.POST("/residents", middleware.Authorize(authz.OpResidentCreate), h.Resident.Create)
			protected.PATCH("/residents/:id", middleware.Authorize(authz.OpResidentUpdate), h.Resident.Update)
			protected.DELETE("/residents/:id", middleware.Authorize(authz.OpResidentDelete), h.Resident.Destroy)

			// Maintenance billing
			protected.GET("/flats/:id/maintenance", h.Maintenance.IndexForFlat)
			protected.GET("/maintenance", h.Maintenance.IndexForCycle)
			protected.GET("/maintenance/export", middleware.Authorize(authz.OpMaintenanceExport), h.Maintenance.Export)
			protected.GET("/maintenance/overdue", h.Maintenance.IndexOverdue)
			protected.GET("/maintenance/:id", h.Maintenance.Show)
			protected.GET("/maintenance/:id/invoice.pdf", h.Maintenance.InvoicePDF)
			protected.GET("/maintenance/:id/receipt.pdf", h.Maintenance.ReceiptPDF)
			protected.POST("/maintenance", middleware.Authorize(authz.OpMaintenanceCreate), h.Maintenance.Create)
			protected.POST("/maintenance/sweep", middleware.Authorize(authz.OpInterestSweep), h.Maintenance.Sweep)
			protected.PATCH("/maintenance/:id", middleware.Authorize(authz.OpMaintenanceUpdate), h.Maintenance.Update)

			// Vendors
			protected.GET("/vendors", h.Vendor.Index)
			protected.GET("/vendors/:id", h.Vendor.Show)
			protected.POST("/vendors", middleware.Authorize(authz.OpVendorCreate), h.Vendor.Create)
			protected.PATCH("/vendors/:id", middleware.Authorize(authz.OpVendorUpdate), h.Vendor.Update)
			protected.DELETE("/vendors/:id", middleware.Authorize(authz.OpVendorDelete), h.Vendor.Destroy)

			// Audit trail
			protected.GET("/audit", middleware.Authorize(authz.OpAuditRead), h.Audit.Index)

			// Background jobs
			protected.GET("/jobs/status", middleware.Authorize(authz.OpJobStatus), h.Job.Status)
		}
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, cfg *config.Config, svcs *services.Services) {
	interval := time.Duration(cfg.SweepIntervalHours) * time.Hour

	// Immediate first run so a restart never delays the sweep by a full
	// interval; the sweep itself is idempotent.
	worker.ScheduleEveryImmediate(interval, func(ctx context.Context) error {
		logger.Info("[Job] Sweeping overdue maintenance records...")
		_, err := svcs.Maintenance.SweepOverdueInterest(ctx, time.Now().UTC())
		return err
	})

	logger.Info("Scheduled recurring jobs", "sweep_interval", interval.String())
}
