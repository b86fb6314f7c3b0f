package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"insurance_backend/database"
	"insurance_backend/internal/auth"
	"insurance_backend/internal/cache"
	"insurance_backend/internal/config"
	"insurance_backend/internal/handlers"
	"insurance_backend/internal/logger"
	"insurance_backend/internal/middleware"
	"insurance_backend/internal/repositories"
	"insurance_backend/internal/routes"
	"insurance_backend/internal/services"
	"insurance_backend/internal/storage"
	"insurance_backend/internal/validator"
	"insurance_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const startupTimeout = 10 * time.Second

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	apperrors.SetDebug(!cfg.IsProduction())
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(ctx, database.Options{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		Debug:           !cfg.IsProduction(),
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	storageInstance, err := storage.NewStorage(storageConfig(cfg))
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	statsCache := initializeCache(ctx, cfg)

	ginRouter, serviceContainer := SetupRouter(cfg, gormDB, storageInstance, statsCache)

	if err := seedFirstAdmin(ctx, gormDB, cfg, serviceContainer.AccountService); err != nil {
		logger.Fatal("Failed to seed first admin", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a new engine.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage, statsCache cache.Cache) (*gin.Engine, *services.ServiceContainer) {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	// 1. Services
	serviceContainer := initializeServices(cfg, storageInstance, statsCache, tokens)

	// 2. Handlers
	appHandlers := initializeHandlers(serviceContainer, tokens)

	// 3. Gin
	ginRouter := initializeGinRouter(gormDB)

	// 4. Routes
	routes.RegisterRoutes(ginRouter, appHandlers, staticFiles(cfg), !cfg.IsProduction())

	return ginRouter, serviceContainer
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage, statsCache cache.Cache, tokens *auth.TokenManager) *services.ServiceContainer {
	// Repositories
	accountRepo := repositories.NewAccountRepository()
	policyRepo := repositories.NewPolicyRepository()
	applicationRepo := repositories.NewApplicationRepository()
	claimRepo := repositories.NewClaimRepository()
	vaultRepo := repositories.NewVaultRepository()

	// Services
	uploadService := services.NewUploadService(storageInstance, &services.UploadConfig{
		MaxFileSize:       cfg.Upload.MaxSize,
		AllowedTypes:      cfg.Upload.AllowedTypes,
		AllowedExtensions: cfg.Upload.AllowedExtensions,
		Parallelism:       cfg.Upload.Parallelism,
		ThumbnailSize:     cfg.Upload.ThumbnailSize,
	})
	dashboardService := services.NewDashboardService(applicationRepo, claimRepo, policyRepo, accountRepo, statsCache, cfg.Redis.TTL)

	return &services.ServiceContainer{
		AccountService:     services.NewAccountService(accountRepo, tokens),
		PolicyService:      services.NewPolicyService(policyRepo, accountRepo, dashboardService),
		ApplicationService: services.NewApplicationService(applicationRepo, policyRepo, dashboardService),
		ClaimService:       services.NewClaimService(claimRepo, policyRepo, dashboardService),
		UploadService:      uploadService,
		VaultService:       services.NewVaultService(vaultRepo, uploadService),
		DashboardService:   dashboardService,
	}
}

func initializeHandlers(services *services.ServiceContainer, tokens *auth.TokenManager) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New(), tokens)

	return &handlers.AppHandlers{
		AccountHandler:     handlers.NewAccountHandler(baseHandler, services.AccountService),
		PolicyHandler:      handlers.NewPolicyHandler(baseHandler, services.PolicyService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
		ClaimHandler:       handlers.NewClaimHandler(baseHandler, services.ClaimService),
		UploadHandler:      handlers.NewUploadHandler(baseHandler, services.UploadService),
		VaultHandler:       handlers.NewVaultHandler(baseHandler, services.VaultService),
		DashboardHandler:   handlers.NewDashboardHandler(baseHandler, services.DashboardService),
		HealthHandler:      handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = 32 << 20
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// initializeCache connects to Redis when an address is configured. Any
// failure falls back to recomputing the dashboard on every request.
func initializeCache(ctx context.Context, cfg *config.Config) cache.Cache {
	if cfg.Redis.Addr == "" {
		logger.Info("Redis not configured, dashboard cache disabled")
		return cache.NoopCache{}
	}

	redisCache, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.WithError(err).Warn("Redis unavailable, dashboard cache disabled")
		return cache.NoopCache{}
	}
	logger.Info("Redis connected", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	return redisCache
}

func seedFirstAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config, accounts services.AccountService) error {
	return accounts.SeedFirstAdmin(ctx, db, cfg.FirstAdminEmail, cfg.FirstAdminPassword, cfg.FirstAdminCompany)
}

func storageConfig(cfg *config.Config) storage.Config {
	return storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	}
}

// staticFiles serves local uploads when their public URL is a path on this
// server.
func staticFiles(cfg *config.Config) routes.StaticFiles {
	if cfg.Storage.Type != storage.TypeLocal || !strings.HasPrefix(cfg.Storage.BaseURL, "/") {
		return routes.StaticFiles{}
	}
	return routes.StaticFiles{URLPrefix: cfg.Storage.BaseURL, Dir: cfg.Storage.BasePath}
}
