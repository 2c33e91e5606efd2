package app

import (
	"fmt"

	"artizia_backend/database"
	"artizia_backend/internal/config"
	"artizia_backend/internal/handlers"
	"artizia_backend/internal/logger"
	"artizia_backend/internal/middleware"
	"artizia_backend/internal/repositories"
	"artizia_backend/internal/routes"
	"artizia_backend/internal/services"
	"artizia_backend/internal/storage"
	"artizia_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := SeedRoles(gormDB); err != nil {
		logger.Fatal("Failed to seed roles", "error", err)
	}
	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(storageInstance)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	router := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(router, appHandlers)

	return router
}

func initializeServices(storageInstance storage.Storage) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	tokenRepo := repositories.NewAccessTokenRepository()
	vendorRepo := repositories.NewVendorProfileRepository()
	categoryRepo := repositories.NewCategoryRepository()
	productRepo := repositories.NewProductRepository()

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, vendorRepo, tokenRepo),
		CatalogService: services.NewCatalogService(productRepo, categoryRepo, vendorRepo),
		VendorService:  services.NewVendorService(productRepo, categoryRepo, vendorRepo, storageInstance),
		AdminService:   services.NewAdminService(userRepo, vendorRepo, productRepo, categoryRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, container.AuthService),
		CatalogHandler: handlers.NewCatalogHandler(baseHandler, container.CatalogService),
		VendorHandler:  handlers.NewVendorHandler(baseHandler, container.VendorService),
		AdminHandler:   handlers.NewAdminHandler(baseHandler, container.AdminService),
		FileHandler:    handlers.NewFileHandler(baseHandler, storageInstance),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.DBMiddleware(db))
	return router
}
