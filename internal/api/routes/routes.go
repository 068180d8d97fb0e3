package routes

import (
	"time"

	"file-portal-backend/internal/api/handlers"
	"file-portal-backend/internal/api/middleware"
	"file-portal-backend/internal/auth"
	"file-portal-backend/internal/config"
	"file-portal-backend/internal/database/models"
	"file-portal-backend/internal/repository"
	"file-portal-backend/internal/service"
	"file-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, store storage.ObjectStore, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	fileRepo := repository.NewFileUploadRepository(db)
	relatedRepo := repository.NewRelatedFileRepository(db)

	// Initialize auth and services
	tokenService := auth.NewService(cfg.JWTSecret, 24*time.Hour)
	authMiddleware := auth.NewMiddleware(tokenService)

	urlExpiry := time.Duration(cfg.SignedURLExpiryMins) * time.Minute

	authService := service.NewAuthService(userRepo, sessionRepo, tokenService, validator)
	userService := service.NewUserService(userRepo, validator)
	uploadService := service.NewUploadService(fileRepo, userRepo, relatedRepo, store, urlExpiry)
	templateService := service.NewTemplateService(fileRepo, store)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, store)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	tenantHandler := handlers.NewTenantHandler(userService)
	fileHandler := handlers.NewFileHandler(uploadService)
	templateHandler := handlers.NewTemplateHandler(templateService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public auth routes
	authGroup := router.Group("/api/v1/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
	}

	// API v1 routes - all endpoints below require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.POST("/auth/logout", authHandler.Logout)

		adminRoles := authMiddleware.RequireRoles(models.RoleRootAdmin, models.RoleTenantAdmin)

		// User administration routes
		users := v1.Group("/users")
		{
			users.POST("", adminRoles, userHandler.AddUser)
			users.GET("", adminRoles, userHandler.ListUsers)
			users.GET("/only-users", adminRoles, userHandler.ListOnlyUsers)
			users.DELETE("/:userId", adminRoles, userHandler.DeleteUser)
			users.PUT("/:userId/password", adminRoles, userHandler.ResetPassword)
			users.PUT("/:userId/role", adminRoles, userHandler.ManageRole)
			users.PUT("/:userId/disable", adminRoles, userHandler.DisableUser)
			users.PUT("/:userId/enable", adminRoles, userHandler.EnableUser)
		}

		// Tenant routes
		v1.GET("/tenants", authMiddleware.RequireRoles(models.RoleRootAdmin), tenantHandler.ListTenants)

		// File routes
		files := v1.Group("/files")
		{
			files.POST("/upload", fileHandler.UploadFile)
			files.GET("", fileHandler.ListFiles)
			files.GET("/mine", fileHandler.ListMyFiles)
			files.GET("/:fileId/url", fileHandler.GetFileURL)
			files.GET("/:fileId/download", fileHandler.DownloadFile)
			files.POST("/:fileId/related", fileHandler.AddRelatedFile)
			files.GET("/:fileId/related", fileHandler.ListRelatedFiles)
			files.DELETE("/:fileId/related/:relatedId", fileHandler.DeleteRelatedFile)
			files.PUT("/:fileId/promote-global-template", templateHandler.PromoteGlobalTemplate)
		}

		// Folder routes
		folders := v1.Group("/folders")
		{
			folders.GET("", fileHandler.ListFolders)
			folders.POST("", fileHandler.CreateFolder)
		}

		// Template routes
		templates := v1.Group("/templates")
		{
			templates.GET("", templateHandler.ListTemplates)
			templates.GET("/global", templateHandler.GetGlobalTemplate)
			templates.POST("/:fileId", templateHandler.SaveTemplate)
			templates.GET("/:fileId", templateHandler.GetTemplate)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, nil)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
