package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appHTTP "lofi-basho/internal/controller/http"
	"lofi-basho/internal/repo/persistent"
	"lofi-basho/internal/usecase"
	"lofi-basho/pkg/cache"
	"lofi-basho/pkg/config"
	"lofi-basho/pkg/database"
	"lofi-basho/pkg/jwt"
	"lofi-basho/pkg/logger"
	"lofi-basho/pkg/middleware"
	"lofi-basho/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "lofi-basho/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis: %v (continuing without rate limiting)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	jwtService := jwt.NewService(cfg.JWTSecret, time.Duration(cfg.AccessTokenExpires)*time.Minute)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	haikuRepo := persistent.NewHaikuRepository(a.db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.s3Client, a.log)
	haikuUseCase := usecase.NewHaikuUseCase(haikuRepo, a.log)

	// Initialize HTTP handlers
	authHandler := appHTTP.NewAuthHandler(authUseCase)
	userHandler := appHTTP.NewUserHandler(authUseCase, haikuUseCase)
	haikuHandler := appHTTP.NewHaikuHandler(haikuUseCase)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	r.POST("/token", authHandler.Token)
	r.POST("/register", authHandler.Register)
	r.GET("/users/:id", userHandler.GetUser)
	r.GET("/users/:id/haikus/", userHandler.GetUserHaikus)
	r.GET("/haikus/", haikuHandler.List)
	r.GET("/haikus/:id", haikuHandler.Get)

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(a.jwtService))
	if a.redisClient != nil {
		protected.Use(middleware.RateLimitMiddleware(a.redisClient, 100, time.Minute))
	}
	protected.Use(appHTTP.ResolveUser(authUseCase))
	{
		protected.GET("/users/me", authHandler.Me)
		protected.POST("/users/me/avatar", authHandler.UploadAvatar)
		protected.POST("/haikus/", haikuHandler.Create)
		protected.GET("/haikus/mine/", haikuHandler.Mine)
		protected.GET("/haikus/drafts/", haikuHandler.Drafts)
		protected.GET("/haikus/liked/", haikuHandler.Liked)
		protected.POST("/haikus/:id/like/", haikuHandler.ToggleLike)
		protected.GET("/haikus/:id/is-liked", haikuHandler.IsLiked)
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Server starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown HTTP server
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			return err
		}
	}

	a.log.Info("Server exited")
	return nil
}
