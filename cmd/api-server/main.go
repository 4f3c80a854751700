package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"animehub/database"
	"animehub/internal/config"
	"animehub/internal/handler"
	"animehub/internal/middleware"
	"animehub/internal/repository"
	"animehub/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("could not get database instance", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Redis backs the failed-login throttle
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Error("invalid REDIS_URL", "error", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	animeRepo := repository.NewAnimeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	reactionRepo := repository.NewReactionRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	statusRepo := repository.NewWatchStatusRepository(db)

	// Services
	loginLimiter := service.NewLoginLimiter(redisClient, cfg.LoginMaxAttempts, cfg.LoginAttemptTTL)
	authService := service.NewAuthService(userRepo, refreshTokenRepo, loginLimiter, cfg)
	userService := service.NewUserService(userRepo)
	animeService := service.NewAnimeService(animeRepo)
	commentService := service.NewCommentService(commentRepo, animeRepo)
	reactionService := service.NewReactionService(reactionRepo, commentRepo)
	ratingService := service.NewRatingService(ratingRepo, animeRepo)
	statusService := service.NewWatchStatusService(statusRepo, animeRepo)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	requireAuth := middleware.RequireAuth(authService)
	optionalAuth := middleware.OptionalAuth(authService)
	requireAdmin := middleware.RequireAdmin()

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitPerSec, cfg.RateLimitBurst))

	handler.NewAuthHandler(authService).RegisterRoutes(api.Group("/auth"))
	handler.NewProfileHandler(userService).RegisterRoutes(api.Group("/profile", requireAuth))

	anime := api.Group("/anime")
	handler.NewAnimeHandler(animeService).RegisterRoutes(anime, requireAuth, requireAdmin)
	handler.NewRatingHandler(ratingService).RegisterRoutes(anime, requireAuth, optionalAuth)
	handler.NewWatchStatusHandler(statusService).RegisterRoutes(anime, requireAuth, optionalAuth)

	handler.NewCommentHandler(commentService).RegisterRoutes(api, requireAuth, optionalAuth)
	handler.NewReactionHandler(reactionService).RegisterRoutes(api, requireAuth)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting HTTP server", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
