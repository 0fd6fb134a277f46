package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"moving_ops/internal/config"
	"moving_ops/internal/database"
	"moving_ops/internal/handlers"
	"moving_ops/internal/middleware"
	"moving_ops/internal/migrations"
	"moving_ops/internal/redis"
	"moving_ops/internal/repository"
	"moving_ops/internal/services"
	"moving_ops/internal/shutdown"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := migrations.RunMigrations(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal(err)
	}

	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	ctx, shutdownManager := shutdown.NewManager(context.Background())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	// Services
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userService, redisClient, cfg.JWTSecret, seconds(cfg.SessionTimeout))
	orderService := services.NewOrderService(orderRepo, redisClient, seconds(cfg.CacheTTL))
	draftService := services.NewDraftService(orderService, redisClient, seconds(cfg.DraftTTL))
	ledgerService := services.NewLedgerService(txRepo)

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	go limiter.Run(ctx.Done())

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimitMiddleware(limiter))

	handlers.SetupRoutes(router, handlers.Handlers{
		Auth:   handlers.NewAuthHandler(authService, userService),
		Orders: handlers.NewOrderHandler(orderService),
		Drafts: handlers.NewDraftHandler(draftService),
		Ledger: handlers.NewLedgerHandler(ledgerService),
	}, authService)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	shutdownManager.Register(srv.Shutdown)
	shutdownManager.Register(func(context.Context) error { return redisClient.Close() })
	shutdownManager.Register(func(context.Context) error { return database.Close(db) })

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	shutdownManager.Wait()
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
