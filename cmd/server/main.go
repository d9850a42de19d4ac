package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"eksiblog/internal/auth"
	"eksiblog/internal/cache"
	"eksiblog/internal/config"
	"eksiblog/internal/db"
	"eksiblog/internal/handler"
	"eksiblog/internal/model"
	"eksiblog/internal/repository"
	"eksiblog/internal/router"
	"eksiblog/internal/service"
)

// @title Ekşi Blog API
// @version 1.0
// @description Blog backend with JWT session auth and per-user posts.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Post{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Post{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	identityService := service.NewIdentityService(userRepo, jwtService)
	postService := service.NewPostService(postRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(identityService)
	postHandler := handler.NewPostHandler(postService)

	// Register routes
	router.Register(e, cfg, authHandler, postHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
