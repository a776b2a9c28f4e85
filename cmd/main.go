package main

import (
	"context"
	"log"

	"github.com/bgarnr/hekacms/config"
	"github.com/bgarnr/hekacms/db"
	"github.com/bgarnr/hekacms/db/migrations"
	"github.com/bgarnr/hekacms/internal/auth/handler"
	"github.com/bgarnr/hekacms/internal/auth/password"
	repo "github.com/bgarnr/hekacms/internal/auth/repository/postgres"
	"github.com/bgarnr/hekacms/internal/auth/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := migrations.Run(ctx, cfg.DBURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to create database pool: %v", err)
	}
	defer dbPool.Close()

	store := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	userService := service.NewUserService(store, tokenService, password.NewHasher())
	authHandler := handler.NewAuthHandler(userService, tokenService)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	handler.RegisterRoutes(app, authHandler)

	log.Printf("listening on :%s (%s)", cfg.Port, cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
