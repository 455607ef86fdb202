package main

import (
	"fmt"
	"os"
	"time"

	"github.com/SocioProphet/zenflows/internal/conf"
	"github.com/SocioProphet/zenflows/internal/data/db"
	"github.com/SocioProphet/zenflows/internal/data/repos"
	zfhttp "github.com/SocioProphet/zenflows/internal/http"
	"github.com/SocioProphet/zenflows/internal/http/handlers"
	"github.com/SocioProphet/zenflows/internal/http/middleware"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
	"github.com/SocioProphet/zenflows/internal/services"
)

func main() {
	cfg, err := conf.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres
	postgresService, err := db.NewPostgresService(cfg.Postgres, log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos...")
	agentRepo := repos.NewAgentRepo(thePG, log)
	unitRepo := repos.NewUnitRepo(thePG, log)
	resourceRepo := repos.NewEconomicResourceRepo(thePG, log)
	specRepo := repos.NewResourceSpecificationRepo(thePG, log)
	exchangeRepo := repos.NewRecipeExchangeRepo(thePG, log)
	instanceRepo := repos.NewInstanceSpecsRepo(thePG, log)

	// Services
	log.Info("Setting up services...")
	authService := services.NewAuthService(thePG, log, agentRepo, cfg.JWTSecret, time.Duration(cfg.AccessTokenTTL)*time.Second)
	resourceService := services.NewResourceService(thePG, log, resourceRepo)
	specService := services.NewSpecificationService(thePG, log, specRepo)
	recipeService := services.NewRecipeService(thePG, log, exchangeRepo)
	instanceService := services.NewInstanceService(thePG, log, instanceRepo, unitRepo)

	// HTTP
	log.Info("Setting up HTTP server...")
	server := zfhttp.NewServer(zfhttp.RouterConfig{
		AllowOrigins:         cfg.AllowOrigins,
		AuthHandler:          handlers.NewAuthHandler(authService),
		AuthMiddleware:       middleware.NewAuthMiddleware(log, authService),
		ResourceHandler:      handlers.NewResourceHandler(log, resourceService),
		RecipeHandler:        handlers.NewRecipeHandler(log, recipeService),
		SpecificationHandler: handlers.NewSpecificationHandler(log, specService),
		InstanceHandler:      handlers.NewInstanceHandler(log, instanceService),
		HealthHandler:        handlers.NewHealthHandler(),
	})

	log.Info("Listening", "addr", cfg.HTTPAddr)
	if err := server.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("Server stopped", "error", err)
	}
}
