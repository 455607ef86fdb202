package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/SocioProphet/zenflows/internal/http/handlers"
	httpMW "github.com/SocioProphet/zenflows/internal/http/middleware"
)

type RouterConfig struct {
	AllowOrigins []string

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware

	ResourceHandler      *httpH.ResourceHandler
	RecipeHandler        *httpH.RecipeHandler
	SpecificationHandler *httpH.SpecificationHandler
	InstanceHandler      *httpH.InstanceHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.CORS(cfg.AllowOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Economic resources
		if cfg.ResourceHandler != nil {
			protected.GET("/resources", cfg.ResourceHandler.List)
			protected.POST("/resources", cfg.ResourceHandler.Create)
			protected.GET("/resources/:id", cfg.ResourceHandler.Get)
			protected.PATCH("/resources/:id", cfg.ResourceHandler.Update)
			protected.DELETE("/resources/:id", cfg.ResourceHandler.Delete)
		}

		// Recipe exchanges
		if cfg.RecipeHandler != nil {
			protected.GET("/recipe-exchanges", cfg.RecipeHandler.ListExchanges)
			protected.POST("/recipe-exchanges", cfg.RecipeHandler.CreateExchange)
			protected.GET("/recipe-exchanges/:id", cfg.RecipeHandler.GetExchange)
			protected.PATCH("/recipe-exchanges/:id", cfg.RecipeHandler.UpdateExchange)
			protected.DELETE("/recipe-exchanges/:id", cfg.RecipeHandler.DeleteExchange)
		}

		// Resource specifications
		if cfg.SpecificationHandler != nil {
			protected.GET("/resource-specifications", cfg.SpecificationHandler.List)
			protected.POST("/resource-specifications", cfg.SpecificationHandler.Create)
			protected.GET("/resource-specifications/:id", cfg.SpecificationHandler.Get)
		}

		// Instance specs (singleton)
		if cfg.InstanceHandler != nil {
			protected.GET("/instance-specs", cfg.InstanceHandler.Get)
			protected.POST("/instance-specs", cfg.InstanceHandler.Init)
		}
	}

	return r
}
