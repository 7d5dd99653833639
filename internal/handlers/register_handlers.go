package handlers

import (
	"github.com/SscSPs/price_tracker_app/cmd/docs"
	portssvc "github.com/SscSPs/price_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/price_tracker_app/internal/middleware"
	"github.com/SscSPs/price_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := registerValidators(); err != nil {
		return err
	}

	registerHealthRoutes(r)

	authLimiter, err := middleware.NewMemoryLimiter(cfg.AuthRateLimit)
	if err != nil {
		return err
	}

	api := r.Group("/api")
	registerPriceRoutes(api, services.Price)
	registerAuthRoutes(api, services.User, middleware.RateLimit(authLimiter))

	// Everything below requires a bearer token
	authed := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	registerWatchlistRoutes(authed, services.Watchlist)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
