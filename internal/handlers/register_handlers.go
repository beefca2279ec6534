package handlers

import (
	"github.com/SscSPs/purchase_transactions/cmd/docs"
	portssvc "github.com/SscSPs/purchase_transactions/internal/core/ports/services"
	"github.com/SscSPs/purchase_transactions/internal/middleware"
	"github.com/SscSPs/purchase_transactions/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// APIBasePath is the prefix of every purchaser endpoint.
const APIBasePath = "/api/purchaser"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// limiterInstance may be nil to disable rate limiting.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
) {
	r.GET("/health", getHealth)

	setupPurchaserRoutes(r, cfg, services, limiterInstance)

	setupSwaggerRoutes(r, cfg)
}

// setupPurchaserRoutes configures the /api/purchaser group
func setupPurchaserRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
) {
	api := r.Group(APIBasePath)
	if limiterInstance != nil {
		api.Use(middleware.RateLimit(limiterInstance))
	}
	if cfg.AuthEnabled {
		api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	}

	registerTransactionRoutes(api, services.Transaction)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = APIBasePath
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
