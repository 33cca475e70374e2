package handlers

import (
	"github.com/SscSPs/currency_converter/cmd/docs"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	r.Use(corsMiddleware(cfg))

	r.GET("/status", getStatus)
	r.GET("/health", healthCheck(services.Health))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("")
	currencies := registerCurrencyRoutes(api, services.Currency)
	registerCurrencyQuotationRoutes(currencies, services.CurrencyQuotation)
	registerConverterRoutes(api, services.Converter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	if cfg.AllowsAllOrigins() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsCfg.AddExposeHeaders("X-Request-ID")
	return cors.New(corsCfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
