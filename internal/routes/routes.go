package routes

import (
	"insurance_backend/docs"
	"insurance_backend/internal/handlers"
	"insurance_backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// StaticFiles maps a URL prefix to the directory of locally stored uploads.
// A zero value disables static serving.
type StaticFiles struct {
	URLPrefix string
	Dir       string
}

// RegisterRoutes mounts every HTTP route on the engine.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	static StaticFiles,
	swagger bool,
) {
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)

	// HTTP API v1
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AccountHandler.RegisterRoutes(api)
		appHandlers.PolicyHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.ClaimHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)
		appHandlers.VaultHandler.RegisterRoutes(api)
		appHandlers.DashboardHandler.RegisterRoutes(api)
	}

	if swagger {
		docs.SwaggerInfo.BasePath = "/api/v1"
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if static.URLPrefix != "" && static.Dir != "" {
		ginRouter.Static(static.URLPrefix, static.Dir)
		logger.Info("Serving local uploads", "prefix", static.URLPrefix, "dir", static.Dir)
	}
}
