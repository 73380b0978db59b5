package api

import (
	"support-kb/docs"
	"support-kb/internal/api/handlers"
	"support-kb/pkg/config"
	"support-kb/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	productHandler *handlers.ProductHandler,
	supportHandler *handlers.SupportHandler,
	issueHandler *handlers.IssueHandler,
	healthHandler *handlers.HealthHandler,
	serverCfg *config.ServerConfig,
	toolCfg *config.ToolConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				appLogger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type," + middleware.ToolSecretHeader,
	}))
	app.Use(logger.New())

	// importing docs registers the OpenAPI document with swag
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Get("", healthHandler.Info)

	api.Get("/products", productHandler.GetProduct)
	api.Post("/products", productHandler.GetProduct)

	api.Get("/faq", supportHandler.SearchFAQ)
	api.Post("/faq", supportHandler.SearchFAQ)

	api.Get("/troubleshoot", supportHandler.Troubleshoot)
	api.Post("/troubleshoot", supportHandler.Troubleshoot)

	api.Get("/install", supportHandler.InstallationGuide)
	api.Post("/install", supportHandler.InstallationGuide)

	toolSecret := middleware.ToolSecretMiddleware(toolCfg.Secret, appLogger)
	api.Post("/issues", toolSecret, issueHandler.LogIssue)
	api.All("/issues", issueHandler.MethodNotAllowed)

	api.Post("/admin/reload", toolSecret, healthHandler.Reload)

	return app
}
