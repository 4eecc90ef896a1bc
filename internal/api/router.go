package api

import (
	"rag-mecanico/docs"
	"rag-mecanico/internal/api/handlers"
	"rag-mecanico/pkg/auth"
	"rag-mecanico/pkg/config"
	"rag-mecanico/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// SetupRouter wires the HTTP API. jwtManager may be nil, in which case the
// knowledge write path is open.
func SetupRouter(
	chatHandler *handlers.ChatHandler,
	speechHandler *handlers.SpeechHandler,
	knowledgeHandler *handlers.KnowledgeHandler,
	healthHandler *handlers.HealthHandler,
	jwtManager *auth.JWTManager,
	serverCfg *config.ServerConfig,
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
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Post("/chat", chatHandler.Chat)
	api.Post("/speak", speechHandler.Speak)
	api.Get("/health", healthHandler.Health)
	api.Get("/index-status", healthHandler.IndexStatus)

	if jwtManager != nil {
		api.Post("/add-knowledge",
			middleware.AuthMiddleware(jwtManager, auth.ScopeKnowledgeWrite, appLogger),
			knowledgeHandler.AddKnowledge,
		)
	} else {
		appLogger.Warn("KNOWLEDGE_JWT_SECRET not set, /api/add-knowledge is unauthenticated")
		api.Post("/add-knowledge", knowledgeHandler.AddKnowledge)
	}

	return app
}
