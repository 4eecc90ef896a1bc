package middleware

import (
	"strings"

	"rag-mecanico/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthMiddleware requires a bearer token signed by jwtManager that carries scope.
func AuthMiddleware(jwtManager *auth.JWTManager, scope string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(fiber.HeaderAuthorization)
		if token == "" {
			logger.Warn("Missing authorization token", zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization token required",
			})
		}

		token = strings.TrimPrefix(token, "Bearer ")

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Invalid token", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}
		if claims.Scope != scope {
			logger.Warn("Token scope rejected", zap.String("client_id", claims.ClientID), zap.String("scope", claims.Scope))
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Insufficient scope",
			})
		}

		c.Locals("clientID", claims.ClientID)

		return c.Next()
	}
}
