package middleware

import (
	"strings"

	"quizroom/internal/domain"
	"quizroom/internal/logger"
	"quizroom/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	SessionKey          = "session" // Key for storing the session in fiber.Ctx locals
)

// Protected is a middleware function that protects routes by requiring a
// valid bearer token. It validates the token using the provided AuthService
// and sets the session in the context.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "MISSING_AUTH_HEADER",
				Message: "Authorization header is missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_AUTH_SCHEME",
				Message: "Authorization scheme is not Bearer",
				Status:  fiber.StatusUnauthorized,
			})
		}

		tokenString := strings.TrimPrefix(authHeader, BearerSchema)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "EMPTY_TOKEN",
				Message: "Token is empty",
				Status:  fiber.StatusUnauthorized,
			})
		}

		session, err := authService.ValidateJWT(c.Context(), tokenString)
		if err != nil {
			logger.Get().Debug("Bearer token rejected", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: err.Error(),
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(SessionKey, session)
		return c.Next()
	}
}

// RequireRole gates a route on the session's role. Must run after Protected.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := SessionFromCtx(c)
		if session == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    string(domain.CodeUnauthorized),
				Message: "An active session is required",
				Status:  fiber.StatusUnauthorized,
			})
		}
		if session.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
				Code:    string(domain.CodeForbidden),
				Message: "Operation requires the " + string(role) + " role",
				Status:  fiber.StatusForbidden,
			})
		}
		return c.Next()
	}
}

// SessionFromCtx returns the session stored by Protected, or nil.
func SessionFromCtx(c *fiber.Ctx) *domain.Session {
	session, _ := c.Locals(SessionKey).(*domain.Session)
	return session
}
