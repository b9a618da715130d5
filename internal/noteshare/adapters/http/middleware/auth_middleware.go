package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteshare/internal/noteshare/app"
	"noteshare/internal/noteshare/ports/services"
	"noteshare/pkg/logger"
)

// Messages for the auth middleware.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
	ErrorResolveUser        = "failed to resolve user"
)

const bearerPrefix = "Bearer "

// NewAuthMiddleware creates the middleware that resolves the caller's
// identity. The access token is validated locally, then the user is looked
// up by auth subject and provisioned on first login.
func NewAuthMiddleware(tokens services.TokenService, users *app.UserUseCase) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx, ok := ctx.Locals(LocalRequestContext).(context.Context)
		if !ok {
			requestCtx = ctx.Context()
		}
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": ErrorNoAuthHeader,
			})
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": ErrorInvalidTokenFormat,
			})
		}
		accessToken := strings.TrimPrefix(authHeader, bearerPrefix)

		authID, err := tokens.ValidateAccessToken(requestCtx, accessToken)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": ErrorInvalidToken,
			})
		}

		user, err := users.GetOrCreateUserByAuth(requestCtx, accessToken, authID)
		if err != nil {
			log.Error(requestCtx, ErrorResolveUser, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": ErrorResolveUser,
			})
		}

		ctx.Locals(LocalUserContext, requestCtx)
		ctx.Locals(LocalUser, user)

		return ctx.Next()
	}
}
