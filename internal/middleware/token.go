package middleware

import (
	"strings"

	"BlogGolang/internal/entity"
	jwtPkg "BlogGolang/pkg/jwt"
	"BlogGolang/pkg/redis"
	"BlogGolang/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const TokenCookieName = "token"

type tokenMiddleware struct {
	redis redis.IRedis
}

func newTokenMiddleware(redisServer redis.IRedis) *tokenMiddleware {
	return &tokenMiddleware{
		redis: redisServer,
	}
}

// extractToken prefers the session cookie and falls back to a Bearer
// Authorization header for non-browser clients.
func extractToken(ctx *fiber.Ctx) string {
	if cookie := ctx.Cookies(TokenCookieName); cookie != "" {
		return cookie
	}

	authHeader := ctx.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	requestID := m.GetRequestID(ctx)

	tokenString := extractToken(ctx)
	if tokenString == "" {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
		}).Warn("No session token on request")
		return ctx.Status(fiber.StatusUnauthorized).
			JSON(response.Fail("Unauthorized", "missing or invalid session token"))
	}

	claims, err := jwtPkg.VerifyToken(tokenString)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Token verification failed")
		return ctx.Status(fiber.StatusUnauthorized).
			JSON(response.Fail("Unauthorized", "missing or invalid session token"))
	}

	revoked, err := m.token.redis.IsTokenRevoked(ctx.UserContext(), tokenString)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check token revocation")
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(response.Fail("Internal server error", "failed to validate session"))
	}
	if revoked {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Rejected revoked session token")
		return ctx.Status(fiber.StatusUnauthorized).
			JSON(response.Fail("Unauthorized", "session has been logged out"))
	}

	if claims["id"] == nil || claims["email"] == nil || claims["username"] == nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      "Token claims are missing required fields",
		}).Warn("Token claims check")
		return ctx.Status(fiber.StatusUnauthorized).
			JSON(response.Fail("Unauthorized", "missing or invalid session token"))
	}

	user := entity.UserLoginData{
		ID:       claims["id"].(string),
		Email:    claims["email"].(string),
		Username: claims["username"].(string),
	}
	ctx.Locals("user", user)
	ctx.Locals("token", tokenString)

	return ctx.Next()
}
