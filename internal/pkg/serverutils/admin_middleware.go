package serverutils

import (
	"ai-supportbot-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AdminAuthMiddleware accepts either credential: the static shared secret in
// X-API-Key, or a Bearer token whose claims carry role=admin. Rejections are
// a generic 401 with no missing-vs-malformed distinction.
func AdminAuthMiddleware(cfg config.AuthConfig) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		apiKey := ctx.Get("X-API-Key")
		if apiKey != "" && apiKey == cfg.AdminAPIKey {
			return ctx.Next()
		}

		authHeader := ctx.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr := authHeader[7:]

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err == nil && token.Valid {
				if claims, ok := token.Claims.(jwt.MapClaims); ok {
					if role, _ := claims["role"].(string); role == "admin" {
						return ctx.Next()
					}
				}
			}
		}

		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "missing or invalid credentials"})
	}
}
