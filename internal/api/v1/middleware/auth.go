package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

// JWTAuth validates a bearer token. The token is read from the
// Authorization header first, then from the `token` query parameter so
// report download links work from a plain <a> tag.
func JWTAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return service.NewServiceError(constants.ErrCodeUnauthorized,
				errors.New("no token provided"))
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return service.NewServiceError(constants.ErrCodeUnauthorized, err)
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if id, ok := claims["id_user"].(float64); ok {
				c.Locals("id_user", int64(id))
			}
		}

		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}
