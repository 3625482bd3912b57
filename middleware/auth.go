// middleware/auth.go
package middleware

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the Bearer token and stores the caller's identity
// in c.Locals. Every failure answers with the UNAUTHENTICATED code so clients
// can distinguish an auth problem from a business rejection.
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return unauthenticated(c, "Missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return unauthenticated(c, "Invalid authorization header format")
	}

	tokenString := parts[1]
	jwtSecret := os.Getenv("JWT_SECRET")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return unauthenticated(c, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return unauthenticated(c, "Invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return unauthenticated(c, "Token expired")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return unauthenticated(c, "Invalid token claims")
	}

	c.Locals("userId", userID)
	c.Locals("email", claims["email"])

	return c.Next()
}

// GetUserID returns the authenticated caller's ID from the request context.
func GetUserID(c *fiber.Ctx) (string, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return "", fiber.NewError(401, "User not authenticated")
	}

	if id, ok := userID.(string); ok && id != "" {
		return id, nil
	}

	return "", fiber.NewError(401, "Invalid user ID format")
}

func unauthenticated(c *fiber.Ctx, message string) error {
	return c.Status(401).JSON(fiber.Map{
		"success": false,
		"code":    "UNAUTHENTICATED",
		"error":   message,
	})
}
