package middleware

import (
	"strings"

	"shiftportal/config"
	"shiftportal/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func JWTSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "shiftmanagementsecretkey"))
}

func Auth(c *fiber.Ctx) error {
	// 1. Take the token from the Authorization header ("Bearer <token>")
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}
	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)

	// 2. Parse and validate
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token invalid or expired"})
	}

	// 3. Stash the identity claims so handlers can build the acting user
	claims := token.Claims.(jwt.MapClaims)
	c.Locals("username", claims["username"])
	c.Locals("name", claims["name"])
	c.Locals("role", claims["role"])

	return c.Next()
}

// ActorFromContext rebuilds the authenticated actor stored by Auth. Every
// handler takes its identity from here, never from request payloads.
func ActorFromContext(c *fiber.Ctx) model.Actor {
	actor := model.Actor{}
	if v, ok := c.Locals("username").(string); ok {
		actor.Username = v
	}
	if v, ok := c.Locals("name").(string); ok {
		actor.Name = v
	}
	if v, ok := c.Locals("role").(string); ok {
		actor.Role = v
	}
	return actor
}
