package authentication

import (
	"github.com/gofiber/fiber/v2"

	"innomatrics.com/go-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App) {
	//without JWT Token validation (without auth)
	auth := app.Group("/auth")
	auth.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Auth APIs")
	})
	auth.Post("/login", LoginHandler)
	auth.Post("/register", RegisterHandler)
	// JWT Middleware
	auth.Use(helper.JWTMiddleware())
	// Restricted Routes
	auth.Get("/me", MeHandler)
	auth.Post("/change-password", ChangePasswordHandler)
}
