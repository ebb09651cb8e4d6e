package authRoutes

import (
	authControllers "onlynerds/controllers/auth"
	authValidators "onlynerds/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/nonce", authValidators.Nonce(), authControllers.RequestNonce)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
}
