package userRoutes

import (
	userControllers "onlynerds/controllers/userControllers"
	"onlynerds/middleware"
	userValidators "onlynerds/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Put("/profile", middleware.WalletAuth, userValidators.UpdateProfile(), userControllers.UpdateProfile)
	userGroup.Get("/:address", userControllers.GetUser)
	userGroup.Get("/:address/stats", userControllers.GetUserStats)
	userGroup.Get("/:address/profile-complete", userControllers.GetProfileComplete)
}
