package contestRoutes

import (
	controllers "onlynerds/controllers/contest"

	"github.com/gofiber/fiber/v2"
)

func SetupContestRoutes(app *fiber.App) {
	contestGroup := app.Group("/contest")

	contestGroup.Get("/count", controllers.GetContestCount)
	contestGroup.Get("/:id/participant/:address", controllers.GetParticipation)
}
