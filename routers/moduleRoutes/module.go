package moduleRoutes

import (
	controllers "onlynerds/controllers/module"
	"onlynerds/middleware"
	validators "onlynerds/validators/module"

	"github.com/gofiber/fiber/v2"
)

func SetupModuleRoutes(app *fiber.App) {
	moduleGroup := app.Group("/modules")

	moduleGroup.Get("/course/:courseId", controllers.GetModulesByCourse)
	moduleGroup.Get("/:id", controllers.GetModuleById)
	moduleGroup.Post("/", middleware.WalletAuth, validators.CreateModule(), controllers.CreateModule)
	moduleGroup.Post("/reorder", middleware.WalletAuth, validators.ReorderModules(), controllers.ReorderModules)
	moduleGroup.Put("/:id", middleware.WalletAuth, validators.UpdateModule(), controllers.UpdateModule)
	moduleGroup.Delete("/:id", middleware.WalletAuth, controllers.DeleteModule)
	moduleGroup.Post("/:id/duplicate", middleware.WalletAuth, controllers.DuplicateModule)
}
