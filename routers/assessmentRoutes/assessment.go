package assessmentRoutes

import (
	controllers "onlynerds/controllers/assessment"
	"onlynerds/middleware"
	validators "onlynerds/validators/assessment"

	"github.com/gofiber/fiber/v2"
)

func SetupAssessmentRoutes(app *fiber.App) {
	assessmentGroup := app.Group("/assessments")

	assessmentGroup.Get("/:moduleId", controllers.GetAssessmentByModule)
	assessmentGroup.Post("/:moduleId", middleware.WalletAuth, validators.UpsertAssessment(), controllers.UpsertAssessment)
	assessmentGroup.Delete("/:moduleId", middleware.WalletAuth, controllers.DeleteAssessment)
}
