package courseRoutes

import (
	controllers "onlynerds/controllers/course"
	"onlynerds/middleware"
	validators "onlynerds/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course routes: CRUD, listing, forking and votes.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Listing and details
	courseGroup.Get("/list", validators.CourseList(), controllers.GetCourseList)
	courseGroup.Get("/top", controllers.GetTopRatedCourses)
	courseGroup.Get("/creator/:address", controllers.GetCoursesByCreator)
	courseGroup.Get("/:id", controllers.GetCourseById)

	// Course CRUD
	courseGroup.Post("/", middleware.WalletAuth, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.WalletAuth, validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.WalletAuth, controllers.DeleteCourse)

	// Forking and ranking
	courseGroup.Post("/:id/fork", middleware.WalletAuth, controllers.ForkCourse)
	courseGroup.Post("/:id/vote", middleware.WalletAuth, validators.Vote(), controllers.VoteCourse)
}
