package challengeRoutes

import (
	controllers "onlynerds/controllers/challenge"
	validators "onlynerds/validators/challenge"

	"github.com/gofiber/fiber/v2"
)

// SetupChallengeRoutes sets up challenge routes. Challenges authenticate with
// per-request wallet signatures instead of the JWT middleware.
func SetupChallengeRoutes(app *fiber.App) {
	challengeGroup := app.Group("/challenges")

	challengeGroup.Get("/", validators.ChallengeList(), controllers.GetChallenges)
	challengeGroup.Post("/", validators.CreateChallenge(), controllers.CreateChallenge)
	challengeGroup.Get("/:id", controllers.GetChallenge)
	challengeGroup.Put("/:id", validators.UpdateChallenge(), controllers.UpdateChallenge)
	challengeGroup.Delete("/:id", validators.DeleteChallenge(), controllers.DeleteChallenge)
	challengeGroup.Post("/:id/submit", validators.SubmitChallenge(), controllers.SubmitChallenge)
}
