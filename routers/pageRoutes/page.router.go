package pageRoutes

import (
	pageController "smartscholar/controllers/pages"

	"github.com/gofiber/fiber/v2"
)

// SetupPageRoutes sets up the server rendered pages
func SetupPageRoutes(app *fiber.App, ctl *pageController.Controller) {
	app.Get("/", ctl.Show)

	nav := app.Group("/nav")
	nav.Post("/next", ctl.Next)
	nav.Post("/back", ctl.Back)
	nav.Post("/goto/:step", ctl.Goto)

	app.Post("/predict", ctl.Predict)
	app.Post("/planner", ctl.GeneratePlan)

	feedback := app.Group("/feedback")
	feedback.Post("/rating/:star", ctl.SelectStar)
	feedback.Post("/reviews", ctl.SubmitReview)
	feedback.Post("/reviews/:id/delete", ctl.DeleteReview)
}
