package apiRoutes

import (
	apiController "smartscholar/controllers/api"
	plannerValidator "smartscholar/validators/planner"
	predictionValidator "smartscholar/validators/prediction"
	reviewValidator "smartscholar/validators/review"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// SetupAPIRoutes sets up the JSON API
func SetupAPIRoutes(app *fiber.App, ctl *apiController.Controller) {
	api := app.Group("/api")

	api.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE",
		AllowHeaders: "Content-Type",
	}))

	api.Get("/health", ctl.Health)

	api.Post("/predict", predictionValidator.Predict(), ctl.Predict)
	api.Post("/study-plan", plannerValidator.StudyPlan(), ctl.StudyPlan)

	// Reviews
	api.Get("/reviews", ctl.ListReviews)
	api.Post("/reviews", reviewValidator.CreateReview(), ctl.CreateReview)
	api.Delete("/reviews/:id", reviewValidator.DeleteReview(), ctl.DeleteReview)
}
