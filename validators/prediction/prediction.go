package predictionValidator

import (
	"smartscholar/middleware"
	"smartscholar/models"
	"smartscholar/validators"

	"github.com/gofiber/fiber/v2"
)

const SelectMessage = "Please select all dropdown values."

var messages = map[string]string{
	"extracurricular":   SelectMessage,
	"parentalEducation": SelectMessage,
}

// Normalize clamps the numeric fields to the ranges the form accepts.
func Normalize(in *models.PredictionInput) {
	in.StudyHours = validators.Clamp(in.StudyHours, 0, 24)
	in.Attendance = validators.Clamp(in.Attendance, 0, 100)
	in.PreviousGrade = validators.Clamp(in.PreviousGrade, 0, 100)
}

// Validate normalizes in and reports unselected dropdowns.
func Validate(in *models.PredictionInput) map[string]string {
	Normalize(in)
	return validators.Check(in, messages)
}

func Predict() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.PredictionInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := Validate(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPrediction", reqData)
		return c.Next()
	}
}
