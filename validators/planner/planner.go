package plannerValidator

import (
	"smartscholar/middleware"
	"smartscholar/models"
	"smartscholar/planner"
	"smartscholar/validators"

	"github.com/gofiber/fiber/v2"
)

type StudyPlanRequest struct {
	CollegeHours float64 `json:"collegeHours" form:"college_hours"`
	StudyHours   float64 `json:"studyHours" form:"study_hours"`
	SleepHours   float64 `json:"sleepHours" form:"sleep_hours"`
	Difficulty   string  `json:"difficulty" form:"difficulty" validate:"omitempty,oneof=Select Easy Moderate Hard"`
}

var messages = map[string]string{
	"difficulty": "Difficulty must be one of Easy, Moderate or Hard!",
}

// Input clamps the hours to the planner range. The placeholder difficulty becomes empty.
func (r *StudyPlanRequest) Input() planner.Input {
	in := planner.Input{
		CollegeHours: validators.Clamp(r.CollegeHours, 0, planner.MaxHours),
		StudyHours:   validators.Clamp(r.StudyHours, 0, planner.MaxHours),
		SleepHours:   validators.Clamp(r.SleepHours, 0, planner.MaxHours),
	}
	if r.Difficulty != models.Placeholder {
		in.Difficulty = planner.Difficulty(r.Difficulty)
	}
	return in
}

func Validate(r *StudyPlanRequest) map[string]string {
	return validators.Check(r, messages)
}

func StudyPlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StudyPlanRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := Validate(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		input := reqData.Input()
		c.Locals("validatedStudyPlan", &input)
		return c.Next()
	}
}
