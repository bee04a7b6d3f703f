package apiController

import (
	"errors"

	"smartscholar/middleware"
	"smartscholar/planner"

	"github.com/gofiber/fiber/v2"
)

// StudyPlan generates the daily routine for the validated planner input
func (ctl *Controller) StudyPlan(c *fiber.Ctx) error {
	input, ok := c.Locals("validatedStudyPlan").(*planner.Input)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	plan, err := ctl.Planner.Generate(*input)
	if errors.Is(err, planner.ErrIncompletePlan) {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Fill all fields before generating the plan!", nil)
	}
	if err != nil {
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study plan generated!", fiber.Map{
		"blocks": plan,
		"lines":  planner.Lines(plan),
	})
}
