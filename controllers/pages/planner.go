package pageController

import (
	"errors"

	"smartscholar/models"
	"smartscholar/navigation"
	"smartscholar/planner"
	plannerValidator "smartscholar/validators/planner"

	"github.com/gofiber/fiber/v2"
)

func plannerDefaults(bind fiber.Map, plan planner.Input) {
	difficulty := string(plan.Difficulty)
	if difficulty == "" {
		difficulty = models.Placeholder
	}
	bind["Plan"] = plan
	bind["Difficulty"] = difficulty
	bind["Difficulties"] = planner.Difficulties
	bind["MaxHours"] = planner.MaxHours
}

// parsePlanForm reads the planner fields from the request body. ok is false when the
// request carries no form.
func parsePlanForm(c *fiber.Ctx) (planner.Input, bool) {
	if len(c.Body()) == 0 {
		return planner.Input{}, false
	}
	req := new(plannerValidator.StudyPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return planner.Input{}, false
	}
	return req.Input(), true
}

// GeneratePlan handles the planner's Generate button.
func (pc *Controller) GeneratePlan(c *fiber.Ctx) error {
	state, err := pc.Sessions.Load(c)
	if err != nil {
		return err
	}
	_ = state.Nav.Goto(navigation.StepPlanner)

	input, ok := parsePlanForm(c)
	if !ok {
		return pc.saveAndRender(c, state, fiber.Map{"Error": "Invalid form data!"})
	}
	state.Plan = input
	if err := state.Save(); err != nil {
		return err
	}

	plan, err := pc.Planner.Generate(input)
	if errors.Is(err, planner.ErrIncompletePlan) {
		return pc.render(c, state, fiber.Map{"Error": "⚠ Fill all fields before generating the plan!"})
	}
	if err != nil {
		return err
	}

	return pc.render(c, state, fiber.Map{"Routine": planner.Lines(plan)})
}
