package pageController

import (
	"context"
	"errors"

	"smartscholar/middleware"
	"smartscholar/models"
	"smartscholar/navigation"
	"smartscholar/planner"
	"smartscholar/predictor"

	"github.com/gofiber/fiber/v2"
)

// ReviewStore is the persistence the feedback page needs.
type ReviewStore interface {
	Add(ctx context.Context, review *models.Review) error
	List(ctx context.Context) ([]models.Review, error)
	Delete(ctx context.Context, id uint) error
}

type Controller struct {
	Sessions     *middleware.Sessions
	Predictor    *predictor.Predictor
	Reviews      ReviewStore
	Planner      planner.Options
	ContactEmail string
}

var views = map[int]string{
	navigation.StepLanding:    "landing",
	navigation.StepHome:       "home",
	navigation.StepPrediction: "prediction",
	navigation.StepPlanner:    "planner",
	navigation.StepFeedback:   "feedback",
	navigation.StepContact:    "contact",
}

// Show renders the page of the visitor's current step.
func (pc *Controller) Show(c *fiber.Ctx) error {
	state, err := pc.Sessions.Load(c)
	if err != nil {
		return err
	}
	return pc.render(c, state, nil)
}

func (pc *Controller) Next(c *fiber.Ctx) error {
	state, err := pc.Sessions.Load(c)
	if err != nil {
		return err
	}

	if state.Nav.Step() == navigation.StepPlanner {
		// the planner's Next button submits the form it sits in
		if input, ok := parsePlanForm(c); ok {
			state.Plan = input
		}
	}

	if err := state.Nav.Next(pc.Planner.Ready(state.Plan)); errors.Is(err, navigation.ErrPlanIncomplete) {
		return pc.saveAndRender(c, state, fiber.Map{"Error": "⚠ Fill all study fields before going next!"})
	}

	return pc.saveAndRedirect(c, state)
}

func (pc *Controller) Back(c *fiber.Ctx) error {
	state, err := pc.Sessions.Load(c)
	if err != nil {
		return err
	}
	state.Nav.Back()
	return pc.saveAndRedirect(c, state)
}

// Goto handles the navigation bar.
func (pc *Controller) Goto(c *fiber.Ctx) error {
	step, err := c.ParamsInt("step")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid page!")
	}

	state, err := pc.Sessions.Load(c)
	if err != nil {
		return err
	}
	if err := state.Nav.Goto(step); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Page not found!")
	}
	return pc.saveAndRedirect(c, state)
}

func (pc *Controller) saveAndRedirect(c *fiber.Ctx, state *middleware.SessionState) error {
	if err := state.Save(); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (pc *Controller) saveAndRender(c *fiber.Ctx, state *middleware.SessionState, data fiber.Map) error {
	if err := state.Save(); err != nil {
		return err
	}
	return pc.render(c, state, data)
}

// render draws the page of state's step. data adds to, or overrides, the page defaults.
func (pc *Controller) render(c *fiber.Ctx, state *middleware.SessionState, data fiber.Map) error {
	nav := state.Nav
	bind := fiber.Map{
		"Title":    nav.Page() + " - SmartScholar",
		"Page":     nav.Page(),
		"Step":     nav.Step(),
		"Pages":    navigation.Pages,
		"Progress": nav.Progress(),
		"NavBar":   nav.NavBar(),
		"IsFirst":  nav.Step() == navigation.FirstStep,
		"IsLast":   nav.Step() == navigation.LastStep,
	}

	switch nav.Step() {
	case navigation.StepPrediction:
		pc.predictionDefaults(bind)
	case navigation.StepPlanner:
		plannerDefaults(bind, state.Plan)
	case navigation.StepFeedback:
		if err := pc.feedbackDefaults(c.UserContext(), bind, nav); err != nil {
			return err
		}
	case navigation.StepContact:
		bind["Team"] = team(pc.ContactEmail)
	}

	for k, v := range data {
		bind[k] = v
	}
	return c.Render(views[nav.Step()], bind)
}
