package pageController

import (
	"context"
	"strings"

	"smartscholar/models"
	"smartscholar/navigation"
	reviewValidator "smartscholar/validators/review"

	"github.com/gofiber/fiber/v2"
)

type reviewCard struct {
	models.Review
	StarIcons string
}

func (pc *Controller) feedbackDefaults(ctx context.Context, bind fiber.Map, nav *navigation.Session) error {
	reviews, err := pc.Reviews.List(ctx)
	if err != nil {
		return err
	}

	cards := make([]reviewCard, len(reviews))
	for i, r := range reviews {
		cards[i] = reviewCard{Review: r, StarIcons: strings.Repeat("⭐", r.Stars)}
	}

	// one entry per star button, true when it is lit
	stars := make([]bool, navigation.MaxRating)
	for i := range stars {
		stars[i] = i < nav.Rating()
	}

	bind["Rating"] = nav.Rating()
	bind["Stars"] = stars
	bind["Reviews"] = cards
	return nil
}

// SelectStar handles a click on one of the rating stars.
func (pc *Controller) SelectStar(c *fiber.Ctx) error {
	index, err := c.ParamsInt("star")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid rating!")
	}

	state, err := pc.Sessions.Load(c)
	if err != nil {
		return err
	}
	if err := state.Nav.SelectStar(index); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid rating!")
	}
	_ = state.Nav.Goto(navigation.StepFeedback)
	return pc.saveAndRedirect(c, state)
}

// SubmitReview stores the review form with the selected rating, then clears the rating.
func (pc *Controller) SubmitReview(c *fiber.Ctx) error {
	state, err := pc.Sessions.Load(c)
	if err != nil {
		return err
	}
	_ = state.Nav.Goto(navigation.StepFeedback)

	req := new(reviewValidator.ReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return pc.saveAndRender(c, state, fiber.Map{"Warning": "Invalid form data!"})
	}
	req.Stars = state.Nav.Rating()

	if errs := reviewValidator.Validate(req); len(errs) > 0 {
		return pc.saveAndRender(c, state, fiber.Map{
			"Warning":     reviewValidator.First(errs),
			"NameValue":   req.Name,
			"MessageText": req.Message,
		})
	}

	review := models.Review{Name: req.Name, Message: req.Message, Stars: req.Stars}
	if err := pc.Reviews.Add(c.UserContext(), &review); err != nil {
		return err
	}
	state.Nav.ResetRating()
	return pc.saveAndRender(c, state, fiber.Map{"Success": "Thank you for your review!"})
}

func (pc *Controller) DeleteReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid review!")
	}

	state, err := pc.Sessions.Load(c)
	if err != nil {
		return err
	}
	_ = state.Nav.Goto(navigation.StepFeedback)

	if err := pc.Reviews.Delete(c.UserContext(), uint(id)); err != nil {
		return err
	}
	return pc.saveAndRender(c, state, fiber.Map{"Warning": "Review deleted!"})
}
