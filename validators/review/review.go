package reviewValidator

import (
	"strings"

	"smartscholar/middleware"
	"smartscholar/validators"

	"github.com/gofiber/fiber/v2"
)

type ReviewRequest struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
	Stars   int    `json:"stars" form:"stars" validate:"min=1,max=5"`
}

var messages = map[string]string{
	"name":    "Please enter your name.",
	"message": "Please enter your review message.",
	"stars":   "Please select a rating.",
}

// Order is the order in which the review form reports problems, one at a time.
var Order = []string{"name", "message", "stars"}

// Validate trims name and message, then checks that both are set and stars is 1–5.
func Validate(r *ReviewRequest) map[string]string {
	r.Name = strings.TrimSpace(r.Name)
	r.Message = strings.TrimSpace(r.Message)
	return validators.Check(r, messages)
}

// First returns the first problem in Order, or "" when there is none.
func First(errors map[string]string) string {
	for _, field := range Order {
		if msg, ok := errors[field]; ok {
			return msg
		}
	}
	return ""
}

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := Validate(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

func DeleteReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Review ID must be a positive number!"})
		}

		c.Locals("validatedReviewId", uint(id))
		return c.Next()
	}
}
