package apiController

import (
	"log"

	"smartscholar/middleware"
	"smartscholar/models"
	reviewValidator "smartscholar/validators/review"

	"github.com/gofiber/fiber/v2"
)

// ListReviews returns every review, most recent first
func (ctl *Controller) ListReviews(c *fiber.Ctx) error {
	reviews, err := ctl.Reviews.List(c.UserContext())
	if err != nil {
		log.Printf("Failed to fetch reviews: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", reviews)
}

// CreateReview stores a validated review
func (ctl *Controller) CreateReview(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReview").(*reviewValidator.ReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	review := models.Review{
		Name:    reqData.Name,
		Message: reqData.Message,
		Stars:   reqData.Stars,
	}
	if err := ctl.Reviews.Add(c.UserContext(), &review); err != nil {
		log.Printf("Failed to submit review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thank you for your review!", review)
}

// DeleteReview removes a review; unknown ids succeed too
func (ctl *Controller) DeleteReview(c *fiber.Ctx) error {
	id, ok := c.Locals("validatedReviewId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctl.Reviews.Delete(c.UserContext(), id); err != nil {
		log.Printf("Failed to delete review %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted!", nil)
}
