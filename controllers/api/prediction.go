package apiController

import (
	"errors"
	"log"

	"smartscholar/middleware"
	"smartscholar/models"
	"smartscholar/predictor"

	"github.com/gofiber/fiber/v2"
)

// Predict scores the validated prediction form
func (ctl *Controller) Predict(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPrediction").(*models.PredictionInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := ctl.Predictor.Predict(c.UserContext(), *reqData)
	switch {
	case errors.Is(err, predictor.ErrModelNotLoaded):
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Model not loaded.", nil)
	case err != nil:
		log.Printf("Prediction failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error during prediction: "+err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prediction complete!", result)
}

// Health reports whether the model and the review database are usable
func (ctl *Controller) Health(c *fiber.Ctx) error {
	data := fiber.Map{
		"model":    ctl.Predictor.Ready(),
		"database": true,
	}
	if err := ctl.Predictor.LoadError(); err != nil {
		data["modelError"] = err.Error()
	}
	if err := ctl.Reviews.Ping(c.UserContext()); err != nil {
		data["database"] = false
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Database unavailable!", data)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", data)
}
