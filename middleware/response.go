package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// ErrorHandler answers errors that escaped a handler: a JSON envelope under /api, the
// error page everywhere else.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong. Please try again later."

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return JsonResponse(c, code, false, message, nil)
	}

	if renderErr := c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - SmartScholar",
		"ErrorCode":    code,
		"ErrorMessage": message,
	}); renderErr != nil {
		log.Printf("Failed to render error page: %v", renderErr)
		return c.Status(code).SendString(message)
	}
	return nil
}
