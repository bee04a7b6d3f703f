package reviewValidator

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTrimsAndReportsInOrder(t *testing.T) {
	r := &ReviewRequest{Name: "   ", Message: "  ", Stars: 0}
	errs := Validate(r)

	assert.Len(t, errs, 3)
	assert.Equal(t, "", r.Name)
	assert.Equal(t, "Please enter your name.", First(errs))

	r = &ReviewRequest{Name: " Asha ", Message: "", Stars: 0}
	errs = Validate(r)
	assert.Equal(t, "Asha", r.Name)
	assert.Equal(t, "Please enter your review message.", First(errs))

	r = &ReviewRequest{Name: "Asha", Message: "Great", Stars: 0}
	assert.Equal(t, "Please select a rating.", First(Validate(r)))

	r = &ReviewRequest{Name: "Asha", Message: "Great", Stars: 6}
	assert.Equal(t, "Please select a rating.", First(Validate(r)))
}

func TestValidateAccepts(t *testing.T) {
	r := &ReviewRequest{Name: "Asha", Message: " Loved the planner \n", Stars: 5}
	assert.Empty(t, Validate(r))
	assert.Equal(t, "Loved the planner", r.Message)
	assert.Equal(t, "", First(nil))
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Post("/reviews", CreateReview(), func(c *fiber.Ctx) error {
		return c.JSON(c.Locals("validatedReview"))
	})
	app.Delete("/reviews/:id", DeleteReview(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": c.Locals("validatedReviewId")})
	})
	return app
}

func TestCreateReviewHandler(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("POST", "/reviews", strings.NewReader(`{"name":" Ben ","message":"Nice","stars":4}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got ReviewRequest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, ReviewRequest{Name: "Ben", Message: "Nice", Stars: 4}, got)

	req = httptest.NewRequest("POST", "/reviews", strings.NewReader(`{"name":"Ben","message":"Nice"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Status bool              `json:"status"`
		Data   map[string]string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Status)
	assert.Equal(t, "Please select a rating.", body.Data["stars"])
}

func TestDeleteReviewHandler(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/reviews/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, id := range []string{"0", "-3", "abc"} {
		resp, err := app.Test(httptest.NewRequest("DELETE", "/reviews/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, id)
	}
}
