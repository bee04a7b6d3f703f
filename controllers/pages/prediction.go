package pageController

import (
	"errors"
	"fmt"
	"log"

	"smartscholar/models"
	"smartscholar/navigation"
	"smartscholar/predictor"
	predictionValidator "smartscholar/validators/prediction"

	"github.com/gofiber/fiber/v2"
)

// predictionForm is the whole prediction form. Name, gender and the student checkbox
// are only echoed back, the model never sees them.
type predictionForm struct {
	Name              string  `form:"name"`
	Gender            string  `form:"gender"`
	IsStudent         bool    `form:"is_student"`
	StudyHours        float64 `form:"study_hours"`
	Attendance        int     `form:"attendance"`
	PreviousGrade     int     `form:"previous_grade"`
	Extracurricular   string  `form:"extracurricular"`
	ParentalEducation string  `form:"parental_education"`
}

func (f *predictionForm) input() models.PredictionInput {
	return models.PredictionInput{
		StudyHours:        f.StudyHours,
		Attendance:        f.Attendance,
		PreviousGrade:     f.PreviousGrade,
		Extracurricular:   f.Extracurricular,
		ParentalEducation: f.ParentalEducation,
	}
}

// keep copies the normalized values back so the form shows what was scored.
func (f *predictionForm) keep(in models.PredictionInput) {
	f.StudyHours = in.StudyHours
	f.Attendance = in.Attendance
	f.PreviousGrade = in.PreviousGrade
}

func (pc *Controller) predictionDefaults(bind fiber.Map) {
	bind["EducationLevels"] = models.EducationLevels
	bind["Genders"] = models.Genders
	bind["Form"] = predictionForm{}
	if err := pc.Predictor.LoadError(); err != nil {
		bind["ModelError"] = fmt.Sprintf("Failed to load model: %v", err)
	}
}

func (pc *Controller) Predict(c *fiber.Ctx) error {
	state, err := pc.Sessions.Load(c)
	if err != nil {
		return err
	}
	_ = state.Nav.Goto(navigation.StepPrediction)
	if err := state.Save(); err != nil {
		return err
	}

	form := new(predictionForm)
	if err := c.BodyParser(form); err != nil {
		return pc.render(c, state, fiber.Map{"Error": "Invalid form data!"})
	}
	input := form.input()
	predictionValidator.Normalize(&input)
	form.keep(input)
	data := fiber.Map{"Form": form}

	if !pc.Predictor.Ready() {
		data["Error"] = "Model not loaded."
		return pc.render(c, state, data)
	}
	if errs := predictionValidator.Validate(&input); len(errs) > 0 {
		data["Warning"] = predictionValidator.SelectMessage
		return pc.render(c, state, data)
	}

	result, err := pc.Predictor.Predict(c.UserContext(), input)
	if err != nil {
		if !errors.Is(err, predictor.ErrModelNotLoaded) {
			log.Printf("Prediction failed: %v", err)
		}
		data["Error"] = fmt.Sprintf("Error during prediction: %v", err)
		return pc.render(c, state, data)
	}

	data["Result"] = result
	return pc.render(c, state, data)
}
