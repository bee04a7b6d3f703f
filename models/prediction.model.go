package models

const (
	ResultPass = "Pass"
	ResultFail = "Fail"
)

// PredictionInput is the raw form data sent to the predictor. Nothing here is persisted.
type PredictionInput struct {
	StudyHours        float64 `json:"studyHours" form:"study_hours"`
	Attendance        int     `json:"attendance" form:"attendance"`
	PreviousGrade     int     `json:"previousGrade" form:"previous_grade"`
	Extracurricular   string  `json:"extracurricular" form:"extracurricular" validate:"required,ne=Select"`
	ParentalEducation string  `json:"parentalEducation" form:"parental_education" validate:"required,ne=Select"`
}

type PredictionResult struct {
	Score    float64 `json:"score"`
	Result   string  `json:"result"`
	Bypassed bool    `json:"bypassed"`
}

// Placeholder is the unselected value of every dropdown on the forms.
const Placeholder = "Select"

// EducationLevels are the options offered on the prediction form.
var EducationLevels = []string{
	"Primary School",
	"Secondary School",
	"High Secondary School",
	"Bachelor's Degree",
	"Master's Degree",
	"Diploma",
	"Bachelor's (Honours)",
	"Phd",
}

var Genders = []string{"Male", "Female", "Others"}
