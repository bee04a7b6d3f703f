// Package predictor turns the prediction form into a score using a pre-trained model.
package predictor

import (
	"context"
	"errors"
	"fmt"
	"math"

	"smartscholar/models"
)

const passMark = 40

var (
	ErrModelNotLoaded = errors.New("model not loaded")
	ErrPrediction     = errors.New("prediction failed")
)

type Predictor struct {
	bundle  *Bundle
	loadErr error
}

// New wraps an already loaded bundle.
func New(bundle *Bundle) *Predictor {
	if bundle == nil {
		return &Predictor{loadErr: errors.New("empty model bundle")}
	}
	return &Predictor{bundle: bundle}
}

// Load reads the bundle at path. A failed load still returns a Predictor: it keeps the
// error and refuses every prediction, so the rest of the app can run without a model.
func Load(path string, opts LoadOptions) *Predictor {
	bundle, err := LoadBundle(path, opts)
	if err != nil {
		return &Predictor{loadErr: err}
	}
	return &Predictor{bundle: bundle}
}

// LoadError is the startup failure, nil once a model is available.
func (p *Predictor) LoadError() error {
	return p.loadErr
}

func (p *Predictor) Ready() bool {
	return p.bundle != nil && p.loadErr == nil
}

// Predict scores one student. All-zero hours, attendance and grade are a Fail with score
// 0 and the model is not consulted.
func (p *Predictor) Predict(ctx context.Context, in models.PredictionInput) (models.PredictionResult, error) {
	if !p.Ready() {
		return models.PredictionResult{}, fmt.Errorf("%w: %v", ErrModelNotLoaded, p.loadErr)
	}

	if in.StudyHours == 0 && in.Attendance == 0 && in.PreviousGrade == 0 {
		return models.PredictionResult{Score: 0, Result: models.ResultFail, Bypassed: true}, nil
	}

	parEd, err := p.bundle.ParEd.Encode(in.ParentalEducation)
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("%w: %v", ErrPrediction, err)
	}
	features := []float64{
		in.StudyHours,
		float64(in.Attendance),
		float64(in.PreviousGrade),
		float64(EncodeFlag(in.Extracurricular)),
		float64(parEd),
	}

	raw, err := p.bundle.Model.Predict(ctx, features)
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("%w: %v", ErrPrediction, err)
	}
	if math.IsNaN(raw) {
		return models.PredictionResult{}, fmt.Errorf("%w: model returned NaN", ErrPrediction)
	}

	score := Score(raw)
	return models.PredictionResult{Score: score, Result: Label(score)}, nil
}

// Score clamps a raw model output to [0, 100] and rounds it to two decimals.
func Score(raw float64) float64 {
	clamped := math.Max(0, math.Min(100, raw))
	return math.Round(clamped*100) / 100
}

func Label(score float64) string {
	if score >= passMark {
		return models.ResultPass
	}
	return models.ResultFail
}
