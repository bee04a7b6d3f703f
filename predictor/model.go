package predictor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Model is the trained regression model. Predict gets one feature vector in the order
// study hours, attendance, previous grade, extracurricular code, parental education code.
type Model interface {
	Predict(ctx context.Context, features []float64) (float64, error)
}

// ModelFunc adapts a plain function to Model.
type ModelFunc func(ctx context.Context, features []float64) (float64, error)

func (f ModelFunc) Predict(ctx context.Context, features []float64) (float64, error) {
	return f(ctx, features)
}

// LinearModel scores intercept + Σ coefficient[i]·feature[i].
type LinearModel struct {
	Intercept    float64
	Coefficients []float64
}

func (m *LinearModel) Predict(_ context.Context, features []float64) (float64, error) {
	if len(features) != len(m.Coefficients) {
		return 0, fmt.Errorf("linear model expects %d features, got %d", len(m.Coefficients), len(features))
	}
	score := m.Intercept
	for i, f := range features {
		score += m.Coefficients[i] * f
	}
	return score, nil
}

// RemoteModel asks a scoring service for the prediction.
type RemoteModel struct {
	client *resty.Client
	url    string
}

func NewRemoteModel(url string, timeout time.Duration) *RemoteModel {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &RemoteModel{client: client, url: url}
}

func (m *RemoteModel) Predict(ctx context.Context, features []float64) (float64, error) {
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"features": features}).
		Post(m.url)
	if err != nil {
		return 0, fmt.Errorf("scoring request: %w", err)
	}
	if resp.StatusCode() != 200 {
		return 0, fmt.Errorf("scoring service returned %d: %s", resp.StatusCode(), resp.String())
	}

	var body struct {
		Score *float64 `json:"score"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return 0, fmt.Errorf("invalid scoring response: %w", err)
	}
	if body.Score == nil {
		return 0, fmt.Errorf("scoring response has no score")
	}
	return *body.Score, nil
}
