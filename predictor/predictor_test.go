package predictor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartscholar/models"
)

func fixedModel(score float64, calls *int) Model {
	return ModelFunc(func(_ context.Context, _ []float64) (float64, error) {
		if calls != nil {
			*calls++
		}
		return score, nil
	})
}

func testBundle(m Model) *Bundle {
	return &Bundle{
		Model: m,
		Ext:   &LabelEncoder{Classes: []string{"No", "Yes"}},
		ParEd: &LabelEncoder{Classes: []string{"Bachelor's Degree", "Diploma", "Phd"}},
	}
}

func validInput() models.PredictionInput {
	return models.PredictionInput{
		StudyHours:        4,
		Attendance:        85,
		PreviousGrade:     70,
		Extracurricular:   "Yes",
		ParentalEducation: "Diploma",
	}
}

func TestPredictBypassesModelForAllZeroInput(t *testing.T) {
	calls := 0
	p := New(testBundle(fixedModel(99, &calls)))

	res, err := p.Predict(context.Background(), models.PredictionInput{
		Extracurricular:   "Yes",
		ParentalEducation: "Phd",
	})

	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, models.ResultFail, res.Result)
	assert.True(t, res.Bypassed)
	assert.Zero(t, calls)
}

func TestPredictClampsAndRounds(t *testing.T) {
	tests := []struct {
		name   string
		raw    float64
		score  float64
		result string
	}{
		{"above range", 134.7, 100, models.ResultPass},
		{"below range", -12.3, 0, models.ResultFail},
		{"rounded down", 55.554, 55.55, models.ResultPass},
		{"rounded up", 55.556, 55.56, models.ResultPass},
		{"pass mark", 40, 40, models.ResultPass},
		{"just under pass mark", 39.994, 39.99, models.ResultFail},
		{"rounds onto pass mark", 39.996, 40, models.ResultPass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(testBundle(fixedModel(tt.raw, nil)))
			res, err := p.Predict(context.Background(), validInput())
			require.NoError(t, err)
			assert.InDelta(t, tt.score, res.Score, 1e-9)
			assert.Equal(t, tt.result, res.Result)
			assert.False(t, res.Bypassed)
		})
	}
}

func TestPredictFeatureVector(t *testing.T) {
	var got []float64
	p := New(testBundle(ModelFunc(func(_ context.Context, f []float64) (float64, error) {
		got = f
		return 50, nil
	})))

	in := validInput()
	in.Extracurricular = "yes"
	in.ParentalEducation = "Unlisted"
	_, err := p.Predict(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, []float64{4, 85, 70, 1, 0}, got)
}

func TestPredictModelNotLoaded(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "missing.json"), LoadOptions{})

	assert.False(t, p.Ready())
	require.Error(t, p.LoadError())

	_, err := p.Predict(context.Background(), validInput())
	assert.True(t, errors.Is(err, ErrModelNotLoaded))

	// even the bypass rule needs a loaded model
	_, err = p.Predict(context.Background(), models.PredictionInput{})
	assert.True(t, errors.Is(err, ErrModelNotLoaded))
}

func TestPredictModelFailure(t *testing.T) {
	p := New(testBundle(ModelFunc(func(context.Context, []float64) (float64, error) {
		return 0, errors.New("boom")
	})))

	_, err := p.Predict(context.Background(), validInput())
	assert.True(t, errors.Is(err, ErrPrediction))
	assert.Contains(t, err.Error(), "boom")
}

func TestLinearModel(t *testing.T) {
	m := &LinearModel{Intercept: -10, Coefficients: []float64{2.5, 0.3, 0.5, 2, 0.5}}

	score, err := m.Predict(context.Background(), []float64{4, 80, 70, 1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 62.5, score, 1e-9)

	_, err = m.Predict(context.Background(), []float64{1, 2})
	assert.Error(t, err)
}

func writeBundle(t *testing.T, v interface{}) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func TestLoadBundle(t *testing.T) {
	t.Run("repository artifact", func(t *testing.T) {
		p := Load(filepath.Join("..", "student_performance_model.json"), LoadOptions{})
		require.NoError(t, p.LoadError())

		res, err := p.Predict(context.Background(), models.PredictionInput{
			StudyHours: 4, Attendance: 80, PreviousGrade: 70,
			Extracurricular: "Yes", ParentalEducation: "High Secondary School",
		})
		require.NoError(t, err)
		assert.InDelta(t, 62.5, res.Score, 1e-9)
		assert.Equal(t, models.ResultPass, res.Result)
	})

	t.Run("options reach encoders", func(t *testing.T) {
		path := writeBundle(t, map[string]interface{}{
			"model":     map[string]interface{}{"coefficients": []float64{1, 1, 1, 1, 1}},
			"le_par_ed": map[string]interface{}{"classes": []string{"Phd"}},
		})
		b, err := LoadBundle(path, LoadOptions{FallbackCode: 4, StrictEncoder: true})
		require.NoError(t, err)
		assert.Equal(t, 4, b.ParEd.Fallback)
		assert.True(t, b.ParEd.Strict)
		assert.Equal(t, []string{"No", "Yes"}, b.Ext.Classes)
		assert.False(t, b.Ext.Strict)
	})

	t.Run("invalid artifacts", func(t *testing.T) {
		bad := []interface{}{
			map[string]interface{}{"model": map[string]interface{}{"coefficients": []float64{1}}, "le_par_ed": map[string]interface{}{"classes": []string{}}},
			map[string]interface{}{"model": map[string]interface{}{"coefficients": []float64{1, 1, 1, 1, 1}}},
			map[string]interface{}{"model": map[string]interface{}{"type": "forest"}, "le_par_ed": map[string]interface{}{"classes": []string{}}},
			map[string]interface{}{"model": map[string]interface{}{"type": "remote"}, "le_par_ed": map[string]interface{}{"classes": []string{}}},
		}
		for _, b := range bad {
			_, err := LoadBundle(writeBundle(t, b), LoadOptions{})
			assert.Error(t, err)
		}
	})
}

func TestRemoteModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Features []float64 `json:"features"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Features) != 5 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"score": 71.239}`))
	}))
	defer srv.Close()

	path := writeBundle(t, map[string]interface{}{
		"model":     map[string]interface{}{"type": "remote", "url": "http://unused.invalid"},
		"le_par_ed": map[string]interface{}{"classes": []string{"Diploma"}},
	})
	p := Load(path, LoadOptions{ModelURL: srv.URL})
	require.NoError(t, p.LoadError())

	res, err := p.Predict(context.Background(), validInput())
	require.NoError(t, err)
	assert.InDelta(t, 71.24, res.Score, 1e-9)
	assert.Equal(t, models.ResultPass, res.Result)
}

func TestRemoteModelErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := New(testBundle(NewRemoteModel(srv.URL, 0)))
	_, err := p.Predict(context.Background(), validInput())
	assert.True(t, errors.Is(err, ErrPrediction))
}

func TestPredictFlagIgnoresExtEncoder(t *testing.T) {
	var got []float64
	b := testBundle(ModelFunc(func(_ context.Context, features []float64) (float64, error) {
		got = features
		return 50, nil
	}))
	b.Ext = &LabelEncoder{Classes: []string{"Yes", "No"}, Strict: true}

	in := validInput()
	in.Extracurricular = "yes"
	_, err := New(b).Predict(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, 1.0, got[3])
}
