package predictor

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const featureCount = 5

// Bundle is the serialized model artifact: the model plus its two categorical encoders.
type Bundle struct {
	Model Model
	// Ext is the artifact's extracurricular encoder. Predict does not use it: the flag
	// comes from EncodeFlag. It is kept so the artifact's classes stay inspectable.
	Ext   *LabelEncoder
	ParEd *LabelEncoder
}

type bundleFile struct {
	Model struct {
		Type           string    `json:"type"`
		Intercept      float64   `json:"intercept"`
		Coefficients   []float64 `json:"coefficients"`
		URL            string    `json:"url"`
		TimeoutSeconds int       `json:"timeout_seconds"`
	} `json:"model"`
	LeExt   *LabelEncoder `json:"le_ext"`
	LeParEd *LabelEncoder `json:"le_par_ed"`
}

// LoadOptions carry the settings that are not part of the artifact itself.
type LoadOptions struct {
	ModelURL      string // overrides model.url for remote bundles
	FallbackCode  int
	StrictEncoder bool
}

// LoadBundle reads and decodes the model artifact at path.
func LoadBundle(path string, opts LoadOptions) (*Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model bundle: %w", err)
	}

	var file bundleFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode model bundle %s: %w", path, err)
	}
	if file.LeParEd == nil {
		return nil, fmt.Errorf("model bundle %s: missing le_par_ed encoder", path)
	}
	if file.LeExt == nil {
		file.LeExt = &LabelEncoder{Classes: []string{"No", "Yes"}}
	}
	file.LeParEd.Fallback = opts.FallbackCode
	file.LeParEd.Strict = opts.StrictEncoder

	bundle := &Bundle{Ext: file.LeExt, ParEd: file.LeParEd}

	switch file.Model.Type {
	case "", "linear":
		if len(file.Model.Coefficients) != featureCount {
			return nil, fmt.Errorf("model bundle %s: linear model needs %d coefficients, got %d",
				path, featureCount, len(file.Model.Coefficients))
		}
		bundle.Model = &LinearModel{Intercept: file.Model.Intercept, Coefficients: file.Model.Coefficients}
	case "remote":
		url := file.Model.URL
		if opts.ModelURL != "" {
			url = opts.ModelURL
		}
		if url == "" {
			return nil, fmt.Errorf("model bundle %s: remote model without url", path)
		}
		timeout := time.Duration(file.Model.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		bundle.Model = NewRemoteModel(url, timeout)
	default:
		return nil, fmt.Errorf("model bundle %s: unsupported model type %q", path, file.Model.Type)
	}

	return bundle, nil
}
