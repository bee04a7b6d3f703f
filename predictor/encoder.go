package predictor

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown category")

// EncodeFlag maps a yes/no answer to 1 when it is "yes" in any letter case, else 0.
func EncodeFlag(answer string) int {
	if strings.EqualFold(strings.TrimSpace(answer), "yes") {
		return 1
	}
	return 0
}

// LabelEncoder is a pre-fit categorical table: the code of a label is its index in Classes.
type LabelEncoder struct {
	Classes []string `json:"classes"`

	// Fallback is returned for labels outside Classes unless Strict is set.
	Fallback int  `json:"-"`
	Strict   bool `json:"-"`
}

// Has reports whether label is a known class.
func (e *LabelEncoder) Has(label string) bool {
	_, ok := e.index(label)
	return ok
}

// Encode returns the code for label. Unknown labels get the fallback code (0 by default).
func (e *LabelEncoder) Encode(label string) (int, error) {
	if i, ok := e.index(label); ok {
		return i, nil
	}
	if e.Strict {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
	}
	return e.Fallback, nil
}

func (e *LabelEncoder) index(label string) (int, bool) {
	for i, class := range e.Classes {
		if class == label {
			return i, true
		}
	}
	return 0, false
}
