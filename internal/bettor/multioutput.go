package bettor

import (
	"fmt"

	"github.com/yourusername/soccer-bettor/internal/markets"
)

// Per-market binary labels for the first stage.
const (
	negativeLabel = "0"
	positiveLabel = "1"
)

// multiOutput trains one clone of a prototype classifier per target, each on
// that target's binary realized/not-realized column.
type multiOutput struct {
	prototype  Classifier
	estimators []Classifier
}

func newMultiOutput(prototype Classifier) *multiOutput {
	return &multiOutput{prototype: prototype}
}

func (m *multiOutput) fit(X [][]float64, Y [][]bool, nTargets int) error {
	m.estimators = make([]Classifier, nTargets)
	column := make([]string, len(Y))
	for j := 0; j < nTargets; j++ {
		for i, row := range Y {
			if len(row) != nTargets {
				return fmt.Errorf("%w: multi-label row %d has %d entries, want %d", markets.ErrShapeMismatch, i, len(row), nTargets)
			}
			if row[j] {
				column[i] = positiveLabel
			} else {
				column[i] = negativeLabel
			}
		}
		estimator := m.prototype.Clone()
		if err := estimator.Fit(X, column); err != nil {
			return fmt.Errorf("estimator %d fit failed: %w", j, err)
		}
		m.estimators[j] = estimator
	}
	return nil
}

// probaPositive returns, per sample, each target's predicted probability of
// being realized. A target never realized in training contributes zero.
func (m *multiOutput) probaPositive(X [][]float64) ([][]float64, error) {
	features := make([][]float64, len(X))
	for i := range features {
		features[i] = make([]float64, len(m.estimators))
	}

	for j, estimator := range m.estimators {
		positive := -1
		for k, class := range estimator.Classes() {
			if class == positiveLabel {
				positive = k
			}
		}
		if positive < 0 {
			continue
		}
		proba, err := estimator.PredictProba(X)
		if err != nil {
			return nil, fmt.Errorf("estimator %d predict failed: %w", j, err)
		}
		for i, row := range proba {
			features[i][j] = row[positive]
		}
	}
	return features, nil
}

func (m *multiOutput) setParams(params map[string]any) error {
	return m.prototype.SetParams(params)
}

func (m *multiOutput) setSeed(seed int64) {
	m.prototype.SetSeed(seed)
	for i, estimator := range m.estimators {
		estimator.SetSeed(seed + int64(i))
	}
}

func (m *multiOutput) clone() *multiOutput {
	return newMultiOutput(m.prototype.Clone())
}
