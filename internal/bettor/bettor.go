package bettor

import (
	"fmt"

	"github.com/yourusername/soccer-bettor/internal/markets"
	"github.com/yourusername/soccer-bettor/internal/outcome"
)

// Bettor is the single-stage decision model: one wrapped classifier trained
// directly on encoder-derived class labels.
type Bettor struct {
	base
	classifier Classifier
}

// NewBettor wraps a classifier with a target list. A nil registry selects the
// default market book; nil targets mean the full registry. Target validation
// is deferred to Fit.
func NewBettor(classifier Classifier, targets []string, registry *markets.Registry) *Bettor {
	return &Bettor{base: newBase(registry, targets), classifier: classifier}
}

// Fit derives class labels from the scores and odds and fits the wrapped
// classifier on them.
func (b *Bettor) Fit(X [][]float64, score1, score2 []int, odds [][]float64) error {
	if err := b.resolveTargets(); err != nil {
		return err
	}
	if err := checkFitInputs(X, score1, score2, odds); err != nil {
		return err
	}

	labels, err := outcome.ExtractClassLabels(score1, score2, odds, b.resolved, b.registry)
	if err != nil {
		return err
	}
	if err := b.recordBreakeven(odds); err != nil {
		return err
	}
	if err := b.classifier.Fit(X, labels); err != nil {
		return fmt.Errorf("classifier fit failed: %w", err)
	}
	b.fitted = true
	return nil
}

// Predict applies the risk-factor rule to the classifier's probabilities and
// returns one decision per sample.
func (b *Bettor) Predict(X [][]float64, riskFactor float64) ([]string, error) {
	proba, err := b.PredictProba(X)
	if err != nil {
		return nil, err
	}
	return b.decide(proba, b.classifier.Classes(), riskFactor), nil
}

// PredictProba returns the wrapped classifier's per-class probabilities. The
// column count equals the number of distinct labels observed at fit time.
func (b *Bettor) PredictProba(X [][]float64) ([][]float64, error) {
	if !b.fitted {
		return nil, markets.ErrNotFitted
	}
	return b.classifier.PredictProba(X)
}

// SetParams routes "classifier__*" hyperparameters to the wrapped classifier.
func (b *Bettor) SetParams(params map[string]any) error {
	routed, err := routeParams(params, "classifier")
	if err != nil {
		return err
	}
	if p := routed["classifier"]; len(p) > 0 {
		return b.classifier.SetParams(p)
	}
	return nil
}

// SetSeed re-seeds the wrapped classifier.
func (b *Bettor) SetSeed(seed int64) {
	b.classifier.SetSeed(seed)
}

// Clone returns an unfitted copy sharing configuration but no trained state.
func (b *Bettor) Clone() Model {
	return NewBettor(b.classifier.Clone(), b.targets, b.registry)
}
