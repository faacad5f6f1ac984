package bettor

import (
	"fmt"

	"github.com/yourusername/soccer-bettor/internal/markets"
	"github.com/yourusername/soccer-bettor/internal/outcome"
)

// MultiBettor is the stacked two-stage decision model. Stage one trains an
// independent per-market classifier on each target's realized/not-realized
// column; stage two trains a meta classifier on the concatenated stage-one
// probabilities to predict the same class label a Bettor predicts. The risk
// rule applied at prediction time is the one shared through base.
type MultiBettor struct {
	base
	multi *multiOutput
	meta  Classifier
}

// NewMultiBettor builds a two-stage model from a stage-one prototype and a
// meta classifier. Target validation is deferred to Fit.
func NewMultiBettor(multiPrototype, meta Classifier, targets []string, registry *markets.Registry) *MultiBettor {
	return &MultiBettor{
		base:  newBase(registry, targets),
		multi: newMultiOutput(multiPrototype),
		meta:  meta,
	}
}

// Fit trains both stages in sequence: per-market estimators first, then the
// meta classifier on their training-set probabilities.
func (m *MultiBettor) Fit(X [][]float64, score1, score2 []int, odds [][]float64) error {
	if err := m.resolveTargets(); err != nil {
		return err
	}
	if err := checkFitInputs(X, score1, score2, odds); err != nil {
		return err
	}

	multiLabels, err := outcome.ExtractMultiLabels(score1, score2, m.resolved, m.registry)
	if err != nil {
		return err
	}
	classLabels, err := outcome.ExtractClassLabels(score1, score2, odds, m.resolved, m.registry)
	if err != nil {
		return err
	}
	if err := m.recordBreakeven(odds); err != nil {
		return err
	}

	if err := m.multi.fit(X, multiLabels, len(m.resolved)); err != nil {
		return err
	}
	metaFeatures, err := m.multi.probaPositive(X)
	if err != nil {
		return err
	}
	if err := m.meta.Fit(metaFeatures, classLabels); err != nil {
		return fmt.Errorf("meta classifier fit failed: %w", err)
	}
	m.fitted = true
	return nil
}

// Predict pushes features through both stages and applies the risk rule.
func (m *MultiBettor) Predict(X [][]float64, riskFactor float64) ([]string, error) {
	proba, err := m.PredictProba(X)
	if err != nil {
		return nil, err
	}
	return m.decide(proba, m.meta.Classes(), riskFactor), nil
}

// PredictProba returns the meta classifier's probabilities over the class
// labels observed at fit time.
func (m *MultiBettor) PredictProba(X [][]float64) ([][]float64, error) {
	if !m.fitted {
		return nil, markets.ErrNotFitted
	}
	metaFeatures, err := m.multi.probaPositive(X)
	if err != nil {
		return nil, err
	}
	return m.meta.PredictProba(metaFeatures)
}

// SetParams routes "multi_classifier__*" to the stage-one prototype and
// "meta_classifier__*" to the meta classifier.
func (m *MultiBettor) SetParams(params map[string]any) error {
	routed, err := routeParams(params, "multi_classifier", "meta_classifier")
	if err != nil {
		return err
	}
	if p := routed["multi_classifier"]; len(p) > 0 {
		if err := m.multi.setParams(p); err != nil {
			return err
		}
	}
	if p := routed["meta_classifier"]; len(p) > 0 {
		return m.meta.SetParams(p)
	}
	return nil
}

// SetSeed re-seeds both stages; the meta classifier gets an offset seed so
// the stages draw from distinct streams.
func (m *MultiBettor) SetSeed(seed int64) {
	m.multi.setSeed(seed)
	m.meta.SetSeed(seed + 1)
}

// Clone returns an unfitted copy sharing configuration but no trained state.
func (m *MultiBettor) Clone() Model {
	return &MultiBettor{
		base:  newBase(m.registry, m.targets),
		multi: m.multi.clone(),
		meta:  m.meta.Clone(),
	}
}

// EstimatorCount reports how many stage-one estimators a fitted model holds.
func (m *MultiBettor) EstimatorCount() int {
	return len(m.multi.estimators)
}
