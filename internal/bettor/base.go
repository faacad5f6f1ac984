package bettor

import (
	"fmt"

	"github.com/yourusername/soccer-bettor/internal/markets"
)

// base carries the behavior shared by both decision models: target
// resolution against the market registry, breakeven bookkeeping and the
// risk-factor decision rule. Both Bettor and MultiBettor embed it by
// composition so the decision rule exists exactly once.
type base struct {
	registry  *markets.Registry
	targets   []string
	resolved  []string
	breakeven map[string]float64
	fitted    bool
}

func newBase(registry *markets.Registry, targets []string) base {
	if registry == nil {
		registry = markets.Default()
	}
	return base{registry: registry, targets: targets}
}

// resolveTargets validates the configured target list against the registry,
// falling back to the full registry in registry order. Validation happens
// here, at fit time, never at construction.
func (b *base) resolveTargets() error {
	resolved, err := b.registry.ResolveTargets(b.targets)
	if err != nil {
		return err
	}
	b.resolved = resolved
	return nil
}

// Targets returns the resolved target list of a fitted model, or the
// configured list before fitting.
func (b *base) Targets() []string {
	if b.fitted {
		targets := make([]string, len(b.resolved))
		copy(targets, b.resolved)
		return targets
	}
	targets := make([]string, len(b.targets))
	copy(targets, b.targets)
	return targets
}

// recordBreakeven stores each target's mean implied probability from the
// training odds. This is the "no-edge" probability the risk filter scales.
func (b *base) recordBreakeven(odds [][]float64) error {
	b.breakeven = make(map[string]float64, len(b.resolved))
	if len(odds) == 0 {
		return nil
	}
	for j, target := range b.resolved {
		sum := 0.0
		for i, row := range odds {
			if len(row) != len(b.resolved) {
				return fmt.Errorf("%w: odds row %d has %d entries, want %d", markets.ErrShapeMismatch, i, len(row), len(b.resolved))
			}
			if row[j] > 0 {
				sum += 1 / row[j]
			}
		}
		b.breakeven[target] = sum / float64(len(odds))
	}
	return nil
}

// decide applies the risk rule to a probability matrix: each sample's top
// class stands as the bet unless its probability fails to exceed the
// target's breakeven probability scaled by riskFactor. A zero risk factor
// disables the filter entirely; larger values are strictly stricter. The
// no-bet sentinel always stands.
func (b *base) decide(proba [][]float64, classes []string, riskFactor float64) []string {
	decisions := make([]string, len(proba))
	for i, row := range proba {
		best := 0
		for j := 1; j < len(row); j++ {
			if row[j] > row[best] {
				best = j
			}
		}
		label := classes[best]
		if label != markets.NoBet && row[best] <= riskFactor*b.breakeven[label] {
			label = markets.NoBet
		}
		decisions[i] = label
	}
	return decisions
}

// checkFitInputs validates the shared fit input shapes before any training.
func checkFitInputs(X [][]float64, score1, score2 []int, odds [][]float64) error {
	n := len(score1)
	if len(score2) != n || len(odds) != n || (len(X) != 0 && len(X) != n) {
		return fmt.Errorf("%w: features %d, scores %d/%d, odds %d", markets.ErrShapeMismatch, len(X), len(score1), len(score2), len(odds))
	}
	return nil
}
