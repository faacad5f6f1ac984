// Package outcome derives betting labels from final scores and scores bet
// decisions against realized outcomes.
package outcome

import (
	"fmt"

	"github.com/yourusername/soccer-bettor/internal/markets"
)

// ExtractMultiLabels evaluates each requested market against each sample's
// final score. The result is one boolean row per sample, one column per
// target, in target order.
func ExtractMultiLabels(score1, score2 []int, targets []string, registry *markets.Registry) ([][]bool, error) {
	if len(score1) != len(score2) {
		return nil, fmt.Errorf("%w: %d home scores vs %d away scores", markets.ErrShapeMismatch, len(score1), len(score2))
	}

	predicates := make([]markets.Predicate, len(targets))
	for i, target := range targets {
		p, err := registry.Predicate(target)
		if err != nil {
			return nil, err
		}
		predicates[i] = p
	}

	labels := make([][]bool, len(score1))
	for i := range score1 {
		row := make([]bool, len(targets))
		for j, p := range predicates {
			row[j] = p(score1[i], score2[i])
		}
		labels[i] = row
	}
	return labels, nil
}

// ExtractClassLabels collapses each sample's multi-label row into a single
// class label: among the realized markets, the target with the highest
// aligned odds wins, earliest target position breaking exact ties. A sample
// with no realized market gets the no-bet sentinel.
func ExtractClassLabels(score1, score2 []int, odds [][]float64, targets []string, registry *markets.Registry) ([]string, error) {
	multi, err := ExtractMultiLabels(score1, score2, targets, registry)
	if err != nil {
		return nil, err
	}
	if len(odds) != len(score1) {
		return nil, fmt.Errorf("%w: %d odds rows vs %d samples", markets.ErrShapeMismatch, len(odds), len(score1))
	}

	labels := make([]string, len(multi))
	for i, row := range multi {
		if len(odds[i]) != len(targets) {
			return nil, fmt.Errorf("%w: odds row %d has %d entries, want %d", markets.ErrShapeMismatch, i, len(odds[i]), len(targets))
		}
		labels[i] = pickLabel(row, odds[i], targets)
	}
	return labels, nil
}

func pickLabel(realized []bool, odds []float64, targets []string) string {
	best := -1
	for j, hit := range realized {
		if !hit {
			continue
		}
		if best < 0 || odds[j] > odds[best] {
			best = j
		}
	}
	if best < 0 {
		return markets.NoBet
	}
	return targets[best]
}
