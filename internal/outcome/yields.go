package outcome

import (
	"fmt"
	"math"

	"github.com/yourusername/soccer-bettor/internal/markets"
)

// CalculateYields scores each bet decision against the realized outcome at
// unit stake: 0 for no-bet, odds-1 when the bet's market is realized, -1
// otherwise. A bet naming an unregistered market is an error; the no-bet
// sentinel is not a market and short-circuits to 0.
func CalculateYields(score1, score2 []int, bets []string, odds [][]float64, targets []string, registry *markets.Registry) ([]float64, error) {
	n := len(score1)
	if len(score2) != n || len(bets) != n || len(odds) != n {
		return nil, fmt.Errorf("%w: scores %d/%d, bets %d, odds %d", markets.ErrShapeMismatch, len(score1), len(score2), len(bets), len(odds))
	}

	position := make(map[string]int, len(targets))
	for j, target := range targets {
		position[target] = j
	}

	yields := make([]float64, n)
	for i, bet := range bets {
		if bet == markets.NoBet {
			continue
		}
		p, err := registry.Predicate(bet)
		if err != nil {
			return nil, err
		}
		j, ok := position[bet]
		if !ok {
			return nil, fmt.Errorf("%w: bet %q is not among the requested targets", markets.ErrInvalidTargets, bet)
		}
		if len(odds[i]) != len(targets) {
			return nil, fmt.Errorf("%w: odds row %d has %d entries, want %d", markets.ErrShapeMismatch, i, len(odds[i]), len(targets))
		}
		if p(score1[i], score2[i]) {
			yields[i] = odds[i][j] - 1
		} else {
			yields[i] = -1
		}
	}
	return yields, nil
}

// Stats summarizes a yield sequence over the placed bets only.
type Stats struct {
	Coverage   float64
	MeanYield  float64
	StdYield   float64
	PlacedBets int
}

// ExtractYieldsStats reduces a yield sequence to (coverage, mean, population
// std) over the nonzero entries. All-zero input means no bets were placed and
// yields a zero Stats rather than dividing by zero.
func ExtractYieldsStats(yields []float64) Stats {
	placed := make([]float64, 0, len(yields))
	for _, y := range yields {
		if y != 0 {
			placed = append(placed, y)
		}
	}
	if len(placed) == 0 || len(yields) == 0 {
		return Stats{}
	}

	mean := 0.0
	for _, y := range placed {
		mean += y
	}
	mean /= float64(len(placed))

	variance := 0.0
	for _, y := range placed {
		diff := y - mean
		variance += diff * diff
	}
	variance /= float64(len(placed))

	return Stats{
		Coverage:   float64(len(placed)) / float64(len(yields)),
		MeanYield:  mean,
		StdYield:   math.Sqrt(variance),
		PlacedBets: len(placed),
	}
}
