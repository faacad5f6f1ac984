// Package dataset downloads and parses historical football match data from
// football-data.co.uk season files.
package dataset

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourusername/soccer-bettor/internal/markets"
)

// Match is one historical fixture with its final score and closing odds.
// Odds are keyed by market target name and kept as decimals until the
// modeling matrices are built.
type Match struct {
	Division  string
	Season    string
	Date      time.Time
	HomeTeam  string
	AwayTeam  string
	HomeGoals int
	AwayGoals int
	Odds      map[string]decimal.Decimal
}

// HasOdds reports whether the match carries a price for every given target.
func (m *Match) HasOdds(targets []string) bool {
	for _, target := range targets {
		if _, ok := m.Odds[target]; !ok {
			return false
		}
	}
	return true
}

// Matrices is the column-oriented view of a match list that the decision
// models and the backtest runner consume.
type Matrices struct {
	X      [][]float64
	Score1 []int
	Score2 []int
	Odds   [][]float64
}

// BuildMatrices converts matches into aligned modeling matrices for the given
// targets, dropping any match that lacks a price for one of them. Features
// are the implied probabilities of the selected markets, so every model sees
// the same bookmaker signal the yields are settled against.
func BuildMatrices(matches []Match, targets []string, registry *markets.Registry) (*Matrices, error) {
	if registry == nil {
		registry = markets.Default()
	}
	resolved, err := registry.ResolveTargets(targets)
	if err != nil {
		return nil, err
	}

	out := &Matrices{}
	for _, match := range matches {
		if !match.HasOdds(resolved) {
			continue
		}
		features := make([]float64, 0, len(resolved))
		oddsRow := make([]float64, 0, len(resolved))
		for _, target := range resolved {
			price, _ := match.Odds[target].Float64()
			if price <= 1 {
				return nil, fmt.Errorf("match %s v %s: invalid odds %v for %s", match.HomeTeam, match.AwayTeam, match.Odds[target], target)
			}
			oddsRow = append(oddsRow, price)
			features = append(features, 1/price)
		}
		out.X = append(out.X, features)
		out.Score1 = append(out.Score1, match.HomeGoals)
		out.Score2 = append(out.Score2, match.AwayGoals)
		out.Odds = append(out.Odds, oddsRow)
	}
	if len(out.Score1) == 0 {
		return nil, fmt.Errorf("no matches carry odds for all targets %v", resolved)
	}
	return out, nil
}
