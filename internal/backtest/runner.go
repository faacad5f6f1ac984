// Package backtest drives decision models across hyperparameter grids, risk
// factors, random seeds and temporal folds, and reduces the raw yields into
// per-configuration statistics.
package backtest

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/soccer-bettor/internal/bettor"
	"github.com/yourusername/soccer-bettor/internal/markets"
	"github.com/yourusername/soccer-bettor/internal/metrics"
	"github.com/yourusername/soccer-bettor/internal/outcome"
	"github.com/yourusername/soccer-bettor/internal/split"
)

// Splitter yields the ordered temporal folds a backtest walks through. Any
// generator of time-respecting index pairs can stand in for the bundled
// TimeSeriesSplit.
type Splitter interface {
	Split(n int) ([]split.Fold, error)
}

// Runner orchestrates backtesting runs against a fixed market registry.
type Runner struct {
	registry *markets.Registry
	logger   *logrus.Logger
}

// NewRunner creates a backtest runner. A nil registry selects the default
// market book.
func NewRunner(registry *markets.Registry, logger *logrus.Logger) *Runner {
	if registry == nil {
		registry = markets.Default()
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Runner{registry: registry, logger: logger}
}

// FitBet runs one unit of work: clone the model, apply hyperparameters and
// seed, fit on the train slice, then bet on the test slice once per risk
// factor. The returned rows carry raw yield sequences, not statistics.
func (r *Runner) FitBet(
	model bettor.Model,
	params Params,
	riskFactors []float64,
	seed int64,
	X [][]float64,
	score1, score2 []int,
	odds [][]float64,
	trainIdx, testIdx []int,
) ([]RawResult, error) {
	clone := model.Clone()
	if err := clone.SetParams(params); err != nil {
		return nil, fmt.Errorf("applying parameters %s: %w", params, err)
	}
	clone.SetSeed(seed)

	if err := clone.Fit(
		sliceRows(X, trainIdx),
		sliceInts(score1, trainIdx),
		sliceInts(score2, trainIdx),
		sliceRows(odds, trainIdx),
	); err != nil {
		return nil, fmt.Errorf("fit on train slice: %w", err)
	}

	testX := sliceRows(X, testIdx)
	testScore1 := sliceInts(score1, testIdx)
	testScore2 := sliceInts(score2, testIdx)
	testOdds := sliceRows(odds, testIdx)

	results := make([]RawResult, 0, len(riskFactors))
	for _, riskFactor := range riskFactors {
		bets, err := clone.Predict(testX, riskFactor)
		if err != nil {
			return nil, fmt.Errorf("predict at risk factor %g: %w", riskFactor, err)
		}
		yields, err := outcome.CalculateYields(testScore1, testScore2, bets, testOdds, clone.Targets(), r.registry)
		if err != nil {
			return nil, err
		}
		results = append(results, RawResult{
			Params:     params,
			Seed:       seed,
			RiskFactor: riskFactor,
			Yields:     yields,
		})
	}
	return results, nil
}

// ApplyBacktesting enumerates every (fold, grid point, seed) combination as
// an independent unit of work, executes them under a worker pool of nJobs
// workers (nJobs <= 0 means one per CPU, 1 means sequential), and reduces
// the pooled yields into one row per (parameter set, risk factor). Row order
// follows grid then risk-factor enumeration, never completion order, so
// identical inputs always reproduce identical tables. The first failing unit
// aborts the whole run: partial aggregation would misrepresent coverage.
func (r *Runner) ApplyBacktesting(
	ctx context.Context,
	model bettor.Model,
	grid ParamGrid,
	riskFactors []float64,
	X [][]float64,
	score1, score2 []int,
	odds [][]float64,
	cv Splitter,
	seed int64,
	nRuns, nJobs int,
) ([]Result, error) {
	if err := r.validateInputs(model, riskFactors, X, score1, score2, odds, nRuns); err != nil {
		return nil, err
	}

	folds, err := cv.Split(len(score1))
	if err != nil {
		return nil, fmt.Errorf("generating folds: %w", err)
	}
	points := grid.Expand()

	type unit struct {
		index      int
		paramIndex int
		seed       int64
		fold       split.Fold
	}
	units := make([]unit, 0, len(points)*nRuns*len(folds))
	for paramIndex := range points {
		for run := 0; run < nRuns; run++ {
			for _, fold := range folds {
				units = append(units, unit{
					index:      len(units),
					paramIndex: paramIndex,
					seed:       seed + int64(run),
					fold:       fold,
				})
			}
		}
	}

	r.logger.WithFields(logrus.Fields{
		"units":        len(units),
		"grid_points":  len(points),
		"risk_factors": len(riskFactors),
		"folds":        len(folds),
		"runs":         nRuns,
	}).Info("Starting backtest")

	workers := nJobs
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(units) {
		workers = len(units)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	rawByUnit := make([][]RawResult, len(units))
	jobs := make(chan unit)
	var (
		wg      sync.WaitGroup
		errOnce sync.Once
		unitErr error
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for u := range jobs {
				if runCtx.Err() != nil {
					continue
				}
				start := time.Now()
				rows, err := r.FitBet(model, points[u.paramIndex], riskFactors, u.seed, X, score1, score2, odds, u.fold.Train, u.fold.Test)
				if err != nil {
					metrics.RecordBacktestUnit("failure", time.Since(start).Seconds())
					errOnce.Do(func() {
						unitErr = err
						cancel()
					})
					continue
				}
				metrics.RecordBacktestUnit("success", time.Since(start).Seconds())
				rawByUnit[u.index] = rows
			}
		}()
	}

	for _, u := range units {
		jobs <- u
	}
	close(jobs)
	wg.Wait()

	if unitErr != nil {
		metrics.RecordBacktestRun("failure")
		return nil, fmt.Errorf("backtest unit failed: %w", unitErr)
	}
	if err := ctx.Err(); err != nil {
		metrics.RecordBacktestRun("failure")
		return nil, err
	}

	// Group-then-reduce in enumeration order: pooling is keyed by grid
	// point and risk factor, never by unit completion order.
	results := make([]Result, 0, len(points)*len(riskFactors))
	for paramIndex, params := range points {
		for rfIndex, riskFactor := range riskFactors {
			var pooled []float64
			for _, u := range units {
				if u.paramIndex == paramIndex {
					pooled = append(pooled, rawByUnit[u.index][rfIndex].Yields...)
				}
			}
			stats := outcome.ExtractYieldsStats(pooled)
			placed := stats.PlacedBets
			if placed < 1 {
				placed = 1
			}
			results = append(results, Result{
				Parameters:   params.String(),
				RiskFactor:   riskFactor,
				Coverage:     stats.Coverage,
				MeanYield:    stats.MeanYield,
				StdYield:     stats.StdYield,
				StdMeanYield: stats.StdYield / math.Sqrt(float64(placed)),
			})
		}
	}

	metrics.RecordBacktestRun("success")
	r.logger.WithField("rows", len(results)).Info("Backtest complete")
	return results, nil
}

// validateInputs surfaces every validation error before any classifier
// training begins, so bad input never wastes parallel work.
func (r *Runner) validateInputs(model bettor.Model, riskFactors []float64, X [][]float64, score1, score2 []int, odds [][]float64, nRuns int) error {
	n := len(score1)
	if len(score2) != n || len(odds) != n || (len(X) != 0 && len(X) != n) {
		return fmt.Errorf("%w: features %d, scores %d/%d, odds %d", markets.ErrShapeMismatch, len(X), len(score1), len(score2), len(odds))
	}
	if len(riskFactors) == 0 {
		return fmt.Errorf("at least one risk factor is required")
	}
	if nRuns < 1 {
		return fmt.Errorf("n_runs must be at least 1, got %d", nRuns)
	}
	if err := r.registry.ValidateTargets(model.Targets()); err != nil {
		return err
	}
	return nil
}

func sliceRows[T any](rows []T, indices []int) []T {
	if len(rows) == 0 {
		return nil
	}
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = rows[idx]
	}
	return out
}

func sliceInts(values []int, indices []int) []int {
	out := make([]int, len(indices))
	for i, idx := range indices {
		out[i] = values[idx]
	}
	return out
}
