//go:build integration

package integration

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/soccer-bettor/internal/backtest"
	"github.com/yourusername/soccer-bettor/internal/bettor"
	"github.com/yourusername/soccer-bettor/internal/dataset"
	"github.com/yourusername/soccer-bettor/internal/split"
)

// TestCSVToBacktestPipeline drives a parsed season file through the full
// evaluation pipeline: parse, matrix build, gridded backtest, reduction.
func TestCSVToBacktestPipeline(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	var builder strings.Builder
	builder.WriteString("Div,Date,HomeTeam,AwayTeam,FTHG,FTAG,B365H,B365D,B365A\n")
	teams := []string{"Arsenal", "Chelsea", "Everton", "Fulham", "Leeds", "Spurs"}
	for i := 0; i < 120; i++ {
		home := teams[i%len(teams)]
		away := teams[(i+1)%len(teams)]
		day := i%27 + 1
		month := i/27 + 8
		hg, ag := 2, 0
		if i%3 == 2 {
			hg, ag = 1, 1
		}
		fmt.Fprintf(&builder, "E0,%02d/%02d/2016,%s,%s,%d,%d,2.00,3.00,4.00\n",
			day, month, home, away, hg, ag)
	}

	matches, err := dataset.ParseSeason(strings.NewReader(builder.String()), "1617")
	require.NoError(t, err)
	require.Len(t, matches, 120)

	matrices, err := dataset.BuildMatrices(matches, []string{"H", "D", "A"}, nil)
	require.NoError(t, err)
	require.Len(t, matrices.Score1, 120)

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	runner := backtest.NewRunner(nil, logger)

	cv, err := split.NewTimeSeriesSplit(3, 0.1)
	require.NoError(t, err)

	model := bettor.NewBettor(bettor.NewDummyClassifier(bettor.StrategyPrior), []string{"H", "D", "A"}, nil)
	grid := backtest.ParamGrid{
		"classifier__strategy": {bettor.StrategyPrior, bettor.StrategyMostFrequent},
	}
	riskFactors := []float64{0, 1.1}

	results, err := runner.ApplyBacktesting(
		context.Background(), model, grid, riskFactors,
		matrices.X, matrices.Score1, matrices.Score2, matrices.Odds,
		cv, 42, 2, 0,
	)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for _, row := range results {
		assert.GreaterOrEqual(t, row.Coverage, 0.0)
		assert.LessOrEqual(t, row.Coverage, 1.0)
		assert.GreaterOrEqual(t, row.StdYield, 0.0)
	}
	assert.InDelta(t, 1.0, results[0].Coverage, 1e-9, "risk factor 0 should bet every sample")
}
