// Package models defines the persisted domain records.
package models

import (
	"time"

	"github.com/google/uuid"
)

// BacktestRun is one complete backtest invocation and its configuration.
type BacktestRun struct {
	ID          uuid.UUID `json:"id"`
	ModelKind   string    `json:"model_kind"`
	Targets     []string  `json:"targets"`
	RiskFactors []float64 `json:"risk_factors"`
	NSplits     int       `json:"n_splits"`
	NRuns       int       `json:"n_runs"`
	Seed        int64     `json:"seed"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// BacktestRow is one aggregated result row belonging to a run.
type BacktestRow struct {
	ID           uuid.UUID `json:"id"`
	RunID        uuid.UUID `json:"run_id"`
	Parameters   string    `json:"parameters"`
	RiskFactor   float64   `json:"risk_factor"`
	Coverage     float64   `json:"coverage"`
	MeanYield    float64   `json:"mean_yield"`
	StdYield     float64   `json:"std_yield"`
	StdMeanYield float64   `json:"std_mean_yield"`
}

// NewBacktestRun stamps a fresh run record with an identifier and creation time.
func NewBacktestRun(modelKind string, targets []string, riskFactors []float64, nSplits, nRuns int, seed int64) *BacktestRun {
	now := time.Now().UTC()
	return &BacktestRun{
		ID:          uuid.New(),
		ModelKind:   modelKind,
		Targets:     targets,
		RiskFactors: riskFactors,
		NSplits:     nSplits,
		NRuns:       nRuns,
		Seed:        seed,
		StartedAt:   now,
		CreatedAt:   now,
	}
}
