// Package repository provides persistence for backtest runs and their
// aggregated result rows.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/yourusername/soccer-bettor/internal/models"
)

// BacktestRunRepository stores completed backtest runs
type BacktestRunRepository interface {
	SaveRun(ctx context.Context, run *models.BacktestRun, rows []models.BacktestRow) error
	GetRun(ctx context.Context, id uuid.UUID) (*models.BacktestRun, error)
	GetLatestRuns(ctx context.Context, limit int) ([]*models.BacktestRun, error)
	GetRowsByRun(ctx context.Context, runID uuid.UUID) ([]*models.BacktestRow, error)
	GetBestRows(ctx context.Context, limit int) ([]*models.BacktestRow, error)
}
