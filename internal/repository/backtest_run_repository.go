package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/soccer-bettor/internal/database"
	"github.com/yourusername/soccer-bettor/internal/models"
)

const errScanBacktestRow = "failed to scan backtest row: %w"

// PostgresBacktestRunRepository implements BacktestRunRepository for PostgreSQL
type PostgresBacktestRunRepository struct {
	db *database.DB
}

// NewPostgresBacktestRunRepository creates a new backtest run repository
func NewPostgresBacktestRunRepository(db *database.DB) BacktestRunRepository {
	return &PostgresBacktestRunRepository{db: db}
}

// SaveRun inserts a run and all of its result rows in one transaction, so a
// partially written run never shows up in queries.
func (r *PostgresBacktestRunRepository) SaveRun(ctx context.Context, run *models.BacktestRun, rows []models.BacktestRow) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		runQuery := `
			INSERT INTO backtest_runs (
				id, model_kind, targets, risk_factors, n_splits, n_runs, seed,
				started_at, finished_at, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`
		_, err := tx.Exec(ctx, runQuery,
			run.ID, run.ModelKind, run.Targets, run.RiskFactors, run.NSplits, run.NRuns, run.Seed,
			run.StartedAt, run.FinishedAt, run.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save backtest run: %w", err)
		}

		rowQuery := `
			INSERT INTO backtest_rows (
				id, run_id, parameters, risk_factor, coverage,
				mean_yield, std_yield, std_mean_yield
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		`
		for _, row := range rows {
			id := row.ID
			if id == uuid.Nil {
				id = uuid.New()
			}
			_, err := tx.Exec(ctx, rowQuery,
				id, run.ID, row.Parameters, row.RiskFactor, row.Coverage,
				row.MeanYield, row.StdYield, row.StdMeanYield,
			)
			if err != nil {
				return fmt.Errorf("failed to save backtest row: %w", err)
			}
		}
		return nil
	})
}

// GetRun retrieves a single run by identifier
func (r *PostgresBacktestRunRepository) GetRun(ctx context.Context, id uuid.UUID) (*models.BacktestRun, error) {
	query := `
		SELECT id, model_kind, targets, risk_factors, n_splits, n_runs, seed,
			started_at, finished_at, created_at
		FROM backtest_runs WHERE id = $1
	`
	run := &models.BacktestRun{}
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&run.ID, &run.ModelKind, &run.Targets, &run.RiskFactors, &run.NSplits, &run.NRuns, &run.Seed,
		&run.StartedAt, &run.FinishedAt, &run.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get backtest run: %w", err)
	}
	return run, nil
}

// GetLatestRuns retrieves the most recent runs
func (r *PostgresBacktestRunRepository) GetLatestRuns(ctx context.Context, limit int) ([]*models.BacktestRun, error) {
	query := `
		SELECT id, model_kind, targets, risk_factors, n_splits, n_runs, seed,
			started_at, finished_at, created_at
		FROM backtest_runs ORDER BY started_at DESC LIMIT $1
	`
	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest backtest runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.BacktestRun
	for rows.Next() {
		run := &models.BacktestRun{}
		if err := rows.Scan(
			&run.ID, &run.ModelKind, &run.Targets, &run.RiskFactors, &run.NSplits, &run.NRuns, &run.Seed,
			&run.StartedAt, &run.FinishedAt, &run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan backtest run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRowsByRun retrieves all result rows of one run in stored order
func (r *PostgresBacktestRunRepository) GetRowsByRun(ctx context.Context, runID uuid.UUID) ([]*models.BacktestRow, error) {
	query := `
		SELECT id, run_id, parameters, risk_factor, coverage,
			mean_yield, std_yield, std_mean_yield
		FROM backtest_rows WHERE run_id = $1 ORDER BY parameters, risk_factor
	`
	rows, err := r.db.GetPool().Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query backtest rows: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// GetBestRows retrieves the best rows across all runs by mean yield
func (r *PostgresBacktestRunRepository) GetBestRows(ctx context.Context, limit int) ([]*models.BacktestRow, error) {
	query := `
		SELECT id, run_id, parameters, risk_factor, coverage,
			mean_yield, std_yield, std_mean_yield
		FROM backtest_rows ORDER BY mean_yield DESC LIMIT $1
	`
	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query best backtest rows: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanRows(rows rowScanner) ([]*models.BacktestRow, error) {
	var out []*models.BacktestRow
	for rows.Next() {
		row := &models.BacktestRow{}
		if err := rows.Scan(
			&row.ID, &row.RunID, &row.Parameters, &row.RiskFactor, &row.Coverage,
			&row.MeanYield, &row.StdYield, &row.StdMeanYield,
		); err != nil {
			return nil, fmt.Errorf(errScanBacktestRow, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
