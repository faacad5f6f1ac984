// Package main provides the entry point for the backtesting CLI tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/soccer-bettor/internal/backtest"
	"github.com/yourusername/soccer-bettor/internal/bettor"
	"github.com/yourusername/soccer-bettor/internal/config"
	"github.com/yourusername/soccer-bettor/internal/database"
	"github.com/yourusername/soccer-bettor/internal/dataset"
	"github.com/yourusername/soccer-bettor/internal/logger"
	"github.com/yourusername/soccer-bettor/internal/markets"
	"github.com/yourusername/soccer-bettor/internal/models"
	"github.com/yourusername/soccer-bettor/internal/repository"
	"github.com/yourusername/soccer-bettor/internal/scheduler"
	"github.com/yourusername/soccer-bettor/internal/split"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		output     = flag.String("output", "", "Override output path for results CSV")
		modelKind  = flag.String("model", "", "Override model kind: bettor, multi_bettor")
		jobs       = flag.Int("jobs", -1, "Override worker count (0 means one per CPU)")
		seed       = flag.Int64("seed", -1, "Override base random seed")
	)
	flag.Parse()

	ctx := context.Background()
	cfg, log := loadConfigWithSecrets(ctx, *configPath)
	applyOverrides(cfg, *output, *modelKind, *jobs, *seed)

	if cfg.Metrics.Enabled {
		serveMetrics(cfg.Metrics, log)
	}

	run := func(ctx context.Context) error {
		return runBacktest(ctx, cfg, log)
	}

	if err := run(ctx); err != nil {
		log.Fatalf("Backtest failed: %v", err)
	}

	if cfg.Schedule.Enabled {
		runScheduled(cfg, log, run)
	}
}

func loadConfigWithSecrets(ctx context.Context, path string) (*config.Config, *logrus.Logger) {
	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.NewLogger(cfg.App.LogLevel)

	if cfg.AWS.Enabled {
		if err := config.LoadSecretsFromAWS(ctx, cfg, cfg.AWS.Region, cfg.AWS.SecretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg, log
}

func applyOverrides(cfg *config.Config, output, modelKind string, jobs int, seed int64) {
	if output != "" {
		cfg.Backtest.OutputPath = output
	}
	if modelKind != "" {
		cfg.Backtest.ModelKind = modelKind
	}
	if jobs >= 0 {
		cfg.Backtest.NJobs = jobs
	}
	if seed >= 0 {
		cfg.Backtest.Seed = seed
	}
}

func runBacktest(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	registry := markets.Default()

	matrices, err := loadMatrices(ctx, cfg, log, registry)
	if err != nil {
		return err
	}

	model, err := buildModel(cfg.Backtest, registry)
	if err != nil {
		return err
	}

	cv, err := split.NewTimeSeriesSplit(cfg.Backtest.NSplits, cfg.Backtest.TestFraction)
	if err != nil {
		return err
	}

	run := models.NewBacktestRun(
		cfg.Backtest.ModelKind, model.Targets(), cfg.Backtest.RiskFactors,
		cfg.Backtest.NSplits, cfg.Backtest.NRuns, cfg.Backtest.Seed,
	)

	runner := backtest.NewRunner(registry, log)
	results, err := runner.ApplyBacktesting(
		ctx, model, backtest.ParamGrid(cfg.Backtest.ParamGrid), cfg.Backtest.RiskFactors,
		matrices.X, matrices.Score1, matrices.Score2, matrices.Odds,
		cv, cfg.Backtest.Seed, cfg.Backtest.NRuns, cfg.Backtest.NJobs,
	)
	if err != nil {
		return err
	}
	run.FinishedAt = time.Now().UTC()

	if err := backtest.RenderTable(os.Stdout, results); err != nil {
		return fmt.Errorf("rendering results: %w", err)
	}
	if err := backtest.GenerateCSVExport(results, cfg.Backtest.OutputPath); err != nil {
		return fmt.Errorf("exporting results: %w", err)
	}
	log.WithField("path", cfg.Backtest.OutputPath).Info("Results written")

	if cfg.Backtest.PersistResults {
		if err := persistRun(ctx, cfg, run, results); err != nil {
			return err
		}
		log.WithField("run_id", run.ID).Info("Results persisted")
	}
	return nil
}

func loadMatrices(ctx context.Context, cfg *config.Config, log *logrus.Logger, registry *markets.Registry) (*dataset.Matrices, error) {
	client := dataset.NewClient(dataset.ClientConfig{
		Timeout:      time.Duration(cfg.Dataset.TimeoutSeconds) * time.Second,
		MaxRetries:   cfg.Dataset.RetryAttempts,
		RetryWaitMin: 200 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
		RateLimit:    cfg.Dataset.RateLimitPerSecond,
	})
	defer client.Close()

	loader := dataset.NewLoader(client, dataset.LoaderConfig{
		BaseURL:             cfg.Dataset.BaseURL,
		DataDir:             cfg.Dataset.DataDir,
		CacheTTL:            time.Duration(cfg.Dataset.CacheTTLSeconds) * time.Second,
		CacheSweep:          time.Duration(cfg.Dataset.CacheSweepSeconds) * time.Second,
		MinMatchesPerSeason: cfg.Dataset.MinMatchesPerSeason,
	}, log)

	matches, err := loader.LoadAll(ctx, cfg.Dataset.Leagues, cfg.Dataset.Seasons)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	return dataset.BuildMatrices(matches, cfg.Backtest.Targets, registry)
}

func buildModel(cfg config.BacktestConfig, registry *markets.Registry) (bettor.Model, error) {
	switch cfg.ModelKind {
	case "bettor":
		return bettor.NewBettor(bettor.NewDummyClassifier(bettor.StrategyPrior), cfg.Targets, registry), nil
	case "multi_bettor":
		return bettor.NewMultiBettor(
			bettor.NewDummyClassifier(bettor.StrategyPrior),
			bettor.NewDummyClassifier(bettor.StrategyPrior),
			cfg.Targets, registry,
		), nil
	default:
		return nil, fmt.Errorf("unknown model kind %q", cfg.ModelKind)
	}
}

func persistRun(ctx context.Context, cfg *config.Config, run *models.BacktestRun, results []backtest.Result) error {
	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	rows := make([]models.BacktestRow, 0, len(results))
	for _, result := range results {
		rows = append(rows, models.BacktestRow{
			RunID:        run.ID,
			Parameters:   result.Parameters,
			RiskFactor:   result.RiskFactor,
			Coverage:     result.Coverage,
			MeanYield:    result.MeanYield,
			StdYield:     result.StdYield,
			StdMeanYield: result.StdMeanYield,
		})
	}

	repo := repository.NewPostgresBacktestRunRepository(db)
	return repo.SaveRun(ctx, run, rows)
}

func serveMetrics(cfg config.MetricsConfig, log *logrus.Logger) {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.Handler())
	addr := fmt.Sprintf(":%d", cfg.Port)
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.WithError(err).Warn("Metrics server stopped")
		}
	}()
	log.WithField("addr", addr+cfg.Path).Info("Metrics server listening")
}

func runScheduled(cfg *config.Config, log *logrus.Logger, job scheduler.Job) {
	sched := scheduler.NewScheduler(log)
	if err := sched.ScheduleBacktest(cfg.Schedule.CronSpec, "backtest", job); err != nil {
		log.Fatalf("Failed to schedule backtest: %v", err)
	}
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	log.WithField("next_run", sched.NextRun()).Info("Scheduler running, press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
}
